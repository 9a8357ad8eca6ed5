package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global" or "slider"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Next thumb", "global"},
	{ActionSwitchFocusBack, []string{"shift+tab"}, "Previous thumb", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Slider
	{ActionMoveRight, []string{"right", "l"}, "Step up", "slider"},
	{ActionMoveUp, []string{"up", "k"}, "Step up", "slider"},
	{ActionMoveLeft, []string{"left", "h"}, "Step down", "slider"},
	{ActionMoveDown, []string{"down", "j"}, "Step down", "slider"},
	{ActionPageUp, []string{"pgup"}, "Large step up", "slider"},
	{ActionPageDown, []string{"pgdown"}, "Large step down", "slider"},
	{ActionJumpStart, []string{"home", "g"}, "Jump to lowest", "slider"},
	{ActionJumpEnd, []string{"end", "G"}, "Jump to highest", "slider"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// HelpBindings converts bindings into bubbles key bindings for the help view.
// Bindings sharing a description are merged so the help line stays short.
func HelpBindings(bindings []Binding) []key.Binding {
	var (
		result []key.Binding
		order  []string
		keys   = make(map[string][]string)
	)
	for _, b := range bindings {
		if _, ok := keys[b.Description]; !ok {
			order = append(order, b.Description)
		}
		keys[b.Description] = append(keys[b.Description], b.Keys...)
	}
	for _, desc := range order {
		ks := dedupe(keys[desc])
		result = append(result, key.NewBinding(
			key.WithKeys(ks...),
			key.WithHelp(helpKeys(ks), desc),
		))
	}
	return result
}

// helpKeys renders the primary keys of a binding, e.g. "→/↑".
func helpKeys(keys []string) string {
	var out string
	for i, k := range keys {
		if i > 0 {
			out += "/"
		}
		out += keySymbol(k)
	}
	return out
}

func keySymbol(k string) string {
	switch k {
	case "right":
		return "→"
	case "left":
		return "←"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return k
}

// dedupe removes duplicate strings from a slice, keeping the first of each.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
