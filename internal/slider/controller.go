package slider

import "math"

// Key is a keyboard command understood by the controller.
type Key int

const (
	KeyRight Key = iota
	KeyUp
	KeyLeft
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Handlers receive notifications from the controller.
// Both are optional.
type Handlers struct {
	// OnValueChange fires on every accepted value mutation with the new pair
	// and the index of the thumb that moved.
	OnValueChange func(p Pair, index int)
	// OnValueCommit fires when an interaction ends.
	OnValueCommit func(p Pair)
}

// ThumbState is everything a host needs to render one thumb.
type ThumbState struct {
	Index   int
	Value   float64
	Bounds  Bounds
	Percent float64
	Text    string
}

const noThumb = -1

// Controller applies keyboard and pointer input to a value pair.
// It is not safe for concurrent use; all calls are expected from the host's
// event loop.
type Controller struct {
	cfg      Config
	store    Store
	handlers Handlers
	opts     Options
	track    Track

	focused  int
	captured int // thumb owning the drag session, or noThumb
}

// NewUncontrolled returns a controller that owns its pair. A nil
// defaultValue starts at the full range.
func NewUncontrolled(cfg Config, defaultValue *Pair, h Handlers) *Controller {
	cfg = cfg.Normalized()
	initial := DefaultPair(cfg)
	if defaultValue != nil {
		initial = *defaultValue
	}
	return newController(cfg, &Owned{pair: Normalize(initial, cfg)}, h)
}

// NewControlled returns a controller that reflects a host-owned pair.
// The host must call Sync with every pair it accepts.
func NewControlled(cfg Config, value Pair, h Handlers) *Controller {
	cfg = cfg.Normalized()
	return newController(cfg, &Reflected{pair: Normalize(value, cfg)}, h)
}

func newController(cfg Config, s Store, h Handlers) *Controller {
	return &Controller{
		cfg:      cfg,
		store:    s,
		handlers: h,
		focused:  noThumb,
		captured: noThumb,
	}
}

// Config returns the normalized configuration.
func (c *Controller) Config() Config { return c.cfg }

// Value returns the authoritative pair.
func (c *Controller) Value() Pair { return c.store.Current() }

// Controlled reports whether the host owns the pair.
func (c *Controller) Controlled() bool {
	_, ok := c.store.(*Reflected)
	return ok
}

// Sync pushes a host-owned pair into a controlled controller. It reports
// whether the reflected pair changed; on an uncontrolled controller it does
// nothing and reports false.
func (c *Controller) Sync(p Pair) bool {
	return c.store.sync(Normalize(p, c.cfg))
}

// SetHandlers replaces the notification handlers.
func (c *Controller) SetHandlers(h Handlers) { c.handlers = h }

// SetOptions replaces the value presentation options.
func (c *Controller) SetOptions(o Options) { c.opts = o }

// SetTrack records the track geometry used to map pointer positions.
func (c *Controller) SetTrack(t Track) { c.track = t }

// Track returns the current track geometry.
func (c *Controller) Track() Track { return c.track }

// Disabled reports whether input is suppressed.
func (c *Controller) Disabled() bool { return c.cfg.Disabled }

// Focusable reports whether the host should let thumbs take focus.
func (c *Controller) Focusable() bool { return !c.cfg.Disabled }

// Bounds returns the dynamic bounds of thumb i for the stored pair.
func (c *Controller) Bounds(i int) Bounds {
	return ThumbBounds(c.store.Current(), c.cfg, i)
}

// Thumb returns the render state of thumb i, or the zero ThumbState for an
// index other than 0 and 1.
func (c *Controller) Thumb(i int) ThumbState {
	if !validIndex(i) {
		return ThumbState{}
	}
	v := c.store.Current()[i]
	return ThumbState{
		Index:   i,
		Value:   v,
		Bounds:  c.Bounds(i),
		Percent: Percent(v, c.cfg),
		Text:    c.Text(v),
	}
}

// Text renders v with the controller's presentation options.
func (c *Controller) Text(v float64) string {
	return ValueText(v, c.cfg, c.opts)
}

// Focus gives keyboard focus to thumb i.
func (c *Controller) Focus(i int) {
	if !c.Focusable() || !validIndex(i) {
		return
	}
	c.focused = i
}

// Blur removes keyboard focus from both thumbs.
func (c *Controller) Blur() { c.focused = noThumb }

// Focused returns the focused thumb, if any.
func (c *Controller) Focused() (int, bool) {
	return c.focused, c.focused != noThumb
}

// HandleFocusedKey applies key to the focused thumb.
func (c *Controller) HandleFocusedKey(k Key) bool {
	if c.focused == noThumb {
		return false
	}
	return c.HandleKey(c.focused, k)
}

// HandleKey applies a keyboard command to thumb i and reports whether the
// value changed. A change is followed by a commit: a key press is a complete
// interaction on its own.
func (c *Controller) HandleKey(i int, k Key) bool {
	if c.cfg.Disabled || !validIndex(i) {
		return false
	}
	v := c.store.Current()[i]
	b := c.Bounds(i)

	var candidate float64
	switch k {
	case KeyRight, KeyUp:
		candidate = v + c.cfg.Step
	case KeyLeft, KeyDown:
		candidate = v - c.cfg.Step
	case KeyHome:
		candidate = b.Min
	case KeyEnd:
		candidate = b.Max
	case KeyPageUp:
		candidate = v + c.cfg.LargeStep
	case KeyPageDown:
		candidate = v - c.cfg.LargeStep
	default:
		return false
	}

	if !c.moveThumb(i, candidate) {
		return false
	}
	c.commit()
	return true
}

// PointerDown begins a drag session capturing thumb i. It is ignored while
// a session owned by the other thumb is active.
func (c *Controller) PointerDown(i int) bool {
	if c.cfg.Disabled || !validIndex(i) {
		return false
	}
	if c.captured != noThumb && c.captured != i {
		return false
	}
	c.captured = i
	c.focused = i
	return true
}

// PointerMove moves the captured thumb to the value under pt.
func (c *Controller) PointerMove(pt Point) bool {
	if c.cfg.Disabled || c.captured == noThumb {
		return false
	}
	return c.moveThumb(c.captured, ValueAt(c.track, pt, c.cfg))
}

// PointerUp ends the drag session and commits.
func (c *Controller) PointerUp() bool {
	return c.endDrag()
}

// LostCapture ends the drag session when the host revokes pointer capture.
// Movement made so far is kept and committed.
func (c *Controller) LostCapture() bool {
	return c.endDrag()
}

// Dragging returns the thumb owning the drag session, if any.
func (c *Controller) Dragging() (int, bool) {
	return c.captured, c.captured != noThumb
}

// NearestThumb returns the thumb closest to v. Equal distances pick the
// lower thumb.
func (c *Controller) NearestThumb(v float64) int {
	p := c.store.Current()
	d0 := math.Abs(v - p[0])
	d1 := math.Abs(v - p[1])
	if d1 < d0 {
		return 1
	}
	return 0
}

// TrackClick moves the nearest thumb to the value under pt and focuses it.
// It reports whether the value changed; focus moves either way.
func (c *Controller) TrackClick(pt Point) bool {
	if c.cfg.Disabled {
		return false
	}
	raw := ValueAt(c.track, pt, c.cfg)
	i := c.NearestThumb(raw)
	changed := c.moveThumb(i, raw)
	c.focused = i
	if changed {
		c.commit()
	}
	return changed
}

// TrackPress is a track click that also captures the moved thumb, so a
// press on the track can continue as a drag. It returns the thumb index.
func (c *Controller) TrackPress(pt Point) (int, bool) {
	if c.cfg.Disabled || c.captured != noThumb {
		return noThumb, false
	}
	raw := ValueAt(c.track, pt, c.cfg)
	i := c.NearestThumb(raw)
	c.moveThumb(i, raw)
	c.captured = i
	c.focused = i
	return i, true
}

func (c *Controller) endDrag() bool {
	if c.captured == noThumb {
		return false
	}
	c.captured = noThumb
	c.commit()
	return true
}

// moveThumb routes a raw candidate for thumb i through quantization and the
// thumb's bounds. Unchanged results are dropped without notification.
func (c *Controller) moveThumb(i int, raw float64) bool {
	current := c.store.Current()
	b := ThumbBounds(current, c.cfg, i)
	next := Clamp(RoundToStep(raw, c.cfg.Step, c.cfg.Min), b.Min, b.Max)
	if next == current[i] {
		return false
	}
	p := current.With(i, next)
	c.store.accept(p)
	if c.handlers.OnValueChange != nil {
		c.handlers.OnValueChange(p, i)
	}
	return true
}

// commit reports the authoritative pair as read at call time.
func (c *Controller) commit() {
	if c.handlers.OnValueCommit != nil {
		c.handlers.OnValueCommit(c.store.Current())
	}
}

func validIndex(i int) bool {
	return i == 0 || i == 1
}
