package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/rangeslider/internal/slider"
)

type Config struct {
	Log   LogConfig   `koanf:"log"`
	State StateConfig `koanf:"state"`

	// Sliders to display. The demo set is used when none are configured.
	Sliders []SliderConfig `koanf:"sliders"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error"; empty disables logging
	File  string `koanf:"file"`  // default: XDG state dir
}

// StateConfig controls persistence of committed ranges.
type StateConfig struct {
	Persist *bool `koanf:"persist"` // default: true
}

// SliderConfig describes one slider.
type SliderConfig struct {
	Name        string    `koanf:"name"`  // identifier, used as the persistence key
	Label       string    `koanf:"label"` // default: name
	Min         *float64  `koanf:"min"`   // default: 0
	Max         *float64  `koanf:"max"`   // default: 100
	Step        float64   `koanf:"step"`
	LargeStep   float64   `koanf:"large_step"`
	MinDistance float64   `koanf:"min_distance"`
	Orientation string    `koanf:"orientation"` // "horizontal" or "vertical"
	Disabled    bool      `koanf:"disabled"`
	Default     []float64 `koanf:"default"`  // [lower, upper]; default: full range
	Format      string    `koanf:"format"`   // value template with {value}, {min}, {max}
	Humanize    bool      `koanf:"humanize"` // thousands separators
	Controlled  bool      `koanf:"controlled"`
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given config files in order; later files override
// earlier ones and missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	if len(cfg.Sliders) == 0 {
		cfg.Sliders = DemoSliders()
	}
	cfg.Sliders = uniqueNames(cfg.Sliders)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/rangeslider/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "rangeslider", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// uniqueNames fills in missing slider names and suffixes duplicates, since
// names key the persisted ranges.
func uniqueNames(sliders []SliderConfig) []SliderConfig {
	used := make(map[string]bool)
	for i := range sliders {
		base := strings.TrimSpace(sliders[i].Name)
		if base == "" {
			base = fmt.Sprintf("slider-%d", i+1)
		}
		name := base
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s-%d", base, n)
		}
		used[name] = true
		sliders[i].Name = name
	}
	return sliders
}

// PersistState reports whether committed ranges are saved.
func (c *Config) PersistState() bool {
	return c.State.Persist == nil || *c.State.Persist
}

// DisplayLabel returns the label, falling back to the name.
func (s SliderConfig) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Name
}

// ToSliderConfig converts to an engine configuration. Out-of-range values
// are left for the engine to normalize.
func (s SliderConfig) ToSliderConfig() slider.Config {
	cfg := slider.DefaultConfig()
	if s.Min != nil {
		cfg.Min = *s.Min
	}
	if s.Max != nil {
		cfg.Max = *s.Max
	}
	cfg.Step = s.Step
	cfg.LargeStep = s.LargeStep
	cfg.MinDistance = s.MinDistance
	cfg.Orientation = slider.ParseOrientation(s.Orientation)
	cfg.Disabled = s.Disabled
	return cfg.Normalized()
}

// DefaultPair returns the configured initial pair, or nil when the
// default is absent or malformed.
func (s SliderConfig) DefaultPair() *slider.Pair {
	if len(s.Default) != 2 {
		return nil
	}
	return &slider.Pair{s.Default[0], s.Default[1]}
}

// Options returns the value presentation options.
func (s SliderConfig) Options() slider.Options {
	return slider.Options{Template: s.Format, Humanize: s.Humanize}
}

// DemoSliders returns the sliders shown when none are configured.
func DemoSliders() []SliderConfig {
	return []SliderConfig{
		{
			Name: "price", Label: "Price",
			Min: ptr(0), Max: ptr(1000), Step: 5, LargeStep: 50, MinDistance: 50,
			Default: []float64{200, 800}, Format: "${value}",
		},
		{
			Name: "temperature", Label: "Comfort zone",
			Min: ptr(-20), Max: ptr(40), Step: 0.5, LargeStep: 5, MinDistance: 2,
			Default: []float64{18, 24}, Format: "{value}°C", Controlled: true,
		},
		{
			Name: "population", Label: "City population",
			Min: ptr(0), Max: ptr(10_000_000), Step: 10_000, LargeStep: 500_000,
			Humanize: true,
		},
		{
			Name: "locked", Label: "Locked",
			Min: ptr(0), Max: ptr(10), Step: 1,
			Default: []float64{3, 7}, Disabled: true,
		},
		{
			Name: "gain", Label: "Gain",
			Min: ptr(0), Max: ptr(100), Step: 1,
			Default: []float64{25, 75}, Format: "{value}%", Orientation: "vertical",
		},
	}
}

func ptr(v float64) *float64 { return &v }
