package slider

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Formatter turns a thumb value into human-readable text.
type Formatter func(v float64) string

// Options control how values are presented to the host.
type Options struct {
	// Formatter takes precedence over Template when set.
	Formatter Formatter
	// Template may contain {value}, {min} and {max} placeholders.
	Template string
	// Humanize renders numbers with thousands separators.
	Humanize bool
}

// FormatNumber renders v with the decimal count of cfg's step.
func FormatNumber(v float64, cfg Config, humanized bool) string {
	decimals := Decimals(cfg.Step)
	if humanized {
		return humanize.CommafWithDigits(v, decimals)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// ValueText returns the display text of v under opts.
func ValueText(v float64, cfg Config, opts Options) string {
	if opts.Formatter != nil {
		return opts.Formatter(v)
	}
	value := FormatNumber(v, cfg, opts.Humanize)
	if opts.Template == "" {
		return value
	}
	r := strings.NewReplacer(
		"{value}", value,
		"{min}", FormatNumber(cfg.Min, cfg, opts.Humanize),
		"{max}", FormatNumber(cfg.Max, cfg, opts.Humanize),
	)
	return r.Replace(opts.Template)
}
