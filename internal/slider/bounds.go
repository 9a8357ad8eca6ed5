package slider

// Pair holds the lower and upper thumb values, in that order.
type Pair [2]float64

// Lower returns the value of thumb 0.
func (p Pair) Lower() float64 { return p[0] }

// Upper returns the value of thumb 1.
func (p Pair) Upper() float64 { return p[1] }

// With returns a copy of p with thumb i set to v.
func (p Pair) With(i int, v float64) Pair {
	p[i] = v
	return p
}

// Bounds is the range a single thumb may currently occupy.
type Bounds struct {
	Min float64
	Max float64
}

// EffectiveMinDistance returns the configured separation capped to the span,
// so a separation wider than the whole range stays satisfiable.
func EffectiveMinDistance(cfg Config) float64 {
	return min(cfg.MinDistance, cfg.Span())
}

// GridMax returns the highest step-aligned value not above Max. It equals
// Max whenever the span is a whole number of steps.
func GridMax(cfg Config) float64 {
	return max(FloorToStep(cfg.Max, cfg.Step, cfg.Min), cfg.Min)
}

// GridDistance returns the effective minimum distance rounded up to whole
// steps, so that two step-aligned thumbs kept this far apart also satisfy
// EffectiveMinDistance. It is capped to the step-aligned span.
func GridDistance(cfg Config) float64 {
	d := CeilToStep(cfg.Min+EffectiveMinDistance(cfg), cfg.Step, cfg.Min)
	return shift(min(d, GridMax(cfg)), -cfg.Min, cfg)
}

// ThumbBounds returns the dynamic bounds of thumb i, derived from the other
// thumb's value in p. Indexes other than 0 are treated as the upper thumb.
// Bounds of a step-aligned pair are step-aligned.
func ThumbBounds(p Pair, cfg Config, i int) Bounds {
	dist := GridDistance(cfg)
	if i == 0 {
		return Bounds{Min: cfg.Min, Max: shift(p[1], -dist, cfg)}
	}
	return Bounds{Min: shift(p[0], dist, cfg), Max: GridMax(cfg)}
}

// shift returns v + d with the grid's decimal count.
func shift(v, d float64, cfg Config) float64 {
	return fixDecimals(v+d, gridDecimals(cfg.Step, cfg.Min))
}
