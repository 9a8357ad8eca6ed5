package slider

// Normalize returns p quantized to the step grid and constrained so that both
// values lie in [Min, Max] and the lower thumb stays at least the effective
// minimum distance below the upper one. Malformed input such as an inverted
// pair is absorbed, never rejected. The result is step-aligned, so
// normalizing it again returns it unchanged.
func Normalize(p Pair, cfg Config) Pair {
	dist := GridDistance(cfg)
	top := GridMax(cfg)

	lower := RoundToStep(p[0], cfg.Step, cfg.Min)
	upper := RoundToStep(p[1], cfg.Step, cfg.Min)

	lower = Clamp(lower, cfg.Min, shift(top, -dist, cfg))
	upper = Clamp(upper, shift(cfg.Min, dist, cfg), top)

	if limit := shift(upper, -dist, cfg); lower > limit {
		lower = limit
	}
	return Pair{lower, upper}
}

// DefaultPair returns the full range (Min, Max).
func DefaultPair(cfg Config) Pair {
	return Pair{cfg.Min, cfg.Max}
}
