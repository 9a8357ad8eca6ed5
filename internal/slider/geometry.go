package slider

// Point is a position in the host's screen coordinates.
type Point struct {
	X, Y float64
}

// Track is the bounding box of the slider track in screen coordinates.
// Width and Height span from the first to the last reachable position, so
// X maps to Min and X+Width maps to Max on a horizontal track.
type Track struct {
	X, Y          float64
	Width, Height float64
}

// Ratio returns the position of pt along the track in [0, 1]. The vertical
// axis is inverted: the bottom edge is 0.
func (t Track) Ratio(pt Point, o Orientation) float64 {
	var r float64
	if o == Vertical {
		if t.Height <= 0 {
			return 0
		}
		r = (t.Y + t.Height - pt.Y) / t.Height
	} else {
		if t.Width <= 0 {
			return 0
		}
		r = (pt.X - t.X) / t.Width
	}
	return Clamp(r, 0, 1)
}

// ValueAt maps pt to a raw, unquantized value of cfg's range.
func ValueAt(t Track, pt Point, cfg Config) float64 {
	return cfg.Min + t.Ratio(pt, cfg.Orientation)*cfg.Span()
}

// Percent returns the position of v within cfg's range as 0..100.
func Percent(v float64, cfg Config) float64 {
	span := cfg.Span()
	if span <= 0 {
		return 0
	}
	return (v - cfg.Min) / span * 100
}
