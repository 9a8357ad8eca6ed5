// Package slider implements the value engine of a two-thumb range slider.
//
// The engine is framework-free: a host translates its own input events into
// Controller calls and renders the values, bounds and percentages it reads back.
package slider

import (
	"math"
	"strings"
)

// Orientation is the axis a slider is laid out on.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the configuration name of the orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation returns the orientation named by s.
// Unknown names fall back to Horizontal.
func ParseOrientation(s string) Orientation {
	if strings.EqualFold(strings.TrimSpace(s), "vertical") {
		return Vertical
	}
	return Horizontal
}

const (
	defaultMin  = 0
	defaultMax  = 100
	defaultStep = 1

	// largeStepFactor is the multiple of Step used when LargeStep is unset.
	largeStepFactor = 10
)

// Config holds the immutable settings of one slider.
type Config struct {
	Min         float64
	Max         float64
	Step        float64
	LargeStep   float64 // 0 means Step * 10
	MinDistance float64 // minimum gap between the two thumbs
	Orientation Orientation
	Disabled    bool
}

// DefaultConfig returns a 0..100 slider with unit steps.
func DefaultConfig() Config {
	return Config{
		Min:       defaultMin,
		Max:       defaultMax,
		Step:      defaultStep,
		LargeStep: defaultStep * largeStepFactor,
	}
}

// Normalized returns c with defaults applied and degenerate values absorbed.
func (c Config) Normalized() Config {
	if !finite(c.Min) {
		c.Min = defaultMin
	}
	if !finite(c.Max) {
		c.Max = defaultMax
	}
	if c.Max < c.Min {
		c.Min, c.Max = c.Max, c.Min
	}
	if !finite(c.Step) || c.Step <= 0 {
		c.Step = defaultStep
	}
	if !finite(c.LargeStep) || c.LargeStep <= 0 {
		c.LargeStep = c.Step * largeStepFactor
	}
	if !finite(c.MinDistance) || c.MinDistance < 0 {
		c.MinDistance = 0
	}
	return c
}

// Span returns Max - Min.
func (c Config) Span() float64 {
	return c.Max - c.Min
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
