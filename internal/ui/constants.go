// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2

	// SliderTextRows is the number of text rows around a slider track
	// (label above, value below for vertical sliders).
	SliderTextRows = 2

	// MinTrackLength is the shortest usable track, in cells.
	MinTrackLength = 5

	// DefaultVerticalTrack is the track length of a vertical slider when the
	// screen leaves room for it.
	DefaultVerticalTrack = 12

	// MaxHorizontalWidth caps the width of a horizontal slider panel.
	MaxHorizontalWidth = 80
)
