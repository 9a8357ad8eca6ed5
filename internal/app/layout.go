// internal/app/layout.go
package app

import (
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui"
	"github.com/llehouerou/rangeslider/internal/ui/rangeslider"
)

const (
	headerHeight = 1
	footerHeight = 2 // status line + help line

	// verticalPanelWidth is the outer width of a vertical slider panel.
	verticalPanelWidth = 16
)

// layout sizes and places every slider. Horizontal sliders stack in a left
// column; vertical sliders stand side by side to its right. Each slider sits
// inside a bordered panel, so its origin is one cell in from the panel's.
func (m *Model) layout() {
	verticals := 0
	for _, s := range m.Sliders {
		if s.Orientation() == slider.Vertical {
			verticals++
		}
	}

	columnWidth := m.columnWidth(verticals)
	bodyHeight := max(m.Height-headerHeight-footerHeight, 0)
	verticalHeight := min(
		ui.DefaultVerticalTrack+ui.SliderTextRows,
		max(bodyHeight-ui.BorderHeight, 0),
	)

	y := headerHeight
	x := columnWidth
	for i := range m.Sliders {
		s := &m.Sliders[i]
		if s.Orientation() == slider.Vertical {
			s.SetOrigin(x+1, headerHeight+1)
			s.SetSize(verticalPanelWidth-ui.BorderWidth, verticalHeight)
			x += verticalPanelWidth
			continue
		}
		s.SetOrigin(1, y+1)
		s.SetSize(max(columnWidth-ui.BorderWidth, 0), rangeslider.HorizontalHeight)
		y += rangeslider.HorizontalHeight + ui.BorderHeight
	}

	m.Help.Width = m.Width
}

// columnWidth returns the outer width of the horizontal slider column, or 0
// when every slider is vertical.
func (m Model) columnWidth(verticals int) int {
	if verticals == len(m.Sliders) {
		return 0
	}
	return min(max(m.Width-verticals*verticalPanelWidth, 0), ui.MaxHorizontalWidth)
}
