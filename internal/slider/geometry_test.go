package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueAt(t *testing.T) {
	cfg := Config{Min: 10, Max: 30, Step: 1}.Normalized()
	track := Track{X: 5, Y: 2, Width: 40, Height: 8}

	tests := []struct {
		name string
		o    Orientation
		pt   Point
		want float64
	}{
		{"horizontal start", Horizontal, Point{X: 5}, 10},
		{"horizontal middle", Horizontal, Point{X: 25}, 20},
		{"horizontal end", Horizontal, Point{X: 45}, 30},
		{"horizontal before track clamps", Horizontal, Point{X: -100}, 10},
		{"horizontal past track clamps", Horizontal, Point{X: 500}, 30},
		{"vertical bottom is min", Vertical, Point{Y: 10}, 10},
		{"vertical top is max", Vertical, Point{Y: 2}, 30},
		{"vertical middle", Vertical, Point{Y: 6}, 20},
		{"vertical below track clamps", Vertical, Point{Y: 40}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			c.Orientation = tt.o
			assert.InDelta(t, tt.want, ValueAt(track, tt.pt, c), 1e-9)
		})
	}
}

func TestValueAt_EmptyTrack(t *testing.T) {
	cfg := DefaultConfig()
	assert.InDelta(t, 0.0, ValueAt(Track{}, Point{X: 40}, cfg), 0)
	cfg.Orientation = Vertical
	assert.InDelta(t, 0.0, ValueAt(Track{}, Point{Y: 40}, cfg), 0)
}

func TestPercent(t *testing.T) {
	cfg := Config{Min: -50, Max: 50, Step: 1}.Normalized()
	assert.InDelta(t, 0.0, Percent(-50, cfg), 1e-9)
	assert.InDelta(t, 50.0, Percent(0, cfg), 1e-9)
	assert.InDelta(t, 100.0, Percent(50, cfg), 1e-9)

	empty := Config{Min: 5, Max: 5, Step: 1}.Normalized()
	assert.InDelta(t, 0.0, Percent(5, empty), 0)
}
