package state

import "github.com/llehouerou/rangeslider/internal/slider"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetRanges() (map[string]slider.Pair, error)
	SaveRange(name string, p slider.Pair)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
