package state

import (
	"maps"

	"github.com/llehouerou/rangeslider/internal/slider"
)

// Mock is a test double for Manager. Saves are applied immediately.
type Mock struct {
	ranges  map[string]slider.Pair
	saves   int
	loadErr error
	closed  bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{ranges: make(map[string]slider.Pair)}
}

func (m *Mock) GetRanges() (map[string]slider.Pair, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return maps.Clone(m.ranges), nil
}

func (m *Mock) SaveRange(name string, p slider.Pair) {
	m.ranges[name] = p
	m.saves++
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetRange(name string, p slider.Pair) { m.ranges[name] = p }

func (m *Mock) SetLoadError(err error) { m.loadErr = err }

func (m *Mock) Range(name string) (slider.Pair, bool) {
	p, ok := m.ranges[name]
	return p, ok
}

func (m *Mock) Saves() int { return m.saves }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
