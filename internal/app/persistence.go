// internal/app/persistence.go
package app

import (
	"github.com/llehouerou/rangeslider/internal/errmsg"
	"github.com/llehouerou/rangeslider/internal/slider"
)

// loadSavedRanges returns the ranges saved by previous runs. Failures are
// reported in the status line and leave the configured defaults in place.
func (m *Model) loadSavedRanges() map[string]slider.Pair {
	if m.StateMgr == nil {
		return nil
	}
	ranges, err := m.StateMgr.GetRanges()
	if err != nil {
		m.setError(errmsg.OpStateLoad, "", err)
		return nil
	}
	m.Log.Infow("saved ranges loaded", "count", len(ranges))
	return ranges
}

// saveRange persists the committed range of a slider.
func (m *Model) saveRange(name string, p slider.Pair) {
	if m.StateMgr == nil {
		return
	}
	m.StateMgr.SaveRange(name, p)
}
