// Package state persists committed slider ranges across runs.
package state

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"go.uber.org/zap"

	"github.com/llehouerou/rangeslider/internal/db"
	"github.com/llehouerou/rangeslider/internal/slider"
)

const (
	appName      = "rangeslider"
	dbFileName   = "state.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db  *sql.DB
	log *zap.SugaredLogger

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]slider.Pair
	debounce  time.Duration
}

// Open opens the state database in the XDG data directory.
func Open(log *zap.SugaredLogger) (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve state path: %w", err)
	}
	return OpenPath(dbPath, log)
}

// OpenPath opens the state database at path (":memory:" for tests).
func OpenPath(path string, log *zap.SugaredLogger) (*Manager, error) {
	conn, err := db.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Manager{
		db:       conn,
		log:      log.Named("state"),
		pending:  make(map[string]slider.Pair),
		debounce: saveDebounce,
	}, nil
}

// Close flushes pending saves and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	flushErr := m.Flush()
	if err := m.db.Close(); err != nil {
		return err
	}
	return flushErr
}

// GetRanges returns the saved range of every slider, keyed by name.
func (m *Manager) GetRanges() (map[string]slider.Pair, error) {
	return getRanges(m.db)
}

// SaveRange schedules p to be saved as the range of slider name. Saves are
// debounced: a burst of commits results in one write of the latest ranges.
func (m *Manager) SaveRange(name string, p slider.Pair) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending[name] = p

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, func() {
		if err := m.Flush(); err != nil {
			m.log.Warnw("save ranges", "error", err)
		}
	})
}

// Flush writes pending ranges immediately.
func (m *Manager) Flush() error {
	m.saveMu.Lock()
	pending := m.pending
	m.pending = make(map[string]slider.Pair)
	m.saveMu.Unlock()

	if len(pending) == 0 {
		return nil
	}
	if err := saveRanges(context.Background(), m.db, pending); err != nil {
		m.requeue(pending)
		return fmt.Errorf("save ranges: %w", err)
	}
	m.log.Debugw("ranges saved", "count", len(pending))
	return nil
}

// requeue puts ranges from a failed write back into pending, unless a newer
// range for the same slider was saved in the meantime.
func (m *Manager) requeue(ranges map[string]slider.Pair) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	for name, p := range ranges {
		if _, newer := m.pending[name]; !newer {
			m.pending[name] = p
		}
	}
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
