package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rangeslider/internal/app"
	"github.com/llehouerou/rangeslider/internal/config"
	"github.com/llehouerou/rangeslider/internal/errmsg"
	"github.com/llehouerou/rangeslider/internal/logging"
	"github.com/llehouerou/rangeslider/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLoggerInit, err))
	}
	defer log.Sync() //nolint:errcheck // nothing left to report to

	// Persistence is optional: without it the sliders still work, so a
	// broken database is reported in the UI instead of aborting.
	var (
		stateMgr   *state.Manager
		startupErr string
	)
	if cfg.PersistState() {
		stateMgr, err = state.Open(log)
		if err != nil {
			startupErr = errmsg.Format(errmsg.OpStateOpen, err)
			log.Warnw("persistence disabled", "error", err)
		}
	}

	var m app.Model
	if stateMgr != nil {
		m = app.New(cfg, stateMgr, log)
	} else {
		m = app.New(cfg, nil, log)
	}
	if startupErr != "" {
		m.ErrorMsg = startupErr
	}

	log.Infow("starting", "sliders", len(cfg.Sliders), "persist", stateMgr != nil)

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, runErr := p.Run()

	if stateMgr != nil {
		if err := stateMgr.Close(); err != nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpStateSave, err))
		}
	}
	if runErr != nil {
		return fmt.Errorf("run program: %w", runErr)
	}
	return nil
}
