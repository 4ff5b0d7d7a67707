package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/atomicstack/pomotree/internal/backend"
	"github.com/atomicstack/pomotree/internal/fstree"
	"github.com/atomicstack/pomotree/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided browser options.
type Config struct {
	Root       string
	Width      int
	Height     int
	ShowFooter bool
	Debug      bool
	Watch      bool
}

// Run scans the root directory and executes the Bubble Tea program until the
// user quits.
func Run(cfg Config) error {
	model, stop, err := NewModel(cfg)
	if err != nil {
		return err
	}
	defer stop()
	return run(tea.NewProgram(model, tea.WithAltScreen()))
}

// run executes p and returns the error that ended the session, if any. A
// panic recovered by Bubble Tea leaves no final model and counts as a failure.
func run(p *tea.Program) error {
	final, err := p.Run()
	switch {
	case errors.Is(err, tea.ErrProgramKilled):
		return nil
	case err != nil:
		return fmt.Errorf("run browser: %w", err)
	case final == nil:
		return errors.New("run browser: program ended without a model")
	}
	if f, ok := final.(interface{ Err() error }); ok && f.Err() != nil {
		return fmt.Errorf("run browser: %w", f.Err())
	}
	return nil
}

// NewModel builds the browser model for cfg. The returned stop function
// releases the watcher, if one was started.
func NewModel(cfg Config) (*ui.Model, func(), error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve root %s: %w", root, err)
	}
	tree, err := fstree.New(abs, fstree.OSScanner{})
	if err != nil {
		return nil, nil, fmt.Errorf("scan root: %w", err)
	}
	stop := func() {}
	var watcher *backend.Watcher
	if cfg.Watch {
		watcher, err = backend.NewWatcher(abs, backend.DefaultInterval)
		if err != nil {
			return nil, nil, fmt.Errorf("start watcher: %w", err)
		}
		stop = watcher.Stop
	}
	model := ui.NewModel(tree, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Debug, watcher)
	return model, stop, nil
}
