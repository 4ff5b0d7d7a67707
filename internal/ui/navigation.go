package ui

import (
	"errors"
	"fmt"

	"github.com/atomicstack/pomotree/internal/fstree"
	"github.com/atomicstack/pomotree/internal/logging"
	"github.com/atomicstack/pomotree/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeBrowsing {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.ForceQuit), key.Matches(keyMsg, m.keys.Quit):
		return m.quit()
	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(m.nav.MoveNext)
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(m.nav.MovePrevious)
	case key.Matches(keyMsg, m.keys.Home):
		m.moveCursor(m.nav.MoveHome)
	case key.Matches(keyMsg, m.keys.End):
		m.moveCursor(m.nav.MoveEnd)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(func(n int) bool { return m.nav.MovePageUp(n, m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursor(func(n int) bool { return m.nav.MovePageDown(n, m.maxVisibleItems()) })
	case key.Matches(keyMsg, m.keys.Toggle):
		m.toggleSelected()
	case key.Matches(keyMsg, m.keys.Rename):
		m.startRename()
	case key.Matches(keyMsg, m.keys.Find):
		m.startFind()
	}
	return nil
}

func (m *Model) moveCursor(move func(n int) bool) {
	n := m.tree.Len()
	if move(n) {
		events.Nav.Cursor(m.nav.Cursor, n)
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.nav.EnsureVisible(m.tree.Len(), m.maxVisibleItems())
}

// toggleSelected expands or collapses the selected directory. A directory
// that cannot be read stays collapsed and the failure lands on the status
// line.
func (m *Model) toggleSelected() {
	index, ok := m.nav.Selected()
	if !ok {
		return
	}
	row, ok := m.tree.Row(index)
	if !ok {
		m.invalidIndex(fmt.Errorf("toggle: %w", fstree.ErrInvalidIndex))
		return
	}
	if !row.IsDir() {
		return
	}
	before := m.tree.Len()
	err := m.tree.Toggle(index)
	switch {
	case err == nil:
	case errors.Is(err, fstree.ErrInvalidIndex):
		m.invalidIndex(err)
		return
	default:
		var scanErr *fstree.ScanError
		if errors.As(err, &scanErr) {
			events.Tree.ScanError(scanErr.Path, scanErr.Err)
		} else {
			logging.Error(err)
		}
		m.errMsg = fmt.Sprintf("Error: %v", err)
		return
	}
	m.errMsg = ""
	after := m.tree.Len()
	if row.Expanded {
		events.Tree.Collapse(row.Path, before-after, after)
	} else {
		events.Tree.Expand(row.Path, after-before, after)
	}
	m.afterMutation()
}

// afterMutation re-establishes every invariant the UI relies on once the
// tree changed shape.
func (m *Model) afterMutation() {
	m.nav.Clamp(m.tree.Len())
	m.syncViewport()
	if m.strict {
		if err := m.tree.Validate(); err != nil {
			m.fail(err)
			return
		}
	}
	m.syncWatcher()
}

func (m *Model) invalidIndex(err error) {
	if m.strict {
		m.fail(err)
		return
	}
	logging.Error(err)
	m.nav.Clamp(m.tree.Len())
}

// fail records the first invariant violation of a strict session. Update
// quits as soon as one is set.
func (m *Model) fail(err error) {
	logging.Error(err)
	if m.fatal == nil {
		m.fatal = err
	}
}

func (m *Model) selectedRow() (fstree.Row, bool) {
	index, ok := m.nav.Selected()
	if !ok {
		return fstree.Row{}, false
	}
	return m.tree.Row(index)
}
