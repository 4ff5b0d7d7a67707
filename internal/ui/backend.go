package ui

import (
	"errors"
	"path/filepath"

	"github.com/atomicstack/pomotree/internal/backend"
	"github.com/atomicstack/pomotree/internal/fstree"
	"github.com/atomicstack/pomotree/internal/logging"
	"github.com/atomicstack/pomotree/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent re-scans the directory a change was reported for. Only
// the root and expanded directories are refreshed; anything else is not on
// screen. The cursor follows the selected path when it survives.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		events.Watch.Error(evt.Err)
		m.backendErr = evt.Err.Error()
		return
	}
	m.backendErr = ""
	events.Watch.Change(evt.Dir, evt.Op)

	selected := ""
	if row, ok := m.selectedRow(); ok {
		selected = row.Path
	}

	var err error
	dir := filepath.Clean(evt.Dir)
	switch {
	case dir == filepath.Clean(m.tree.Root()):
		err = m.tree.RefreshRoot()
	default:
		index := m.tree.IndexOf(dir)
		if index < 0 {
			return
		}
		row, _ := m.tree.Row(index)
		if !row.Expanded {
			return
		}
		err = m.tree.Refresh(index)
	}
	if err != nil {
		var scanErr *fstree.ScanError
		if !errors.As(err, &scanErr) {
			logging.Error(err)
		}
		m.errMsg = "Error: " + err.Error()
	}
	events.Tree.Refresh(dir, m.tree.Len())

	if selected != "" {
		if index := m.tree.IndexOf(selected); index >= 0 {
			m.nav.MoveTo(m.tree.Len(), index)
		}
	}
	m.afterMutation()
}

// syncWatcher points the watcher at the root plus every expanded directory.
func (m *Model) syncWatcher() {
	if m.backend == nil {
		return
	}
	if err := m.backend.Sync(m.tree.ExpandedPaths()); err != nil {
		logging.Warn("watch sync", err)
	}
}
