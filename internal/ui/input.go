package ui

import (
	"unicode"

	"github.com/atomicstack/pomotree/internal/logging/events"
	uistate "github.com/atomicstack/pomotree/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) startFind() {
	m.finder.Clear()
	m.mode = ModeFinding
	m.errMsg = ""
	m.forceClearInfo()
}

// handleFinderInput edits the jump query. Every edit moves the cursor to the
// best matching visible row; the tree itself is never filtered.
func (m *Model) handleFinderInput(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return true, m.quit()
	case "enter", "esc":
		m.finder.Clear()
		m.mode = ModeBrowsing
		return true, nil
	case "ctrl+u":
		if m.finder.Query != "" {
			m.finder.Clear()
			m.applyFinder()
		}
		return true, nil
	case "ctrl+w":
		if m.finder.DeleteWordBackward() {
			m.applyFinder()
		}
		return true, nil
	}
	switch keyMsg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.finder.DeleteRuneBackward() {
			m.applyFinder()
		}
	case tea.KeySpace:
		if m.finder.Insert(" ") {
			m.applyFinder()
		}
	case tea.KeyRunes:
		if keyMsg.Alt || len(keyMsg.Runes) == 0 {
			return true, nil
		}
		for _, r := range keyMsg.Runes {
			if unicode.IsControl(r) {
				return true, nil
			}
		}
		if m.finder.Insert(string(keyMsg.Runes)) {
			m.applyFinder()
		}
	}
	return true, nil
}

func (m *Model) applyFinder() {
	match := uistate.BestMatchIndex(m.rowNames(), m.finder.Query)
	events.Find.Query(m.finder.Query, match)
	if match < 0 {
		return
	}
	m.moveCursor(func(n int) bool { return m.nav.MoveTo(n, match) })
}

func (m *Model) finderMatches() bool {
	if m.finder.Query == "" {
		return true
	}
	return uistate.BestMatchIndex(m.rowNames(), m.finder.Query) >= 0
}

func (m *Model) rowNames() []string {
	rows := m.tree.Rows()
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Name
	}
	return names
}
