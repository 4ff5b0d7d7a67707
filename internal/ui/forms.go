package ui

import (
	"strings"

	"github.com/atomicstack/pomotree/internal/fstree"
	"github.com/atomicstack/pomotree/internal/logging/events"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// renameForm collects a new name for the selected row. Submitting does not
// touch the filesystem.
type renameForm struct {
	input  textinput.Model
	target string
}

func newRenameForm(row fstree.Row) *renameForm {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "new-name"
	ti.CharLimit = 255
	ti.Cursor.SetMode(cursor.CursorStatic)
	if styles.Item != nil {
		ti.TextStyle = *styles.Item
	}
	ti.SetValue(row.Name)
	ti.CursorEnd()
	ti.Focus()
	return &renameForm{input: ti, target: row.Path}
}

func (f *renameForm) Target() string    { return f.target }
func (f *renameForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *renameForm) InputView() string { return f.input.View() }

func (f *renameForm) SetWidth(width int) {
	if width < 1 {
		width = 1
	}
	f.input.Width = width
}

// Update returns done when the name was submitted and cancel when the form
// was dismissed.
func (f *renameForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
			}
			return nil, false, false
		}
		switch m.Type {
		case tea.KeyEsc:
			events.Rename.Cancel(f.target, events.ReasonEscape)
			return nil, false, true
		case tea.KeyEnter:
			name := f.Value()
			if name == "" {
				events.Rename.Cancel(f.target, events.ReasonEmpty)
				return nil, false, true
			}
			events.Rename.Submit(f.target, name)
			return nil, true, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	return cmd, false, false
}

func (m *Model) startRename() {
	row, ok := m.selectedRow()
	if !ok {
		return
	}
	m.rename = newRenameForm(row)
	m.rename.SetWidth(m.contentWidth() - 4)
	m.mode = ModeRenaming
	m.errMsg = ""
	events.Rename.Start(row.Path)
}

func (m *Model) handleRenameForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.rename == nil {
		m.mode = ModeBrowsing
		return false, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	if keyMsg.Type == tea.KeyCtrlC {
		m.rename = nil
		return true, m.quit()
	}
	cmd, done, cancel := m.rename.Update(keyMsg)
	if cancel {
		m.rename = nil
		m.mode = ModeBrowsing
		return true, cmd
	}
	if done {
		name := m.rename.Value()
		m.rename = nil
		m.mode = ModeBrowsing
		m.setInfo("Renaming is not supported yet (" + name + ")")
		return true, cmd
	}
	return true, cmd
}
