package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/pomotree/internal/backend"
	"github.com/atomicstack/pomotree/internal/fstree"
	"github.com/atomicstack/pomotree/internal/theme"
	uistate "github.com/atomicstack/pomotree/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode is the state of the browser's input handling.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeRenaming
	ModeFinding
	ModeExited
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeRenaming:
		return "renaming"
	case ModeFinding:
		return "finding"
	case ModeExited:
		return "exited"
	default:
		return "unknown"
	}
}

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the directory browser.
type Model struct {
	tree   *fstree.Tree
	nav    *uistate.Navigator
	finder uistate.Finder
	rename *renameForm
	mode   Mode

	keys keyMap
	help help.Model

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	strict      bool

	backend    *backend.Watcher
	backendErr string

	fatal error

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps an already scanned tree. A width or height above zero pins
// that dimension and ignores resize messages for it. In strict mode an
// invariant violation ends the session and is reported by Err.
func NewModel(tree *fstree.Tree, width, height int, showFooter, strict bool, watcher *backend.Watcher) *Model {
	m := &Model{
		tree:       tree,
		nav:        uistate.NewNavigator(tree.Len()),
		mode:       ModeBrowsing,
		keys:       defaultKeyMap(),
		help:       help.New(),
		showFooter: showFooter,
		strict:     strict,
		backend:    watcher,
	}
	m.help.ShowAll = showFooter
	if width > 0 {
		m.width = width
		m.fixedWidth = true
		m.help.Width = width
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	handled, cmd := m.handleActiveForm(msg)
	if !handled {
		if handler := m.handlerFor(msg); handler != nil {
			cmd = handler(msg)
		}
	}
	if m.fatal != nil {
		return m, m.quit()
	}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

// Err returns the invariant violation that ended a strict session.
func (m *Model) Err() error {
	return m.fatal
}

// Mode reports the current input state.
func (m *Model) Mode() Mode {
	return m.mode
}

// Tree exposes the tree the model browses.
func (m *Model) Tree() *fstree.Tree {
	return m.tree
}

// Cursor returns the selected row index, or -1 when the tree is empty.
func (m *Model) Cursor() int {
	return m.nav.Cursor
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeRenaming:
		return m.handleRenameForm(msg)
	case ModeFinding:
		return m.handleFinderInput(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

func (m *Model) quit() tea.Cmd {
	m.mode = ModeExited
	return tea.Quit
}
