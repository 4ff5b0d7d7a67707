package ui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/atomicstack/pomotree/internal/fstree"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func scenarioFS() fstest.MapFS {
	return fstest.MapFS{
		"b/d.txt": {Data: []byte("d")},
		"a.txt":   {Data: []byte("a")},
		"c.txt":   {Data: []byte("c")},
	}
}

func newTestModel(t *testing.T, fsys fs.FS) *Model {
	t.Helper()
	tree, err := fstree.New(".", fstree.FSScanner{FS: fsys})
	if err != nil {
		t.Fatalf("fstree.New: %v", err)
	}
	return NewModel(tree, 80, 20, false, false, nil)
}

func treeNames(tree *fstree.Tree) []string {
	rows := tree.Rows()
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Name
	}
	return out
}

func TestEnterTogglesSelectedDirectory(t *testing.T) {
	h := NewHarness(newTestModel(t, scenarioFS()))

	h.Press("enter")
	got := strings.Join(treeNames(h.Model().Tree()), ",")
	if got != "b,d.txt,a.txt,c.txt" {
		t.Fatalf("unexpected rows after expand: %s", got)
	}
	row, _ := h.Model().Tree().Row(0)
	if row.SubtreeSize != 1 || !row.Expanded {
		t.Fatalf("expected b expanded with one child, got %+v", row)
	}
	child, _ := h.Model().Tree().Row(1)
	if child.Depth != 1 {
		t.Fatalf("expected child depth 1, got %d", child.Depth)
	}

	h.Press("enter")
	got = strings.Join(treeNames(h.Model().Tree()), ",")
	if got != "b,a.txt,c.txt" {
		t.Fatalf("unexpected rows after collapse: %s", got)
	}
}

func TestEnterOnFileDoesNothing(t *testing.T) {
	h := NewHarness(newTestModel(t, scenarioFS()))
	h.Press("j", "enter")
	if h.Model().Tree().Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", h.Model().Tree().Len())
	}
	if h.Model().Cursor() != 1 {
		t.Fatalf("expected cursor to stay on a.txt, got %d", h.Model().Cursor())
	}
}

func TestCursorStopsAtEdges(t *testing.T) {
	h := NewHarness(newTestModel(t, scenarioFS()))

	h.Press("k")
	if h.Model().Cursor() != 0 {
		t.Fatalf("expected cursor 0 after moving up at the top, got %d", h.Model().Cursor())
	}
	h.Press("down", "down", "down", "j")
	if h.Model().Cursor() != 2 {
		t.Fatalf("expected cursor to stop at last row, got %d", h.Model().Cursor())
	}
	h.Press("g")
	if h.Model().Cursor() != 0 {
		t.Fatalf("expected g to jump to the first row, got %d", h.Model().Cursor())
	}
	h.Press("G")
	if h.Model().Cursor() != 2 {
		t.Fatalf("expected G to jump to the last row, got %d", h.Model().Cursor())
	}
}

func TestCollapseClampsCursor(t *testing.T) {
	fsys := fstest.MapFS{
		"b/d1.txt": {},
		"b/d2.txt": {},
	}
	h := NewHarness(newTestModel(t, fsys))
	h.Press("enter", "G")
	if h.Model().Cursor() != 2 {
		t.Fatalf("expected cursor on last child, got %d", h.Model().Cursor())
	}
	h.Press("g", "enter")
	if h.Model().Tree().Len() != 1 {
		t.Fatalf("expected 1 row after collapse, got %d", h.Model().Tree().Len())
	}
	if h.Model().Cursor() != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", h.Model().Cursor())
	}
}

func TestUnrecognizedKeysAreIgnored(t *testing.T) {
	h := NewHarness(newTestModel(t, scenarioFS()))
	h.Press("j")
	before := h.View()
	h.Press("z", "x", "esc", "tab")
	if h.Model().Mode() != ModeBrowsing {
		t.Fatalf("expected browsing, got %s", h.Model().Mode())
	}
	if h.Model().Cursor() != 1 {
		t.Fatalf("expected cursor unchanged, got %d", h.Model().Cursor())
	}
	if h.View() != before {
		t.Fatal("expected view unchanged by unrecognized keys")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, name := range []string{"q", "ctrl+c"} {
		t.Run(name, func(t *testing.T) {
			m := newTestModel(t, scenarioFS())
			_, cmd := m.Update(KeyPress(name))
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Fatal("expected tea.QuitMsg")
			}
			if m.Mode() != ModeExited {
				t.Fatalf("expected exited, got %s", m.Mode())
			}
		})
	}
}

func TestRenameSubmitReturnsToBrowsing(t *testing.T) {
	h := NewHarness(newTestModel(t, scenarioFS()))
	h.Press("j", "r")
	if h.Model().Mode() != ModeRenaming {
		t.Fatalf("expected renaming, got %s", h.Model().Mode())
	}
	view := h.View()
	for _, want := range []string{" Rename ", " submit <enter> ", "a.txt"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected rename view to contain %q:\n%s", want, view)
		}
	}

	// q is text while renaming, not quit.
	h.Press("q")
	if h.Model().Mode() != ModeRenaming {
		t.Fatalf("expected q to be typed, got mode %s", h.Model().Mode())
	}
	if got := h.Model().rename.Value(); got != "a.txtq" {
		t.Fatalf("expected typed value a.txtq, got %q", got)
	}

	h.Press("enter")
	if h.Model().Mode() != ModeBrowsing {
		t.Fatalf("expected browsing after submit, got %s", h.Model().Mode())
	}
	if got := strings.Join(treeNames(h.Model().Tree()), ","); got != "b,a.txt,c.txt" {
		t.Fatalf("rename must not touch the tree, got %s", got)
	}
	if !strings.Contains(h.View(), "not supported") {
		t.Fatal("expected status line to report the stubbed rename")
	}
}

func TestRenameEscapeCancels(t *testing.T) {
	h := NewHarness(newTestModel(t, scenarioFS()))
	h.Press("r", "esc")
	if h.Model().Mode() != ModeBrowsing {
		t.Fatalf("expected browsing after esc, got %s", h.Model().Mode())
	}
	if strings.Contains(h.View(), " Rename ") {
		t.Fatal("expected rename strip to be gone")
	}
}

func TestCtrlCQuitsWhileRenaming(t *testing.T) {
	m := newTestModel(t, scenarioFS())
	m.Update(KeyPress("r"))
	_, cmd := m.Update(KeyPress("ctrl+c"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if m.Mode() != ModeExited {
		t.Fatalf("expected exited, got %s", m.Mode())
	}
}

func TestFindJumpsToBestMatch(t *testing.T) {
	h := NewHarness(newTestModel(t, scenarioFS()))
	h.Press("/", "c", ".", "t")
	if h.Model().Mode() != ModeFinding {
		t.Fatalf("expected finding, got %s", h.Model().Mode())
	}
	if h.Model().Cursor() != 2 {
		t.Fatalf("expected cursor on c.txt, got %d", h.Model().Cursor())
	}
	if !strings.Contains(h.View(), "/ c.t") {
		t.Fatalf("expected find prompt in view:\n%s", h.View())
	}

	h.Press("backspace", "backspace", "backspace", "a")
	if h.Model().Cursor() != 1 {
		t.Fatalf("expected cursor on a.txt, got %d", h.Model().Cursor())
	}

	h.Press("zzz")
	if !strings.Contains(h.View(), "(no match)") {
		t.Fatal("expected no match marker")
	}
	if h.Model().Cursor() != 1 {
		t.Fatalf("expected cursor to stay put without a match, got %d", h.Model().Cursor())
	}

	h.Press("enter")
	if h.Model().Mode() != ModeBrowsing {
		t.Fatalf("expected browsing, got %s", h.Model().Mode())
	}
	if h.Model().Tree().Len() != 3 {
		t.Fatal("finding must not filter rows")
	}
}

type brokenScanner struct {
	fstree.FSScanner
	broken string
}

func (s brokenScanner) ListChildren(dir string, depth int) ([]fstree.Row, error) {
	if dir == s.broken {
		return nil, &fstree.ScanError{Path: dir, Err: fs.ErrPermission}
	}
	return s.FSScanner.ListChildren(dir, depth)
}

func TestUnreadableDirectoryReportsOnStatusLine(t *testing.T) {
	scanner := brokenScanner{FSScanner: fstree.FSScanner{FS: scenarioFS()}, broken: "b"}
	tree, err := fstree.New(".", scanner)
	if err != nil {
		t.Fatalf("fstree.New: %v", err)
	}
	h := NewHarness(NewModel(tree, 80, 20, false, false, nil))
	h.Press("enter")

	row, _ := tree.Row(0)
	if row.Expanded || tree.Len() != 3 {
		t.Fatalf("expected b to stay collapsed, got %+v (len %d)", row, tree.Len())
	}
	view := h.View()
	if !strings.Contains(view, "Error: cannot read b") {
		t.Fatalf("expected scan error on status line:\n%s", view)
	}

	h.Press("j")
	if !strings.Contains(h.View(), "Error: cannot read b") {
		t.Fatal("expected error to remain until the next toggle")
	}
}

func TestStrictModeQuitsOnInvalidIndex(t *testing.T) {
	m := newTestModel(t, scenarioFS())
	m.strict = true
	m.nav.Cursor = 7

	_, cmd := m.Update(KeyPress("enter"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	if !errors.Is(m.Err(), fstree.ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", m.Err())
	}
	if m.Mode() != ModeExited {
		t.Fatalf("expected exited mode, got %s", m.Mode())
	}
}

func TestStrictProgramReturnsInvariantError(t *testing.T) {
	m := newTestModel(t, scenarioFS())
	m.strict = true
	m.nav.Cursor = 7

	p := tea.NewProgram(m,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	go p.Send(KeyPress("enter"))

	final, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	fm, ok := final.(*Model)
	if !ok {
		t.Fatalf("expected *Model back from Run, got %T", final)
	}
	if !errors.Is(fm.Err(), fstree.ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", fm.Err())
	}
}

func TestInvalidIndexIsLoggedOutsideStrictMode(t *testing.T) {
	m := newTestModel(t, scenarioFS())
	m.nav.Cursor = 7
	m.toggleSelected()
	if m.Cursor() != 2 {
		t.Fatalf("expected cursor clamped back into range, got %d", m.Cursor())
	}
}

func TestWindowResizeKeepsCursorVisible(t *testing.T) {
	fsys := fstest.MapFS{}
	for i := 0; i < 30; i++ {
		fsys[fmt.Sprintf("f%02d.txt", i)] = &fstest.MapFile{}
	}
	tree, err := fstree.New(".", fstree.FSScanner{FS: fsys})
	if err != nil {
		t.Fatalf("fstree.New: %v", err)
	}
	h := NewHarness(NewModel(tree, 0, 0, false, false, nil))
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 10})
	h.Press("G")

	visible := h.Model().maxVisibleItems()
	if visible != 5 {
		t.Fatalf("expected 5 visible rows, got %d", visible)
	}
	if h.Model().nav.ViewportOffset != 25 {
		t.Fatalf("expected viewport offset 25, got %d", h.Model().nav.ViewportOffset)
	}
	view := h.View()
	if !strings.Contains(view, "f29.txt") || strings.Contains(view, "f00.txt") {
		t.Fatalf("expected only the tail of the list to render:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 10 {
		t.Fatalf("expected 10 lines, got %d:\n%s", lines, view)
	}
}

func TestFixedSizeIgnoresResize(t *testing.T) {
	m := newTestModel(t, scenarioFS())
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 100})
	if m.width != 80 || m.height != 20 {
		t.Fatalf("expected fixed 80x20, got %dx%d", m.width, m.height)
	}
}

func TestWideNamesFitTheirColumn(t *testing.T) {
	row := fstree.Row{Name: "日本語のとても長いファイル名です.txt", Path: "x", Kind: fstree.KindFile, Depth: 1}
	for _, width := range []int{9, 20, 21} {
		for _, selected := range []bool{true, false} {
			line := buildRowLine(row, selected, width)
			if got := lipgloss.Width(line); got > width {
				t.Fatalf("width %d selected=%v: line is %d cells wide: %q", width, selected, got, line)
			}
			if selected && lipgloss.Width(line) != width {
				t.Fatalf("width %d: expected selected row padded to the full width, got %d", width, lipgloss.Width(line))
			}
		}
	}
	if got := truncateText("日本語テキスト", 5); lipgloss.Width(got) > 5 || !strings.HasSuffix(got, "…") {
		t.Fatalf("unexpected truncation %q", got)
	}
}
