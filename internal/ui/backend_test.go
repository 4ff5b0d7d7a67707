package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/pomotree/internal/backend"
	"github.com/atomicstack/pomotree/internal/fstree"
)

// newDiskTree lays out root/{b/d.txt, a.txt, c.txt} and scans it.
func newDiskTree(t *testing.T) (string, *fstree.Tree) {
	t.Helper()
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "b"))
	for _, name := range []string{"b/d.txt", "a.txt", "c.txt"} {
		mustWrite(t, filepath.Join(root, name))
	}
	tree, err := fstree.New(root, fstree.OSScanner{})
	if err != nil {
		t.Fatalf("fstree.New: %v", err)
	}
	return root, tree
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func changeIn(dir string) backendEventMsg {
	return backendEventMsg{event: backend.Event{Dir: dir, Op: "CREATE"}}
}

func selectedName(t *testing.T, m *Model) string {
	t.Helper()
	row, ok := m.selectedRow()
	if !ok {
		t.Fatal("expected a selected row")
	}
	return row.Name
}

func TestBackendEventRefreshesExpandedDirectory(t *testing.T) {
	root, tree := newDiskTree(t)
	h := NewHarness(NewModel(tree, 80, 20, false, true, nil))
	h.Press("enter", "j", "j")
	if got := selectedName(t, h.Model()); got != "a.txt" {
		t.Fatalf("expected a.txt selected, got %s", got)
	}

	mustWrite(t, filepath.Join(root, "b", "e.txt"))
	h.Send(changeIn(filepath.Join(root, "b")))

	got := strings.Join(treeNames(tree), ",")
	if got != "b,d.txt,e.txt,a.txt,c.txt" {
		t.Fatalf("unexpected rows after refresh: %s", got)
	}
	row, _ := tree.Row(0)
	if row.SubtreeSize != 2 {
		t.Fatalf("expected b to hold 2 rows, got %d", row.SubtreeSize)
	}
	if got := selectedName(t, h.Model()); got != "a.txt" {
		t.Fatalf("expected cursor to follow a.txt, got %s", got)
	}
	if err := tree.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if h.Model().Err() != nil {
		t.Fatalf("unexpected strict failure: %v", h.Model().Err())
	}
}

func TestBackendEventRefreshesRoot(t *testing.T) {
	root, tree := newDiskTree(t)
	h := NewHarness(NewModel(tree, 80, 20, false, true, nil))
	h.Press("enter", "G")
	if got := selectedName(t, h.Model()); got != "c.txt" {
		t.Fatalf("expected c.txt selected, got %s", got)
	}

	mustWrite(t, filepath.Join(root, "aa.txt"))
	mustMkdir(t, filepath.Join(root, "z"))
	h.Send(changeIn(root))

	got := strings.Join(treeNames(tree), ",")
	if got != "b,d.txt,z,a.txt,aa.txt,c.txt" {
		t.Fatalf("unexpected rows after root refresh: %s", got)
	}
	if row, _ := tree.Row(0); !row.Expanded {
		t.Fatal("expected b to stay expanded")
	}
	if row, _ := tree.Row(2); row.Expanded {
		t.Fatal("expected new directory to arrive collapsed")
	}
	if got := selectedName(t, h.Model()); got != "c.txt" {
		t.Fatalf("expected cursor to follow c.txt, got %s", got)
	}
	if err := tree.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestBackendEventIgnoresDirectoriesOffScreen(t *testing.T) {
	root, tree := newDiskTree(t)
	mustMkdir(t, filepath.Join(root, "b", "deep"))
	h := NewHarness(NewModel(tree, 80, 20, false, true, nil))

	mustWrite(t, filepath.Join(root, "b", "e.txt"))
	h.Send(changeIn(filepath.Join(root, "b")))
	if tree.Len() != 3 {
		t.Fatalf("expected collapsed b to be left alone, got %d rows", tree.Len())
	}

	h.Send(changeIn(filepath.Join(root, "b", "deep")))
	if tree.Len() != 3 {
		t.Fatalf("expected hidden directory to be ignored, got %d rows", tree.Len())
	}
}

func TestBackendEventCollapsesRemovedDirectory(t *testing.T) {
	root, tree := newDiskTree(t)
	h := NewHarness(NewModel(tree, 80, 20, false, true, nil))
	h.Press("enter", "j")

	if err := os.RemoveAll(filepath.Join(root, "b")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	h.Send(changeIn(filepath.Join(root, "b")))

	row, _ := tree.Row(0)
	if row.Expanded || row.SubtreeSize != 0 || tree.Len() != 3 {
		t.Fatalf("expected b collapsed, got %+v (len %d)", row, tree.Len())
	}
	if !strings.Contains(h.View(), "Error: cannot read") {
		t.Fatalf("expected scan error on status line:\n%s", h.View())
	}
	if err := tree.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if h.Model().Err() != nil {
		t.Fatalf("unexpected strict failure: %v", h.Model().Err())
	}

	h.Send(changeIn(root))
	if got := strings.Join(treeNames(tree), ","); got != "a.txt,c.txt" {
		t.Fatalf("expected b gone after root refresh, got %s", got)
	}
	if h.Model().Cursor() < 0 || h.Model().Cursor() >= tree.Len() {
		t.Fatalf("cursor out of range: %d", h.Model().Cursor())
	}
}

func TestBackendErrorShowsOnStatusLine(t *testing.T) {
	_, tree := newDiskTree(t)
	h := NewHarness(NewModel(tree, 80, 20, false, false, nil))
	h.Send(backendEventMsg{event: backend.Event{Err: errors.New("queue overflow")}})
	if !strings.Contains(h.View(), "watch: queue overflow") {
		t.Fatalf("expected watch error on status line:\n%s", h.View())
	}
}

func TestExpandingSyncsWatcher(t *testing.T) {
	root, tree := newDiskTree(t)
	w, err := backend.NewWatcher(root, backend.DefaultInterval)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()
	h := NewHarness(NewModel(tree, 80, 20, false, false, w))

	h.Press("enter")
	if w.Watched() != 2 {
		t.Fatalf("expected root and b watched, got %d", w.Watched())
	}
	h.Press("enter")
	if w.Watched() != 1 {
		t.Fatalf("expected only the root watched after collapse, got %d", w.Watched())
	}
}

func TestBackendDoneStopsListening(t *testing.T) {
	root, tree := newDiskTree(t)
	w, err := backend.NewWatcher(root, backend.DefaultInterval)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()
	m := NewModel(tree, 80, 20, false, false, w)
	if m.Init() == nil {
		t.Fatal("expected Init to wait for watcher events")
	}
	NewHarness(m).Send(backendDoneMsg{})
	if m.Init() != nil {
		t.Fatal("expected no watcher command once the backend is done")
	}
}
