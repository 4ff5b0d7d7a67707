package fstree

import (
	"errors"
	"fmt"
	"slices"
)

// Tree is the flattened pre-order view of the expanded part of a directory
// tree. It is not safe for concurrent use; a single owner drives it.
type Tree struct {
	root    string
	scanner Scanner
	rows    []Row
}

// New scans root and returns a tree holding its immediate children at depth 0.
func New(root string, scanner Scanner) (*Tree, error) {
	if scanner == nil {
		scanner = OSScanner{}
	}
	t := &Tree{root: root, scanner: scanner}
	rows, err := t.list(root, 0)
	if err != nil {
		return nil, err
	}
	t.rows = rows
	return t, nil
}

// Root returns the directory the tree was built from.
func (t *Tree) Root() string {
	return t.root
}

// Len returns the number of visible rows.
func (t *Tree) Len() int {
	return len(t.rows)
}

// Row returns the row at index i.
func (t *Tree) Row(i int) (Row, bool) {
	if i < 0 || i >= len(t.rows) {
		return Row{}, false
	}
	return t.rows[i], true
}

// Rows returns a copy of the visible rows.
func (t *Tree) Rows() []Row {
	return slices.Clone(t.rows)
}

// Toggle expands a collapsed directory row or collapses an expanded one.
// File rows are left alone. A directory that cannot be read stays collapsed
// and the *ScanError is returned.
func (t *Tree) Toggle(index int) error {
	row, err := t.at(index)
	if err != nil {
		return err
	}
	if !row.IsDir() {
		return nil
	}
	if row.Expanded {
		t.collapse(index)
		return nil
	}
	return t.expand(index)
}

// Expand materializes the children of the directory row at index.
func (t *Tree) Expand(index int) error {
	row, err := t.at(index)
	if err != nil {
		return err
	}
	if !row.IsDir() || row.Expanded {
		return nil
	}
	return t.expand(index)
}

// Collapse drops the materialized subtree of the row at index.
func (t *Tree) Collapse(index int) error {
	row, err := t.at(index)
	if err != nil {
		return err
	}
	if !row.Expanded {
		return nil
	}
	t.collapse(index)
	return nil
}

// Refresh re-scans an expanded directory row. Children that still exist keep
// their own expansion state. If the directory can no longer be read the row is
// collapsed and the scan error returned.
func (t *Tree) Refresh(index int) error {
	row, err := t.at(index)
	if err != nil {
		return err
	}
	if !row.IsDir() || !row.Expanded {
		return nil
	}
	fresh, err := t.list(row.Path, row.Depth+1)
	if err != nil {
		t.collapse(index)
		return err
	}
	start, end := index+1, row.end(index)
	merged := mergeBlocks(t.rows[start:end], fresh)
	t.rows = slices.Replace(t.rows, start, end, merged...)
	t.rows[index].SubtreeSize = len(merged)
	t.adjustAncestors(index, len(merged)-(end-start))
	return nil
}

// RefreshRoot re-scans the root directory, keeping the subtrees of top-level
// rows that still exist.
func (t *Tree) RefreshRoot() error {
	fresh, err := t.list(t.root, 0)
	if err != nil {
		return err
	}
	t.rows = mergeBlocks(t.rows, fresh)
	return nil
}

// Parent returns the index of the directory row containing index, or -1 for
// top-level rows and out of range indexes.
func (t *Tree) Parent(index int) int {
	if index <= 0 || index >= len(t.rows) {
		return -1
	}
	depth := t.rows[index].Depth
	for i := index - 1; i >= 0; i-- {
		if t.rows[i].Depth < depth {
			return i
		}
	}
	return -1
}

// IndexOf returns the index of the visible row with the given path.
func (t *Tree) IndexOf(path string) int {
	for i, row := range t.rows {
		if row.Path == path {
			return i
		}
	}
	return -1
}

// ExpandedPaths lists the paths of every expanded row in display order.
func (t *Tree) ExpandedPaths() []string {
	var paths []string
	for _, row := range t.rows {
		if row.Expanded {
			paths = append(paths, row.Path)
		}
	}
	return paths
}

// Validate checks the structural invariants of the row list: depths nest by
// one, every subtree range fits inside its parent's, and collapsed or file
// rows own no rows.
func (t *Tree) Validate() error {
	return validateRange(t.rows, 0, len(t.rows), 0)
}

func validateRange(rows []Row, start, end, depth int) error {
	for i := start; i < end; {
		row := rows[i]
		if row.Depth != depth {
			return fmt.Errorf("row %d (%s): depth %d, want %d", i, row.Name, row.Depth, depth)
		}
		if row.SubtreeSize < 0 {
			return fmt.Errorf("row %d (%s): negative subtree size %d", i, row.Name, row.SubtreeSize)
		}
		if !row.Expanded && row.SubtreeSize != 0 {
			return fmt.Errorf("row %d (%s): collapsed row owns %d rows", i, row.Name, row.SubtreeSize)
		}
		if row.Expanded && !row.IsDir() {
			return fmt.Errorf("row %d (%s): file row marked expanded", i, row.Name)
		}
		stop := row.end(i)
		if stop > end {
			return fmt.Errorf("row %d (%s): subtree ends at %d beyond %d", i, row.Name, stop, end)
		}
		if err := validateRange(rows, i+1, stop, depth+1); err != nil {
			return err
		}
		i = stop
	}
	return nil
}

func (t *Tree) at(index int) (Row, error) {
	if index < 0 || index >= len(t.rows) {
		return Row{}, invalidIndex(index, len(t.rows))
	}
	return t.rows[index], nil
}

func (t *Tree) list(dir string, depth int) ([]Row, error) {
	rows, err := t.scanner.ListChildren(dir, depth)
	if err != nil {
		var scanErr *ScanError
		if !errors.As(err, &scanErr) {
			err = &ScanError{Path: dir, Err: err}
		}
		return nil, err
	}
	return rows, nil
}

func (t *Tree) expand(index int) error {
	row := t.rows[index]
	children, err := t.list(row.Path, row.Depth+1)
	if err != nil {
		return err
	}
	t.rows = slices.Insert(t.rows, index+1, children...)
	t.rows[index].Expanded = true
	t.rows[index].SubtreeSize = len(children)
	t.adjustAncestors(index, len(children))
	return nil
}

func (t *Tree) collapse(index int) {
	row := t.rows[index]
	t.rows = slices.Delete(t.rows, index+1, row.end(index))
	t.rows[index].Expanded = false
	t.rows[index].SubtreeSize = 0
	t.adjustAncestors(index, -row.SubtreeSize)
}

// adjustAncestors applies delta to every open ancestor of the row at index.
// In pre-order the nearest preceding row with a smaller depth is the parent,
// so walking backwards while tracking the depth finds the whole chain.
func (t *Tree) adjustAncestors(index, delta int) {
	if delta == 0 {
		return
	}
	depth := t.rows[index].Depth
	for i := index - 1; i >= 0 && depth > 0; i-- {
		if t.rows[i].Depth < depth {
			t.rows[i].SubtreeSize += delta
			depth = t.rows[i].Depth
		}
	}
}

// mergeBlocks returns fresh with each row replaced by its existing block (the
// row plus its materialized subtree) from old when the path and kind match.
func mergeBlocks(old, fresh []Row) []Row {
	blocks := make(map[string][]Row, len(old))
	for i := 0; i < len(old); {
		end := old[i].end(i)
		if end > len(old) {
			end = len(old)
		}
		blocks[old[i].Path] = old[i:end]
		i = end
	}
	merged := make([]Row, 0, len(old)+len(fresh))
	for _, row := range fresh {
		if block, ok := blocks[row.Path]; ok && block[0].Kind == row.Kind {
			merged = append(merged, block...)
			continue
		}
		merged = append(merged, row)
	}
	return merged
}
