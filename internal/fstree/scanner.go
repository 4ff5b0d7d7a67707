package fstree

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// Scanner lists the immediate children of a directory as rows at the given
// depth, ordered directories first and then by name.
type Scanner interface {
	ListChildren(dir string, depth int) ([]Row, error)
}

// OSScanner reads directories from the local filesystem.
type OSScanner struct{}

func (OSScanner) ListChildren(dir string, depth int) ([]Row, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ScanError{Path: dir, Err: err}
	}
	return rowsFromEntries(entries, depth, func(name string) string {
		return filepath.Join(dir, name)
	}), nil
}

// FSScanner reads directories from an fs.FS. Paths use fs.FS conventions
// (slash separated, unrooted).
type FSScanner struct {
	FS fs.FS
}

func (s FSScanner) ListChildren(dir string, depth int) ([]Row, error) {
	entries, err := fs.ReadDir(s.FS, dir)
	if err != nil {
		return nil, &ScanError{Path: dir, Err: err}
	}
	return rowsFromEntries(entries, depth, func(name string) string {
		if dir == "." {
			return name
		}
		return path.Join(dir, name)
	}), nil
}

func rowsFromEntries(entries []fs.DirEntry, depth int, join func(string) string) []Row {
	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		kind := KindFile
		if entry.IsDir() {
			kind = KindDirectory
		}
		rows = append(rows, Row{
			Path:  join(entry.Name()),
			Name:  entry.Name(),
			Depth: depth,
			Kind:  kind,
		})
	}
	SortRows(rows)
	return rows
}

// SortRows orders siblings: directories before files, then by name.
func SortRows(rows []Row) {
	slices.SortStableFunc(rows, func(a, b Row) int {
		if a.IsDir() != b.IsDir() {
			if a.IsDir() {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
}
