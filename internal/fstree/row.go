package fstree

// Kind distinguishes directory rows from everything else.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

// Row is one renderable line of the flattened tree.
type Row struct {
	Path     string
	Name     string
	Depth    int
	Kind     Kind
	Expanded bool
	// SubtreeSize counts the rows materialized directly after this one that
	// belong to its expanded subtree. Always 0 for files and collapsed rows.
	SubtreeSize int
}

// IsDir reports whether the row is a directory.
func (r Row) IsDir() bool {
	return r.Kind == KindDirectory
}

// end returns the exclusive index just past the row's subtree when the row
// sits at index i.
func (r Row) end(i int) int {
	return i + 1 + r.SubtreeSize
}
