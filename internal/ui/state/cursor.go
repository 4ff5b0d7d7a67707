// Package state holds the selection and query state the browser keeps on top
// of the flattened tree. Nothing here owns rows; callers pass the current row
// count on every call.
package state

// Navigator tracks the selected row and the first row of the viewport.
// Cursor is -1 only while the list is empty.
type Navigator struct {
	Cursor         int
	ViewportOffset int
}

// NewNavigator returns a navigator positioned on the first of n rows.
func NewNavigator(n int) *Navigator {
	nav := &Navigator{}
	nav.Reset(n)
	return nav
}

// Reset selects the first row, or nothing when n is 0.
func (nv *Navigator) Reset(n int) {
	nv.ViewportOffset = 0
	if n <= 0 {
		nv.Cursor = -1
		return
	}
	nv.Cursor = 0
}

// Selected returns the cursor and whether anything is selected.
func (nv *Navigator) Selected() (int, bool) {
	if nv.Cursor < 0 {
		return -1, false
	}
	return nv.Cursor, true
}

// Clamp pulls the cursor back into [0, n-1] after the list changed size.
func (nv *Navigator) Clamp(n int) {
	if n <= 0 {
		nv.Cursor = -1
		nv.ViewportOffset = 0
		return
	}
	if nv.Cursor < 0 {
		nv.Cursor = 0
	}
	if nv.Cursor >= n {
		nv.Cursor = n - 1
	}
	if nv.ViewportOffset > n-1 {
		nv.ViewportOffset = n - 1
	}
	if nv.ViewportOffset < 0 {
		nv.ViewportOffset = 0
	}
}

// MoveNext selects the following row. It stops at the last row.
func (nv *Navigator) MoveNext(n int) bool {
	return nv.moveBy(n, 1)
}

// MovePrevious selects the preceding row. It stops at the first row.
func (nv *Navigator) MovePrevious(n int) bool {
	return nv.moveBy(n, -1)
}

// MoveHome moves the cursor to the first row.
func (nv *Navigator) MoveHome(n int) bool {
	if n <= 0 {
		nv.Cursor = -1
		return false
	}
	old := nv.Cursor
	nv.Cursor = 0
	return old != nv.Cursor
}

// MoveEnd moves the cursor to the last row.
func (nv *Navigator) MoveEnd(n int) bool {
	if n <= 0 {
		nv.Cursor = -1
		return false
	}
	old := nv.Cursor
	nv.Cursor = n - 1
	return old != nv.Cursor
}

// MovePageUp moves the cursor up by the given page size.
func (nv *Navigator) MovePageUp(n, maxVisible int) bool {
	return nv.moveBy(n, -pageSize(n, maxVisible))
}

// MovePageDown moves the cursor down by the given page size.
func (nv *Navigator) MovePageDown(n, maxVisible int) bool {
	return nv.moveBy(n, pageSize(n, maxVisible))
}

// MoveTo selects index i when it is in range.
func (nv *Navigator) MoveTo(n, i int) bool {
	if i < 0 || i >= n {
		return false
	}
	old := nv.Cursor
	nv.Cursor = i
	return old != nv.Cursor
}

func (nv *Navigator) moveBy(n, delta int) bool {
	if n <= 0 {
		nv.Cursor = -1
		return false
	}
	old := nv.Cursor
	if nv.Cursor < 0 {
		nv.Cursor = 0
	}
	nv.Cursor += delta
	if nv.Cursor < 0 {
		nv.Cursor = 0
	}
	if nv.Cursor >= n {
		nv.Cursor = n - 1
	}
	return nv.Cursor != old
}

func pageSize(n, maxVisible int) int {
	if n == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > n {
		size = n
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureVisible adjusts the viewport offset so the cursor stays visible.
func (nv *Navigator) EnsureVisible(n, maxVisible int) {
	nv.Clamp(n)
	if n <= 0 {
		return
	}
	if maxVisible <= 0 {
		nv.ViewportOffset = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if nv.ViewportOffset > maxOffset {
		nv.ViewportOffset = maxOffset
	}
	if nv.Cursor < nv.ViewportOffset {
		nv.ViewportOffset = nv.Cursor
	}
	upper := nv.ViewportOffset + maxVisible - 1
	if nv.Cursor > upper {
		nv.ViewportOffset = nv.Cursor - maxVisible + 1
		if nv.ViewportOffset > maxOffset {
			nv.ViewportOffset = maxOffset
		}
	}
}
