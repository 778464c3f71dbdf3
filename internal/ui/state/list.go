package state

// List tracks the selection cursor and viewport offset over a filtered
// sequence. It stores only the sequence length; callers re-derive the
// visible items and call SetLength on every filter change so the cursor
// stays clamped. Cursor is -1 exactly when the list is empty.
type List struct {
	Length int
	Cursor int
	Offset int
}

// NewList returns a list over n entries with the cursor on the first one.
func NewList(n int) List {
	l := List{}
	l.SetLength(n)
	return l
}

// SetLength updates the underlying length and clamps cursor and offset.
func (l *List) SetLength(n int) {
	if n < 0 {
		n = 0
	}
	l.Length = n
	if n == 0 {
		l.Cursor = -1
		l.Offset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.Offset > n-1 {
		l.Offset = 0
	}
}

// Selected returns the cursor index and whether a selection exists.
func (l *List) Selected() (int, bool) {
	if l.Length == 0 || l.Cursor < 0 {
		return 0, false
	}
	return l.Cursor, true
}

// MoveUp moves the cursor up one entry, wrapping to the bottom.
func (l *List) MoveUp() bool {
	if l.Length == 0 {
		return false
	}
	if l.Cursor > 0 {
		l.Cursor--
	} else {
		l.Cursor = l.Length - 1
	}
	return true
}

// MoveDown moves the cursor down one entry, wrapping to the top.
func (l *List) MoveDown() bool {
	if l.Length == 0 {
		return false
	}
	if l.Cursor < l.Length-1 {
		l.Cursor++
	} else {
		l.Cursor = 0
	}
	return true
}

// Select places the cursor on idx, clamping into range.
func (l *List) Select(idx int) {
	if l.Length == 0 {
		l.Cursor = -1
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= l.Length {
		idx = l.Length - 1
	}
	l.Cursor = idx
}

// EnsureVisible adjusts the viewport offset so the cursor stays within a
// window of maxVisible rows.
func (l *List) EnsureVisible(maxVisible int) {
	if l.Length == 0 {
		l.Offset = 0
		return
	}
	if maxVisible <= 0 {
		l.Offset = 0
		return
	}
	maxOffset := l.Length - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if l.Offset > maxOffset {
		l.Offset = maxOffset
	}
	if l.Offset < 0 {
		l.Offset = 0
	}
	if l.Cursor >= 0 && l.Cursor < l.Offset {
		l.Offset = l.Cursor
	}
	if upper := l.Offset + maxVisible - 1; l.Cursor > upper {
		l.Offset = l.Cursor - maxVisible + 1
		if l.Offset > maxOffset {
			l.Offset = maxOffset
		}
		if l.Offset < 0 {
			l.Offset = 0
		}
	}
}
