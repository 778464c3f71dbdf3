package state

import "testing"

func TestListCursorWrapsBothWays(t *testing.T) {
	l := NewList(3)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", l.Cursor)
	}
	l.MoveUp()
	if l.Cursor != 2 {
		t.Fatalf("expected wrap to bottom, got %d", l.Cursor)
	}
	l.MoveDown()
	if l.Cursor != 0 {
		t.Fatalf("expected wrap to top, got %d", l.Cursor)
	}
}

func TestEmptyListHasNoCursor(t *testing.T) {
	l := NewList(0)
	if l.Cursor != -1 {
		t.Fatalf("expected cursor -1 for empty list, got %d", l.Cursor)
	}
	if _, ok := l.Selected(); ok {
		t.Fatal("expected no selection")
	}
	if l.MoveDown() || l.MoveUp() {
		t.Fatal("expected movement to fail on empty list")
	}
}

func TestSetLengthClampsCursor(t *testing.T) {
	l := NewList(5)
	l.Select(4)
	l.SetLength(2)
	if l.Cursor != 1 {
		t.Fatalf("expected cursor clamped to 1, got %d", l.Cursor)
	}
	l.SetLength(0)
	if l.Cursor != -1 {
		t.Fatalf("expected cursor -1 after shrink to empty, got %d", l.Cursor)
	}
	l.SetLength(3)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor restored to 0 on regrow, got %d", l.Cursor)
	}
}

func TestEnsureVisibleScrollsWithCursor(t *testing.T) {
	l := NewList(10)
	l.Select(7)
	l.EnsureVisible(5)
	if l.Offset != 3 {
		t.Fatalf("expected offset 3 to keep cursor in window, got %d", l.Offset)
	}
	l.Select(1)
	l.EnsureVisible(5)
	if l.Offset != 1 {
		t.Fatalf("expected offset to follow cursor up, got %d", l.Offset)
	}
}
