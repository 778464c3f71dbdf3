package state

import (
	"testing"
	"time"
)

func TestChordCompletesWithinWindow(t *testing.T) {
	var k KeySequence
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if k.Observe("d", base) {
		t.Fatal("expected first press not to complete a chord")
	}
	if !k.Observe("d", base.Add(900*time.Millisecond)) {
		t.Fatal("expected second press within window to complete")
	}
}

func TestChordExpiresOutsideWindow(t *testing.T) {
	var k KeySequence
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	k.Observe("d", base)
	if k.Observe("d", base.Add(ChordWindow)) {
		t.Fatal("expected press at the window boundary not to complete")
	}
	// The late press itself starts a fresh sequence.
	if !k.Observe("d", base.Add(ChordWindow+100*time.Millisecond)) {
		t.Fatal("expected the restarted sequence to complete")
	}
}

func TestInterveningKeyResetsChord(t *testing.T) {
	var k KeySequence
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	k.Observe("d", base)
	k.Observe("j", base.Add(100*time.Millisecond))
	if k.Observe("d", base.Add(200*time.Millisecond)) {
		t.Fatal("expected intervening key to break the chord")
	}
}

func TestChordConsumesMemory(t *testing.T) {
	var k KeySequence
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	k.Observe("d", base)
	k.Observe("d", base.Add(100*time.Millisecond))
	if k.Observe("d", base.Add(200*time.Millisecond)) {
		t.Fatal("expected third press to start over, not chain")
	}
}
