package state

import "time"

// ChordWindow bounds the gap between the two presses of a key chord.
const ChordWindow = time.Second

// KeySequence detects timed two-key chords such as "dd". It keeps only a
// single-step memory: the previous key and when it was pressed. Any
// intervening different key resets the pending chord.
type KeySequence struct {
	last   string
	lastAt time.Time
	armed  bool
}

// Observe records a keypress and reports whether it completed a chord with
// the immediately preceding press. A completed chord consumes the memory so
// a third press starts a fresh sequence.
func (k *KeySequence) Observe(key string, now time.Time) bool {
	if k.armed && k.last == key && now.Sub(k.lastAt) < ChordWindow {
		k.Reset()
		return true
	}
	k.last = key
	k.lastAt = now
	k.armed = true
	return false
}

// Reset drops any pending chord.
func (k *KeySequence) Reset() {
	k.last = ""
	k.armed = false
}
