package tracker

import "context"

// KonamiSequence is the fixed 10-key unlock sequence: ↑↑↓↓←→←→BA.
var KonamiSequence = []string{
	"up", "up", "down", "down",
	"left", "right", "left", "right",
	"b", "a",
}

// HandleKey advances the sequence matcher. A wrong key resets the match
// index to zero; overlapping sequences are not detected. A full match
// triggers the unlock and resets the index so detection can run again
// (the unlock itself stays idempotent).
func (t *Tracker) HandleKey(ctx context.Context, key string) error {
	if key == KonamiSequence[t.konamiIndex] {
		t.konamiIndex++
		if t.konamiIndex == len(KonamiSequence) {
			t.konamiIndex = 0
			return t.discover(ctx, "secret-001", "konami-code")
		}
	} else {
		t.konamiIndex = 0
	}
	return nil
}
