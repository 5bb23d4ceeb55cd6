package resolve

// DefaultWindowRadius is the number of runes taken on each side of the
// target character for window matching. Ten runes comfortably exceeds the
// longest dictionary phrase.
const DefaultWindowRadius = 10

// window returns the bounded slice of runes centered on off and the rune
// offset of its first character. The window is clamped to the text bounds
// and never reads past them.
func window(runes []rune, off, radius int) (start int, w []rune) {
	start = off - radius
	if start < 0 {
		start = 0
	}
	end := off + radius + 1
	if end > len(runes) {
		end = len(runes)
	}
	return start, runes[start:end]
}
