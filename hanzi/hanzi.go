// Package hanzi classifies runes as Chinese script.
package hanzi

// IsChinese reports whether r falls in the CJK Unified Ideographs block.
func IsChinese(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

// ContainsChinese reports whether s holds at least one Chinese character.
func ContainsChinese(s string) bool {
	for _, r := range s {
		if IsChinese(r) {
			return true
		}
	}
	return false
}
