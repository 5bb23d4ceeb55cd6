// Package reading wraps the go-pinyin lookup as the pronunciation authority
// of last resort. It never fails for a valid Chinese character; a character
// the lookup cannot classify gets no readings and is treated as non-Chinese
// by the annotation driver.
package reading

import "github.com/mozillazg/go-pinyin"

// Adapter returns tone-marked pinyin candidates for single characters,
// most common reading first.
type Adapter struct {
	args pinyin.Args
}

// New builds an adapter in tone-marked style with heteronym candidates
// enabled.
func New() *Adapter {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone
	args.Heteronym = true
	return &Adapter{args: args}
}

// All returns every known reading of r, most common first. An empty result
// means r is not a known Chinese character.
func (a *Adapter) All(r rune) []string {
	return pinyin.SinglePinyin(r, a.args)
}

// Default returns the most common reading of r, or "" when r is unknown.
func (a *Adapter) Default(r rune) string {
	if rs := a.All(r); len(rs) > 0 {
		return rs[0]
	}
	return ""
}
