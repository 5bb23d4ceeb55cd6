// Package dict holds the polyphonic phrase dictionary: for each polyphonic
// character, the readings it can take and the phrases known to select each
// reading. The dictionary is built once, validated at build time, and is
// read-only afterwards.
package dict

import (
	"fmt"
	"sync"
)

type entry struct {
	readings []string            // enumeration order = registration order
	phrases  map[string][]string // reading -> phrases, registration order kept
	byPhrase map[string]string   // phrase -> reading, unique per character
}

// Dictionary is an immutable character -> reading -> phrase-set mapping.
// A character with two or more readings is polyphonic.
type Dictionary struct {
	entries map[rune]*entry
}

// Builder collects dictionary records before validation. Records added after
// Build has been called are ignored; the built Dictionary never changes.
type Builder struct {
	order []rune
	chars map[rune]*entry
	built bool
}

// NewBuilder returns an empty dictionary builder.
func NewBuilder() *Builder {
	return &Builder{chars: make(map[rune]*entry)}
}

// Add registers phrases under one reading of char. Repeated calls for the
// same (char, reading) accumulate phrases; the first call for a reading fixes
// its position in the character's enumeration order.
func (b *Builder) Add(char rune, reading string, phrases ...string) *Builder {
	if b.built {
		return b
	}
	e, ok := b.chars[char]
	if !ok {
		e = &entry{
			phrases:  make(map[string][]string),
			byPhrase: make(map[string]string),
		}
		b.chars[char] = e
		b.order = append(b.order, char)
	}
	if _, ok := e.phrases[reading]; !ok {
		e.readings = append(e.readings, reading)
		e.phrases[reading] = nil
	}
	for _, p := range phrases {
		if prev, ok := e.byPhrase[p]; ok {
			if prev != reading {
				// recorded here, rejected in Build
				e.byPhrase[p] = conflictMark
			}
			continue
		}
		e.byPhrase[p] = reading
		e.phrases[reading] = append(e.phrases[reading], p)
	}
	return b
}

const conflictMark = "\x00conflict"

// Build validates the collected records and freezes them. It fails when the
// same phrase is registered under two different readings of one character;
// that is a configuration-integrity error, not a runtime condition.
func (b *Builder) Build() (*Dictionary, error) {
	for _, char := range b.order {
		e := b.chars[char]
		for p, r := range e.byPhrase {
			if r == conflictMark {
				return nil, fmt.Errorf("dict: phrase %q registered under multiple readings of %q", p, string(char))
			}
		}
	}
	d := &Dictionary{entries: make(map[rune]*entry, len(b.chars))}
	for _, char := range b.order {
		src := b.chars[char]
		dst := &entry{
			readings: append([]string(nil), src.readings...),
			phrases:  make(map[string][]string, len(src.phrases)),
			byPhrase: make(map[string]string, len(src.byPhrase)),
		}
		for r, ps := range src.phrases {
			dst.phrases[r] = append([]string(nil), ps...)
		}
		for p, r := range src.byPhrase {
			dst.byPhrase[p] = r
		}
		d.entries[char] = dst
	}
	b.built = true
	return d, nil
}

// Readings returns the readings registered for char in enumeration order,
// or nil when the character is unknown.
func (d *Dictionary) Readings(char rune) []string {
	e, ok := d.entries[char]
	if !ok {
		return nil
	}
	return append([]string(nil), e.readings...)
}

// Phrases returns the phrases registered for one reading of char.
func (d *Dictionary) Phrases(char rune, reading string) []string {
	e, ok := d.entries[char]
	if !ok {
		return nil
	}
	return append([]string(nil), e.phrases[reading]...)
}

// IsPolyphonic reports whether char has at least two registered readings.
func (d *Dictionary) IsPolyphonic(char rune) bool {
	e, ok := d.entries[char]
	return ok && len(e.readings) >= 2
}

// ReadingForPhrase returns the single reading of char that phrase selects.
// Build-time validation guarantees the mapping is unambiguous.
func (d *Dictionary) ReadingForPhrase(char rune, phrase string) (string, bool) {
	e, ok := d.entries[char]
	if !ok {
		return "", false
	}
	r, ok := e.byPhrase[phrase]
	return r, ok
}

// AllPhrases returns every registered phrase across all characters, in
// character then reading enumeration order. The segmenter learns these as
// custom words so known phrases survive segmentation intact.
func (d *Dictionary) AllPhrases() []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range d.entries {
		for _, r := range e.readings {
			for _, p := range e.phrases[r] {
				if !seen[p] {
					seen[p] = true
					out = append(out, p)
				}
			}
		}
	}
	return out
}

var (
	defaultDict *Dictionary
	defaultErr  error
	defaultOnce sync.Once
)

// Load builds the embedded polyphonic table. The dictionary is validated and
// built once per process and shared read-only afterwards.
func Load() (*Dictionary, error) {
	defaultOnce.Do(func() {
		b := NewBuilder()
		for _, rec := range defaultRecords {
			b.Add(rec.char, rec.reading, rec.phrases...)
		}
		defaultDict, defaultErr = b.Build()
	})
	return defaultDict, defaultErr
}
