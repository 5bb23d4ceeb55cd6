// Package resolve decides the reading of a polyphonic character in context.
// Resolution is strictly ordered: the segmenter token covering the character
// is matched against the phrase dictionary first, then dictionary phrases are
// searched inside a bounded window around the character, and finally the
// pronunciation adapter supplies its default reading. The result carries a
// provenance tag naming the step that produced it.
package resolve

import (
	"chineseparse/dict"
	"chineseparse/model"
)

// Tokenizer supplies the cached token sequence for a text unit.
type Tokenizer interface {
	Tokenize(text string) []model.Token
}

// Fallback supplies candidate readings for single characters, most common
// first.
type Fallback interface {
	Default(r rune) string
	All(r rune) []string
}

// Result is one resolved reading plus the step that produced it. Phrase is
// the dictionary phrase that decided the reading, when one applied.
type Result struct {
	Reading    string           `json:"reading"`
	Provenance model.Provenance `json:"provenance"`
	Phrase     string           `json:"phrase,omitempty"`
}

// Resolver resolves polyphonic characters against an immutable dictionary.
// It is a pure function of (text, offset, dictionary state): identical inputs
// always produce identical results.
type Resolver struct {
	dict   *dict.Dictionary
	tok    Tokenizer
	fb     Fallback
	radius int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithWindowRadius overrides the context window radius, in runes per side.
func WithWindowRadius(radius int) Option {
	return func(r *Resolver) {
		if radius > 0 {
			r.radius = radius
		}
	}
}

// New builds a Resolver over the given dictionary, tokenizer and fallback.
func New(d *dict.Dictionary, tok Tokenizer, fb Fallback, opts ...Option) *Resolver {
	r := &Resolver{dict: d, tok: tok, fb: fb, radius: DefaultWindowRadius}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve decides the reading of the character at rune offset off in text.
// It is defined for offsets whose character is Chinese-script and polyphonic
// in the dictionary; callers route other characters straight to the fallback
// adapter.
func (r *Resolver) Resolve(text string, off int) Result {
	runes := []rune(text)
	if off < 0 || off >= len(runes) {
		return Result{Provenance: model.ProvenanceFallback}
	}
	char := runes[off]

	if res, ok := r.matchToken(text, off, char); ok {
		return res
	}
	if res, ok := r.matchWindow(runes, off, char); ok {
		return res
	}
	return Result{Reading: r.fb.Default(char), Provenance: model.ProvenanceFallback}
}

// matchToken checks whether the token covering off equals a registered
// phrase. Build-time validation guarantees a phrase maps to exactly one
// reading, so a hit is unambiguous.
func (r *Resolver) matchToken(text string, off int, char rune) (Result, bool) {
	for _, t := range r.tok.Tokenize(text) {
		if !t.Contains(off) {
			continue
		}
		if rd, ok := r.dict.ReadingForPhrase(char, t.Text); ok {
			return Result{Reading: rd, Provenance: model.ProvenanceToken, Phrase: t.Text}, true
		}
		break
	}
	return Result{}, false
}

// windowMatch is one phrase occurrence inside the context window that covers
// the target character at the right position.
type windowMatch struct {
	reading string
	phrase  string
	length  int
	// centerDist is twice the distance between the phrase's center and the
	// target character; smaller is more tightly centered.
	centerDist int
	// readingOrder is the dictionary's enumeration index of the reading,
	// the final deterministic tie-break.
	readingOrder int
}

func (m windowMatch) beats(o windowMatch) bool {
	if m.length != o.length {
		return m.length > o.length
	}
	if m.centerDist != o.centerDist {
		return m.centerDist < o.centerDist
	}
	return m.readingOrder < o.readingOrder
}

// matchWindow searches every registered phrase of char inside the context
// window. Among occurrences containing the target character at the matching
// position, the longest phrase wins; length ties prefer the most tightly
// centered occurrence, then the dictionary's reading enumeration order.
func (r *Resolver) matchWindow(runes []rune, off int, char rune) (Result, bool) {
	start, win := window(runes, off, r.radius)
	target := off - start

	var best windowMatch
	found := false
	for ri, rd := range r.dict.Readings(char) {
		for _, phrase := range r.dict.Phrases(char, rd) {
			pr := []rune(phrase)
			lo := target - len(pr) + 1
			if lo < 0 {
				lo = 0
			}
			for p := lo; p <= target && p+len(pr) <= len(win); p++ {
				if pr[target-p] != char || !runesEqual(win[p:p+len(pr)], pr) {
					continue
				}
				m := windowMatch{
					reading:      rd,
					phrase:       phrase,
					length:       len(pr),
					centerDist:   abs(2*(p-target) + len(pr) - 1),
					readingOrder: ri,
				}
				if !found || m.beats(best) {
					best = m
					found = true
				}
			}
		}
	}
	if !found {
		return Result{}, false
	}
	return Result{Reading: best.reading, Provenance: model.ProvenanceWindow, Phrase: best.phrase}, true
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
