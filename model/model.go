package model

// Token represents a word span produced by segmentation. Start and End are
// rune offsets into the original text; tokens are ordered by Start and never
// overlap.
type Token struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Contains reports whether the rune offset off falls inside the token span.
func (t Token) Contains(off int) bool {
	return t.Start <= off && off < t.End
}

// Provenance records which resolution step produced a reading. It exists for
// auditing and testing; the renderer ignores it.
type Provenance string

const (
	// ProvenanceToken means the segmenter token covering the character
	// matched a dictionary phrase exactly.
	ProvenanceToken Provenance = "exact-token-match"
	// ProvenanceWindow means a dictionary phrase was found as a substring of
	// the context window around the character.
	ProvenanceWindow Provenance = "window-match"
	// ProvenanceFallback means no phrase matched and the pronunciation
	// adapter supplied its default reading.
	ProvenanceFallback Provenance = "fallback-default"
)

// Annotation pairs one Chinese character with its chosen reading. Offset is
// the rune offset of the character in its text unit.
type Annotation struct {
	Char       string     `json:"char"`
	Reading    string     `json:"reading"`
	Offset     int        `json:"offset"`
	Provenance Provenance `json:"provenance,omitempty"`
}
