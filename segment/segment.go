// Package segment adapts an external word segmenter into ordered,
// offset-tagged tokens. The default engine is gse with its embedded Chinese
// dictionary, extended with the phrase dictionary's entries as custom words.
//
// The adapter caches the token sequence per exact input text so that
// resolving many characters of one text unit invokes the external segmenter
// once; the owner of a text unit releases its entry with Evict when done.
// The external engine is not assumed reentrant, so calls into it are
// serialized.
package segment

import (
	"errors"
	"sync"
	"unicode/utf8"

	"github.com/go-ego/gse"

	"chineseparse/logger"
	"chineseparse/model"
)

// Engine is the external segmentation capability: raw text in, ordered
// rune-offset tokens out. Engines may fail or be unavailable; the adapter
// degrades to per-character tokens in that case.
type Engine func(text string) ([]model.Token, error)

// Adapter wraps an Engine behind a per-text cache.
type Adapter struct {
	mu     sync.Mutex
	engine Engine
	cache  map[string][]model.Token
}

// New initializes an adapter backed by gse. The given phrases are registered
// as custom words so known dictionary phrases survive segmentation intact.
// When the gse dictionary cannot be loaded the adapter still works, producing
// per-character tokens only.
func New(phrases ...string) *Adapter {
	var seg gse.Segmenter
	if err := seg.LoadDict(); err != nil {
		logger.Warn("segmenter dictionary unavailable, falling back to per-character tokens", "err", err)
		return NewWithEngine(nil)
	}
	for _, p := range phrases {
		if err := seg.AddToken(p, 100); err != nil {
			logger.Debug("custom word rejected by segmenter", "word", p, "err", err)
		}
	}
	return NewWithEngine(func(text string) ([]model.Token, error) {
		return gseTokens(text, seg.Segment([]byte(text)))
	})
}

// NewWithEngine builds an adapter around a custom engine. A nil engine means
// segmentation is unavailable and every text degrades to per-character
// tokens.
func NewWithEngine(engine Engine) *Adapter {
	return &Adapter{engine: engine, cache: make(map[string][]model.Token)}
}

// Tokenize returns ordered, non-overlapping tokens covering text, with rune
// offsets. Results are cached per exact input text until Evict is called.
// Tokenize never fails: when the engine is unavailable or errors, each rune
// becomes its own token so resolution can still proceed.
func (a *Adapter) Tokenize(text string) []model.Token {
	if text == "" {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if toks, ok := a.cache[text]; ok {
		return toks
	}
	toks := a.segment(text)
	a.cache[text] = toks
	return toks
}

// Evict releases the cache entry for text. Call it once the text unit has
// been fully processed; the cache is scoped to a unit's lifetime, not the
// process.
func (a *Adapter) Evict(text string) {
	a.mu.Lock()
	delete(a.cache, text)
	a.mu.Unlock()
}

func (a *Adapter) segment(text string) []model.Token {
	if a.engine == nil {
		return perCharTokens(text)
	}
	toks, err := a.engine(text)
	if err != nil {
		logger.Warn("segmentation failed, using per-character tokens", "err", err)
		return perCharTokens(text)
	}
	if len(toks) == 0 {
		return perCharTokens(text)
	}
	return toks
}

// perCharTokens is the degenerate tokenization: every rune its own token.
func perCharTokens(text string) []model.Token {
	toks := make([]model.Token, 0, utf8.RuneCountInString(text))
	i := 0
	for _, r := range text {
		toks = append(toks, model.Token{Text: string(r), Start: i, End: i + 1})
		i++
	}
	return toks
}

var errSpanMismatch = errors.New("segment span outside input text")

// gseTokens converts gse's byte-offset segments into rune-offset tokens.
// Segments arrive in position order covering the input.
func gseTokens(text string, segs []gse.Segment) ([]model.Token, error) {
	toks := make([]model.Token, 0, len(segs))
	byteOff, runeOff := 0, 0
	for _, s := range segs {
		start, end := s.Start(), s.End()
		if start < byteOff || end > len(text) || start >= end {
			return nil, errSpanMismatch
		}
		for byteOff < start {
			_, size := utf8.DecodeRuneInString(text[byteOff:])
			byteOff += size
			runeOff++
		}
		surface := text[start:end]
		n := utf8.RuneCountInString(surface)
		toks = append(toks, model.Token{Text: surface, Start: runeOff, End: runeOff + n})
		byteOff = end
		runeOff += n
	}
	return toks, nil
}
