// Package annotate drives per-character pinyin annotation over text units.
// The driver walks a unit's characters in order, passes non-Chinese runes
// through unannotated, sends polyphonic characters through the resolver and
// everything else straight to the pronunciation fallback.
package annotate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"chineseparse/dict"
	"chineseparse/hanzi"
	"chineseparse/model"
	"chineseparse/resolve"
)

// Evicter is implemented by tokenizers whose per-unit cache entries can be
// released once a unit is done.
type Evicter interface {
	Evict(text string)
}

// Driver annotates text units using one shared dictionary, tokenizer and
// fallback adapter. A Driver is safe for concurrent use when its tokenizer
// and fallback are.
type Driver struct {
	dict *dict.Dictionary
	tok  resolve.Tokenizer
	fb   resolve.Fallback
	res  *resolve.Resolver
}

// NewDriver wires a driver and its resolver over shared collaborators.
func NewDriver(d *dict.Dictionary, tok resolve.Tokenizer, fb resolve.Fallback, opts ...resolve.Option) *Driver {
	return &Driver{
		dict: d,
		tok:  tok,
		fb:   fb,
		res:  resolve.New(d, tok, fb, opts...),
	}
}

// Annotate emits one (character, reading) pair per Chinese character of
// unit, in document order. The segmenter runs at most once per unit; repeat
// calls for the same unit hit the tokenizer's cache. Annotate never fails:
// every Chinese character gets a reading, every other rune is skipped.
func (dr *Driver) Annotate(unit string) []model.Annotation {
	if !hanzi.ContainsChinese(unit) {
		return nil
	}
	// warm the per-unit token cache so the resolver never re-segments
	dr.tok.Tokenize(unit)

	var anns []model.Annotation
	for i, ch := range []rune(unit) {
		if !hanzi.IsChinese(ch) {
			continue
		}
		if dr.dict.IsPolyphonic(ch) {
			res := dr.res.Resolve(unit, i)
			anns = append(anns, model.Annotation{
				Char:       string(ch),
				Reading:    res.Reading,
				Offset:     i,
				Provenance: res.Provenance,
			})
			continue
		}
		rd := dr.fb.Default(ch)
		if rd == "" {
			// the lookup cannot classify the rune; pass it through
			continue
		}
		anns = append(anns, model.Annotation{
			Char:       string(ch),
			Reading:    rd,
			Offset:     i,
			Provenance: model.ProvenanceFallback,
		})
	}
	return anns
}

// Evict releases the tokenizer's cache entry for unit, when the tokenizer
// keeps one. Call it after a unit's annotations have been consumed.
func (dr *Driver) Evict(unit string) {
	if ev, ok := dr.tok.(Evicter); ok {
		ev.Evict(unit)
	}
}

// AnnotateUnits annotates independent text units concurrently, at most
// workers at a time, and releases each unit's token cache entry as the unit
// completes. Results keep the input order.
func (dr *Driver) AnnotateUnits(ctx context.Context, units []string, workers int) ([][]model.Annotation, error) {
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	out := make([][]model.Annotation, len(units))
	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = dr.Annotate(unit)
			dr.Evict(unit)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
