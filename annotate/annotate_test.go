package annotate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chineseparse/dict"
	"chineseparse/hanzi"
	"chineseparse/model"
	"chineseparse/segment"
)

type fakeFallback map[rune]string

func (f fakeFallback) Default(r rune) string { return f[r] }

func (f fakeFallback) All(r rune) []string {
	if d := f[r]; d != "" {
		return []string{d}
	}
	return nil
}

func testDict(t *testing.T) *dict.Dictionary {
	t.Helper()
	d, err := dict.NewBuilder().
		Add('长', "cháng", "长袍").
		Add('长', "zhǎng", "长大", "成长").
		Build()
	require.NoError(t, err)
	return d
}

// perCharEngine is a degenerate external segmenter that counts invocations.
type perCharEngine struct{ calls int }

func (e *perCharEngine) segment(text string) ([]model.Token, error) {
	e.calls++
	var toks []model.Token
	i := 0
	for _, r := range text {
		toks = append(toks, model.Token{Text: string(r), Start: i, End: i + 1})
		i++
	}
	return toks, nil
}

func newTestDriver(t *testing.T) (*Driver, *perCharEngine) {
	t.Helper()
	eng := &perCharEngine{}
	fb := fakeFallback{'长': "cháng", '我': "wǒ", '大': "dà", '了': "le", '你': "nǐ", '好': "hǎo"}
	return NewDriver(testDict(t), segment.NewWithEngine(eng.segment), fb), eng
}

func TestAnnotateEmitsOneReadingPerChineseCharacter(t *testing.T) {
	drv, _ := newTestDriver(t)

	unit := "Hi 我长大了!"
	anns := drv.Annotate(unit)
	require.Len(t, anns, 4)

	var chars []string
	for _, a := range anns {
		chars = append(chars, a.Char)
		assert.NotEmpty(t, a.Reading, "character %s must get a reading", a.Char)
		assert.True(t, hanzi.ContainsChinese(a.Char))
	}
	assert.Equal(t, []string{"我", "长", "大", "了"}, chars)

	// 长大 is a registered phrase; the window match recovers it even though
	// the tokenizer split it
	assert.Equal(t, "zhǎng", anns[1].Reading)
	assert.Equal(t, model.ProvenanceWindow, anns[1].Provenance)
	// 我 is monophonic here and goes straight to the fallback
	assert.Equal(t, model.ProvenanceFallback, anns[0].Provenance)
}

func TestAnnotateSegmentsOncePerUnit(t *testing.T) {
	drv, eng := newTestDriver(t)

	unit := "我长大了，长大了。"
	drv.Annotate(unit)
	drv.Annotate(unit)
	assert.Equal(t, 1, eng.calls, "segmentation must run once per text unit")

	drv.Evict(unit)
	drv.Annotate(unit)
	assert.Equal(t, 2, eng.calls)
}

func TestAnnotateSkipsNonChinese(t *testing.T) {
	drv, eng := newTestDriver(t)

	assert.Nil(t, drv.Annotate("No Chinese here."))
	assert.Equal(t, 0, eng.calls, "segmenter must not run for non-Chinese units")
	assert.Nil(t, drv.Annotate(""))
}

func TestAnnotateSkipsUnclassifiableRunes(t *testing.T) {
	// 𠀀-like rare characters fall outside the fallback table; simulate with
	// a fallback that knows nothing
	drv := NewDriver(testDict(t), segment.NewWithEngine(nil), fakeFallback{})

	anns := drv.Annotate("你好")
	assert.Empty(t, anns)
}

func TestAnnotateOffsetsAreRuneOffsets(t *testing.T) {
	drv, _ := newTestDriver(t)

	anns := drv.Annotate("ab我c长")
	require.Len(t, anns, 2)
	assert.Equal(t, 2, anns[0].Offset)
	assert.Equal(t, 4, anns[1].Offset)
}

func TestAnnotateUnitsMatchesSerialResults(t *testing.T) {
	drv, _ := newTestDriver(t)
	units := []string{"我长大了", "你好", "no chinese", "长袍"}

	var want [][]model.Annotation
	for _, u := range units {
		want = append(want, drv.Annotate(u))
		drv.Evict(u)
	}

	got, err := drv.AnnotateUnits(context.Background(), units, 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAnnotateUnitsHonorsContext(t *testing.T) {
	drv, _ := newTestDriver(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := drv.AnnotateUnits(ctx, []string{"我长大了"}, 1)
	assert.Error(t, err)
}
