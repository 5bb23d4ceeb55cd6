package segment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chineseparse/model"
)

// countingEngine stands in for the external segmentation capability and
// counts how often it is invoked.
type countingEngine struct {
	calls int
	toks  []model.Token
	err   error
}

func (c *countingEngine) segment(text string) ([]model.Token, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.toks, nil
}

func TestTokenizeCachesPerText(t *testing.T) {
	eng := &countingEngine{toks: []model.Token{{Text: "长袍", Start: 0, End: 2}}}
	a := NewWithEngine(eng.segment)

	first := a.Tokenize("长袍")
	second := a.Tokenize("长袍")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, eng.calls, "external segmenter must run once per text unit")

	a.Tokenize("别的")
	assert.Equal(t, 2, eng.calls)
}

func TestEvictReleasesCacheEntry(t *testing.T) {
	eng := &countingEngine{toks: []model.Token{{Text: "长袍", Start: 0, End: 2}}}
	a := NewWithEngine(eng.segment)

	a.Tokenize("长袍")
	a.Evict("长袍")
	a.Tokenize("长袍")
	assert.Equal(t, 2, eng.calls)
}

func TestEngineFailureDegradesToPerCharacterTokens(t *testing.T) {
	eng := &countingEngine{err: errors.New("segmenter crashed")}
	a := NewWithEngine(eng.segment)

	toks := a.Tokenize("我长大")
	require.Len(t, toks, 3)
	assert.Equal(t, model.Token{Text: "我", Start: 0, End: 1}, toks[0])
	assert.Equal(t, model.Token{Text: "长", Start: 1, End: 2}, toks[1])
	assert.Equal(t, model.Token{Text: "大", Start: 2, End: 3}, toks[2])
}

func TestNilEngineDegradesToPerCharacterTokens(t *testing.T) {
	a := NewWithEngine(nil)

	toks := a.Tokenize("Hi中")
	require.Len(t, toks, 3)
	assert.Equal(t, model.Token{Text: "中", Start: 2, End: 3}, toks[2])
}

func TestTokenizeEmptyText(t *testing.T) {
	a := NewWithEngine(nil)
	assert.Nil(t, a.Tokenize(""))
}

func TestPerCharTokensCoverWholeInput(t *testing.T) {
	toks := perCharTokens("a中b")
	require.Len(t, toks, 3)
	for i, tk := range toks {
		assert.Equal(t, i, tk.Start)
		assert.Equal(t, i+1, tk.End)
		assert.True(t, tk.Contains(i))
	}
}
