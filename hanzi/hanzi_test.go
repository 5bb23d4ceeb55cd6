package hanzi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsChinese(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"common character", '中', true},
		{"polyphonic character", '长', true},
		{"block start", '一', true},
		{"block end", '鿿', true},
		{"ascii letter", 'A', false},
		{"digit", '7', false},
		{"cjk punctuation", '，', false},
		{"hiragana", 'あ', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsChinese(tt.r))
		})
	}
}

func TestContainsChinese(t *testing.T) {
	assert.True(t, ContainsChinese("Hello 世界"))
	assert.False(t, ContainsChinese("Hello, world!"))
	assert.False(t, ContainsChinese(""))
}
