package ruby

import (
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chineseparse/model"
)

func TestMarkup(t *testing.T) {
	anns := []model.Annotation{
		{Char: "你", Reading: "nǐ", Offset: 0},
		{Char: "好", Reading: "hǎo", Offset: 1},
	}
	got := Markup("你好, world", anns)
	assert.Equal(t, "<ruby>你<rt>nǐ</rt></ruby><ruby>好<rt>hǎo</rt></ruby>, world", got)
}

func TestMarkupWithoutAnnotationsIsIdentity(t *testing.T) {
	assert.Equal(t, "plain text", Markup("plain text", nil))
}

func TestNodesKeepTextRunsAndOrder(t *testing.T) {
	anns := []model.Annotation{{Char: "世", Reading: "shì", Offset: 6}}
	nodes := Nodes("Hello 世界", anns)
	require.Len(t, nodes, 3)

	assert.Equal(t, xmlquery.TextNode, nodes[0].Type)
	assert.Equal(t, "Hello ", nodes[0].Data)
	assert.Equal(t, xmlquery.ElementNode, nodes[1].Type)
	assert.Equal(t, "ruby", nodes[1].Data)
	assert.Equal(t, xmlquery.TextNode, nodes[2].Type)
	assert.Equal(t, "界", nodes[2].Data)

	// ruby element serializes with its rt child in place
	assert.Equal(t, "<ruby>世<rt>shì</rt></ruby>", nodes[1].OutputXML(true))
}

func TestNodesAllAnnotated(t *testing.T) {
	anns := []model.Annotation{
		{Char: "你", Reading: "nǐ", Offset: 0},
		{Char: "好", Reading: "hǎo", Offset: 1},
	}
	nodes := Nodes("你好", anns)
	require.Len(t, nodes, 2)
	for _, n := range nodes {
		assert.Equal(t, "ruby", n.Data)
	}
}
