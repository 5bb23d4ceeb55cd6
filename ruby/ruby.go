// Package ruby renders (character, reading) pairs as ruby annotation markup:
// <ruby>字<rt>zì</rt></ruby>. It offers a string form for plain-text output
// and an xmlquery node form for splicing into parsed documents.
package ruby

import (
	"strings"

	"github.com/antchfx/xmlquery"

	"chineseparse/model"
)

// Markup interleaves annotated characters with pass-through text. Runes
// whose offset carries no annotation are copied unchanged.
func Markup(text string, anns []model.Annotation) string {
	byOffset := index(anns)
	var b strings.Builder
	i := 0
	for _, r := range text {
		if a, ok := byOffset[i]; ok {
			b.WriteString("<ruby>")
			b.WriteString(a.Char)
			b.WriteString("<rt>")
			b.WriteString(a.Reading)
			b.WriteString("</rt></ruby>")
		} else {
			b.WriteRune(r)
		}
		i++
	}
	return b.String()
}

// Nodes builds the node sequence equivalent to Markup for splicing into an
// xmlquery document tree: text runs become text nodes, annotated characters
// become ruby elements.
func Nodes(text string, anns []model.Annotation) []*xmlquery.Node {
	byOffset := index(anns)
	var out []*xmlquery.Node
	var run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			out = append(out, textNode(run.String()))
			run.Reset()
		}
	}
	i := 0
	for _, r := range text {
		if a, ok := byOffset[i]; ok {
			flush()
			out = append(out, rubyNode(a))
		} else {
			run.WriteRune(r)
		}
		i++
	}
	flush()
	return out
}

func index(anns []model.Annotation) map[int]model.Annotation {
	m := make(map[int]model.Annotation, len(anns))
	for _, a := range anns {
		m[a.Offset] = a
	}
	return m
}

func textNode(s string) *xmlquery.Node {
	return &xmlquery.Node{Type: xmlquery.TextNode, Data: s}
}

func element(name string) *xmlquery.Node {
	return &xmlquery.Node{Type: xmlquery.ElementNode, Data: name}
}

func rubyNode(a model.Annotation) *xmlquery.Node {
	rb := element("ruby")
	appendChild(rb, textNode(a.Char))
	rt := element("rt")
	appendChild(rt, textNode(a.Reading))
	appendChild(rb, rt)
	return rb
}

func appendChild(parent, child *xmlquery.Node) {
	child.Parent = parent
	if parent.LastChild == nil {
		parent.FirstChild = child
	} else {
		parent.LastChild.NextSibling = child
		child.PrevSibling = parent.LastChild
	}
	parent.LastChild = child
}
