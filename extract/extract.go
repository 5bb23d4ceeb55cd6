// Package extract walks XHTML documents, annotates the Chinese text nodes in
// place, and writes the result back. Document structure is preserved; only
// text nodes change, and subtrees that must not be annotated (scripts,
// styles, existing ruby readings, the head) are skipped.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/antchfx/xmlquery"
	"golang.org/x/sync/errgroup"

	"chineseparse/hanzi"
	"chineseparse/logger"
	"chineseparse/model"
	"chineseparse/ruby"
)

// Annotator produces per-character annotations for one text unit and
// releases per-unit state afterwards. annotate.Driver satisfies it.
type Annotator interface {
	Annotate(unit string) []model.Annotation
	Evict(unit string)
}

// elements whose text must never be annotated
var skipElements = map[string]bool{
	"script": true,
	"style":  true,
	"rt":     true,
	"head":   true,
}

// AnnotateDocument rewrites every annotatable text node of doc and returns
// the number of nodes changed. Each text node is one text unit: the
// annotator sees it whole, so phrase matching works across the entire node.
func AnnotateDocument(doc *xmlquery.Node, an Annotator) int {
	changed := 0
	for _, tn := range textNodes(doc) {
		unit := tn.Data
		anns := an.Annotate(unit)
		an.Evict(unit)
		if len(anns) == 0 {
			continue
		}
		replaceNode(tn, ruby.Nodes(unit, anns))
		changed++
	}
	return changed
}

// textNodes collects text nodes in document order, skipping subtrees that
// must stay untouched.
func textNodes(n *xmlquery.Node) []*xmlquery.Node {
	var out []*xmlquery.Node
	var walk func(*xmlquery.Node)
	walk = func(n *xmlquery.Node) {
		if n.Type == xmlquery.ElementNode && skipElements[n.Data] {
			return
		}
		if n.Type == xmlquery.TextNode && hanzi.ContainsChinese(n.Data) {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// replaceNode splices repl into the tree in place of old.
func replaceNode(old *xmlquery.Node, repl []*xmlquery.Node) {
	if len(repl) == 0 {
		return
	}
	parent := old.Parent
	prev, next := old.PrevSibling, old.NextSibling
	for i, n := range repl {
		n.Parent = parent
		if i > 0 {
			n.PrevSibling = repl[i-1]
			repl[i-1].NextSibling = n
		}
	}
	first, last := repl[0], repl[len(repl)-1]
	first.PrevSibling = prev
	last.NextSibling = next
	if prev != nil {
		prev.NextSibling = first
	} else if parent != nil {
		parent.FirstChild = first
	}
	if next != nil {
		next.PrevSibling = last
	} else if parent != nil {
		parent.LastChild = last
	}
	old.Parent, old.PrevSibling, old.NextSibling = nil, nil, nil
}

// AnnotateContent parses an XHTML document, annotates it and serializes it
// back. Content without Chinese text is returned unchanged.
func AnnotateContent(content string, an Annotator) (string, error) {
	if !hanzi.ContainsChinese(content) {
		return content, nil
	}
	doc, err := xmlquery.Parse(bytes.NewReader([]byte(content)))
	if err != nil {
		return "", fmt.Errorf("parsing document: %w", err)
	}
	if AnnotateDocument(doc, an) == 0 {
		return content, nil
	}
	return doc.OutputXML(true), nil
}

// AnnotateFile rewrites one XHTML file in place. Files without Chinese text
// are left untouched.
func AnnotateFile(path string, an Annotator) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := AnnotateContent(string(data), an)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if out == string(data) {
		return nil
	}
	return os.WriteFile(path, []byte(out), 0o644)
}

// AnnotateFiles processes files concurrently, at most workers in flight.
// The annotator is shared; its collaborators must be safe for concurrent
// use (the segment adapter serializes its external engine internally).
func AnnotateFiles(ctx context.Context, paths []string, an Annotator, workers int) error {
	if workers < 1 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, p := range paths {
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.Debug("annotating file", "path", p)
			return AnnotateFile(p, an)
		})
	}
	return g.Wait()
}
