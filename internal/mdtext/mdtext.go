// Package mdtext extracts plain paragraph text from markdown documents so
// prose written in markdown can feed the justification engine.
package mdtext

import (
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

// Paragraphs parses src as markdown and returns the words of each paragraph
// in document order. Inline markup (emphasis, links, inline code) is
// flattened to its text content; headings, code blocks, and list items are
// skipped.
func Paragraphs(src []byte) [][]string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse(src)

	var paras [][]string
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		para, ok := node.(*ast.Paragraph)
		if !ok {
			return ast.GoToNext
		}
		// Paragraphs inside list items are list content, not prose.
		if insideListItem(para) {
			return ast.SkipChildren
		}
		if words := paragraphWords(para); len(words) > 0 {
			paras = append(paras, words)
		}
		return ast.SkipChildren
	})
	return paras
}

// Words splits plain text into whitespace-separated words, the unit the
// justifier consumes.
func Words(text string) []string {
	return strings.Fields(text)
}

func insideListItem(node ast.Node) bool {
	for p := node.GetParent(); p != nil; p = p.GetParent() {
		if _, ok := p.(*ast.ListItem); ok {
			return true
		}
	}
	return false
}

// paragraphWords flattens a paragraph's inline children to words. Text and
// inline code contribute their literals; hard and soft breaks read as word
// boundaries, which strings.Fields already provides via the literal newlines.
func paragraphWords(para *ast.Paragraph) []string {
	var b strings.Builder
	ast.WalkFunc(para, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch n := node.(type) {
		case *ast.Text:
			b.Write(n.Literal)
			b.WriteByte(' ')
		case *ast.Code:
			b.Write(n.Literal)
			b.WriteByte(' ')
		}
		return ast.GoToNext
	})
	return strings.Fields(b.String())
}
