// Package markdown flattens markdown to plain text for terminal display.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// PlainText strips markdown syntax from s, keeping the visible text. Blocks
// are separated by newlines; emphasis, links and code markers are dropped.
// Input containing HTML or thematic breaks, which have no plain-text form,
// is returned trimmed but otherwise as written.
func PlainText(s string) string {
	source := []byte(s)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var b strings.Builder
	lossy := false
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument && n.Kind() != ast.KindList && n.Kind() != ast.KindListItem {
				endLine(&b)
			}
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteString("\n")
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.AutoLink:
			b.Write(node.URL(source))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML, *ast.HTMLBlock, *ast.ThematicBreak:
			lossy = true
			return ast.WalkStop, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				b.Write(line.Value(source))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	if lossy {
		return strings.TrimSpace(s)
	}

	lines := strings.Split(b.String(), "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if len(out) == 0 {
		return strings.TrimSpace(s)
	}
	return strings.Join(out, "\n")
}

func endLine(b *strings.Builder) {
	if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
}

// FirstLine returns the first line of the plain text of s, truncated to limit
// runes with an ellipsis. A limit of zero or less disables truncation.
func FirstLine(s string, limit int) string {
	plain := PlainText(s)
	if i := strings.IndexByte(plain, '\n'); i >= 0 {
		plain = plain[:i] + " …"
	}
	runes := []rune(plain)
	if limit > 0 && len(runes) > limit {
		if limit <= 3 {
			return string(runes[:limit])
		}
		return string(runes[:limit-3]) + "..."
	}
	return plain
}
