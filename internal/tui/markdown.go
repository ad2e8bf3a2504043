package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdownParser = goldmark.New().Parser()

// renderMarkdown renders assistant answers as styled terminal text.
func renderMarkdown(src string, p *palette) string {
	source := []byte(src)
	doc := markdownParser.Parse(text.NewReader(source))

	r := &termRenderer{src: source, p: p}
	r.blocks(doc, "")
	return strings.TrimRight(r.b.String(), "\n")
}

type termRenderer struct {
	src []byte
	p   *palette
	b   strings.Builder
}

func (r *termRenderer) line(indent, s string) {
	for _, l := range strings.Split(s, "\n") {
		r.b.WriteString(indent)
		r.b.WriteString(l)
		r.b.WriteByte('\n')
	}
}

func (r *termRenderer) blocks(n ast.Node, indent string) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.block(c, indent)
	}
}

func (r *termRenderer) block(n ast.Node, indent string) {
	switch n := n.(type) {
	case *ast.Heading:
		r.line(indent, r.p.heading.Render(r.inline(n)))
	case *ast.Paragraph, *ast.TextBlock:
		r.line(indent, r.inline(n))
	case *ast.List:
		num := n.Start
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			marker := "• "
			if n.IsOrdered() {
				marker = fmt.Sprintf("%d. ", num)
				num++
			}
			r.listItem(item, indent, marker)
		}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			r.line(indent+"    ", r.p.code.Render(strings.TrimRight(string(seg.Value(r.src)), "\n")))
		}
	case *ast.Blockquote:
		r.blocks(n, indent+"│ ")
	case *ast.ThematicBreak:
		r.line(indent, "────────")
	case *ast.HTMLBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			r.line(indent, strings.TrimRight(string(seg.Value(r.src)), "\n"))
		}
	default:
		r.blocks(n, indent)
	}

	if _, top := n.Parent().(*ast.Document); top && n.NextSibling() != nil {
		r.b.WriteByte('\n')
	}
}

func (r *termRenderer) listItem(item ast.Node, indent, marker string) {
	sub := &termRenderer{src: r.src, p: r.p}
	sub.blocks(item, "")

	pad := strings.Repeat(" ", utf8.RuneCountInString(marker))
	for i, l := range strings.Split(strings.TrimRight(sub.b.String(), "\n"), "\n") {
		if i == 0 {
			r.line(indent, marker+l)
			continue
		}
		r.line(indent, pad+l)
	}
}

func (r *termRenderer) inline(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(r.src))
			switch {
			case c.HardLineBreak():
				b.WriteByte('\n')
			case c.SoftLineBreak():
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(c.Value)
		case *ast.CodeSpan:
			b.WriteString(r.p.code.Render(r.inline(c)))
		case *ast.Emphasis:
			s := r.inline(c)
			if c.Level >= 2 {
				s = r.p.bold.Render(s)
			} else {
				s = r.p.italic.Render(s)
			}
			b.WriteString(s)
		case *ast.Link:
			label := r.inline(c)
			b.WriteString(label)
			if dest := string(c.Destination); dest != "" && dest != label {
				b.WriteString(" (" + dest + ")")
			}
		case *ast.AutoLink:
			b.Write(c.URL(r.src))
		case *ast.Image:
			b.WriteString("[image: " + r.inline(c) + "]")
		case *ast.RawHTML:
			for i := 0; i < c.Segments.Len(); i++ {
				seg := c.Segments.At(i)
				b.Write(seg.Value(r.src))
			}
		default:
			b.WriteString(r.inline(c))
		}
	}
	return b.String()
}
