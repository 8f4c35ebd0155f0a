// Package markup turns a small, safe subset of block-level markup into
// wrapped, measured text layouts for panel rasterization. Only headings,
// list items, and body paragraphs are understood; everything else that
// carries text is treated as a body block.
package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Kind classifies a text-bearing block for font and spacing selection.
type Kind int

const (
	Body Kind = iota
	Heading
	ListItem
	Title // reserved for the panel title line injected by the layout
)

// Block is one classified run of flow text.
type Block struct {
	Kind Kind
	Text string
}

// ParseBlocks parses markup and flattens it into classified blocks in
// document order. h1–h6 become Heading blocks, li becomes ListItem, and any
// other text-bearing element becomes Body. <br> collapses into a space in
// flow text. Blocks whose text is empty after whitespace normalization are
// dropped.
func ParseBlocks(source string) ([]Block, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, nil
	}

	root, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return nil, err
	}

	var blocks []Block
	emit := func(kind Kind, text string) {
		if text != "" {
			blocks = append(blocks, Block{Kind: kind, Text: text})
		}
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h1", "h2", "h3", "h4", "h5", "h6":
				emit(Heading, flowText(n))
				return
			case "li":
				emit(ListItem, flowText(n))
				return
			case "p":
				emit(Body, flowText(n))
				return
			case "script", "style":
				return
			}
		}

		// Container node: loose text between child elements forms its own
		// body block.
		var loose strings.Builder
		flush := func() {
			emit(Body, normalizeSpace(loose.String()))
			loose.Reset()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				loose.WriteString(c.Data)
				continue
			}
			flush()
			walk(c)
		}
		flush()
	}
	walk(root)

	return blocks, nil
}

// flowText returns the whitespace-normalized text content of a node,
// treating <br> as a space.
func flowText(n *html.Node) string {
	var b strings.Builder
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			if n.Data == "br" {
				b.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return normalizeSpace(b.String())
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
