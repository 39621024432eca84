package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// checkbox and bullet glyphs removed from list items
var glyphReplacer = strings.NewReplacer("□", "", "☐", "", "☑", "", "✓", "", "•", "")

// CleanText turns an HTML fragment into a single line of plain text: tags
// become spaces, entities are decoded, whitespace is collapsed.
func CleanText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return collapse(html.UnescapeString(fragment))
	}

	var b strings.Builder
	for _, n := range doc.Nodes {
		writeText(&b, n)
	}

	return collapse(b.String())
}

// nodeText is CleanText for an already parsed selection.
func nodeText(s *goquery.Selection) string {
	return nodesText(s.Nodes...)
}

func nodesText(nodes ...*html.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeText(&b, c)
		}
	}
	return collapse(b.String())
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		// the parser decodes entities; a second pass handles double-escaped input
		b.WriteString(html.UnescapeString(n.Data))
	case html.ElementNode, html.DocumentNode:
		b.WriteByte(' ')
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeText(b, c)
		}
		b.WriteByte(' ')
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func stripGlyphs(s string) string {
	return collapse(glyphReplacer.Replace(s))
}

func hasCheckbox(s string) bool {
	return strings.ContainsAny(s, "□☐☑✓")
}
