// Package extract turns an HTML document into the ordered line model rendered
// by the converters.
package extract

import (
	"strings"

	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
	"github.com/PuerkitoBio/goquery"
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	tocIndent        = "    "
	listPrefix       = "- "
	cellSeparator    = " | "
	maxDividerLength = 70
	fallbackWidth    = 69
	maxFallbackLines = 10
	placeholderText  = "Document content"
	repairText       = "Document"
	tocHeadingMarker = "Table of Contents"
)

// Paragraph markers that identify footer text rather than checklist items.
var footerMarkers = []string{"Generated:", "tax purposes", "tax advisor", "For questions", "contact"}

// Extractor builds content lines from HTML documents.
type Extractor struct {
	brand string
}

// New creates an extractor. brand is the platform name used to spot the
// tagline and to skip branded footer paragraphs.
func New(brand string) *Extractor {
	return &Extractor{brand: brand}
}

// Extract parses html into content lines in document order. It never fails
// and always returns at least one non-blank line.
func (e *Extractor) Extract(src string) []domain.ContentLine {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return []domain.ContentLine{placeholder()}
	}

	doc.Find("script, style, meta, title").Remove()

	var lines []domain.ContentLine
	lines = append(lines, e.headings(doc)...)
	lines = append(lines, e.tableOfContents(doc)...)
	lines = append(lines, e.sections(doc)...)
	lines = append(lines, e.table(doc)...)

	lines = filter(lines)
	if len(lines) == 0 {
		lines = e.fallback(doc)
	}

	return repair(lines)
}

// headings emits the title, the platform tagline and any further h1s.
func (e *Extractor) headings(doc *goquery.Document) []domain.ContentLine {
	var lines []domain.ContentLine

	h1s := doc.Find("h1")
	if title := nodeText(h1s.First()); title != "" {
		lines = append(lines, domain.ContentLine{
			Text:      title,
			FontSize:  domain.TitleFontSize,
			IsTitle:   true,
			IsHeading: true,
		})
	}

	if e.brand != "" {
		tagline := doc.Find("strong").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return strings.Contains(strings.ToLower(nodeText(s)), strings.ToLower(e.brand))
		}).First()

		if text := nodeText(tagline); text != "" {
			lines = append(lines, domain.ContentLine{Text: text, FontSize: domain.TaglineFontSize, IsBold: true})
		}
	}

	h1s.Each(func(i int, s *goquery.Selection) {
		if i == 0 {
			return
		}
		if text := nodeText(s); text != "" {
			lines = append(lines, domain.ContentLine{Text: text, FontSize: domain.HeadingFontSize, IsHeading: true})
		}
	})

	return lines
}

func (e *Extractor) tableOfContents(doc *goquery.Document) []domain.ContentLine {
	toc := doc.Find("div.toc").First()
	if toc.Length() == 0 {
		return nil
	}

	var lines []domain.ContentLine

	if h2 := toc.Find("h2").First(); h2.Length() > 0 {
		lines = append(lines, domain.ContentLine{Text: nodeText(h2), FontSize: domain.TaglineFontSize, IsBold: true})
	}

	toc.Find("li").Each(func(_ int, s *goquery.Selection) {
		if text := nodeText(s); text != "" {
			lines = append(lines, domain.ContentLine{Text: tocIndent + text, FontSize: domain.TOCFontSize})
		}
	})

	return lines
}

// section is an h2 together with the list items and paragraphs that follow
// it in document order, up to the next h2.
type section struct {
	heading    *html.Node
	items      []*html.Node
	paragraphs []*html.Node
}

func (e *Extractor) sections(doc *goquery.Document) []domain.ContentLine {
	doc.Find("div.toc").Remove()

	scope := doc.Find("body").Nodes
	if len(scope) == 0 {
		scope = doc.Nodes
	}

	var (
		all     []*section
		current *section
		walk    func(n *html.Node)
	)

	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.H2:
				current = &section{heading: n}
				all = append(all, current)
				return
			case atom.Li:
				// an item's text already covers any list nested in it
				if current != nil {
					current.items = append(current.items, n)
					return
				}
			case atom.P:
				if current != nil {
					current.paragraphs = append(current.paragraphs, n)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range scope {
		walk(n)
	}

	var lines []domain.ContentLine

	for _, sec := range all {
		heading := nodesText(sec.heading)
		if heading == "" || strings.Contains(heading, tocHeadingMarker) {
			continue
		}

		lines = append(lines, domain.ContentLine{
			Text:             heading,
			FontSize:         domain.SectionFontSize,
			IsHeading:        true,
			IsSectionHeading: true,
		})

		for _, li := range sec.items {
			text := stripGlyphs(nodesText(li))
			if len([]rune(text)) > 1 {
				lines = append(lines, domain.NewLine(listPrefix+text))
			}
		}

		for _, p := range sec.paragraphs {
			text := nodesText(p)
			if e.isFooter(text) || !hasCheckbox(text) {
				continue
			}
			if text = stripGlyphs(text); len([]rune(text)) > 3 {
				lines = append(lines, domain.NewLine(listPrefix+text))
			}
		}
	}

	return lines
}

func (e *Extractor) isFooter(text string) bool {
	if len([]rune(text)) < 5 {
		return true
	}
	if e.brand != "" && strings.Contains(text, e.brand) {
		return true
	}
	for _, marker := range footerMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// table flattens the first table into a header, a divider and one line per row.
func (e *Extractor) table(doc *goquery.Document) []domain.ContentLine {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil
	}

	var lines []domain.ContentLine

	if th := table.Find("thead th"); th.Length() > 0 {
		header := joinCells(th)
		lines = append(lines,
			domain.ContentLine{Text: header, FontSize: domain.DefaultFontSize, IsBold: true},
			domain.NewLine(strings.Repeat("-", min(maxDividerLength, len([]rune(header))))),
		)
	}

	rows := table.Find("tbody").First()
	if rows.Length() == 0 {
		rows = table
	}

	rows.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Children().Filter("td, th")
		if cells.Length() == 0 {
			return
		}
		if text := joinCells(cells); strings.TrimSpace(text) != "" && len([]rune(text)) > 3 {
			lines = append(lines, domain.ContentLine{Text: text, FontSize: domain.TableFontSize})
		}
	})

	return lines
}

// fallback salvages something readable from documents with no recognizable structure.
func (e *Extractor) fallback(doc *goquery.Document) []domain.ContentLine {
	var lines []domain.ContentLine

	if title := nodeText(doc.Find("h1").First()); title != "" {
		lines = append(lines, domain.ContentLine{Text: title, FontSize: domain.TitleFontSize, IsTitle: true})
	}

	if body := nodeText(doc.Find("body")); body != "" {
		for _, text := range strings.Split(wordwrap.WrapString(body, fallbackWidth), "\n") {
			if len(lines) >= maxFallbackLines {
				break
			}
			if len([]rune(text)) <= 10 || strings.Contains(text, "Generated") || strings.Contains(text, "For questions") {
				continue
			}
			lines = append(lines, domain.NewLine(text))
		}
	}

	if len(lines) == 0 {
		lines = append(lines, placeholder())
	}

	return lines
}

func filter(lines []domain.ContentLine) []domain.ContentLine {
	kept := lines[:0]
	for _, l := range lines {
		if l.Blank() || strings.Contains(l.Text, "body {") || strings.Contains(l.Text, "font-family") {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}

// repair guarantees a non-blank first line.
func repair(lines []domain.ContentLine) []domain.ContentLine {
	if len(lines) == 0 {
		return []domain.ContentLine{placeholder()}
	}
	if !lines[0].Blank() {
		return lines
	}

	text := repairText
	if len(lines) > 1 && !lines[1].Blank() {
		text = lines[1].Text
	}
	lines[0] = domain.ContentLine{Text: text, FontSize: domain.TaglineFontSize}

	return lines
}

func placeholder() domain.ContentLine {
	return domain.ContentLine{Text: placeholderText, FontSize: domain.TaglineFontSize}
}

func joinCells(cells *goquery.Selection) string {
	parts := make([]string, 0, cells.Length())
	cells.Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, nodeText(s))
	})
	return strings.Join(parts, cellSeparator)
}
