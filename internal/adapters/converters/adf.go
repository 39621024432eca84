package converters

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
)

const (
	adfFormat      = "confluence"
	jsonFormat     = "json"
	jsonMIME       = "application/json"
	adfListPrefix  = "- "
	adfTOCIndent   = "    "
	adfDividerRune = "-"
)

// ADFConverter converts content lines to Atlassian Document Format (ADF) for Confluence.
type ADFConverter struct{}

// NewADFConverter creates a new ADF converter.
func NewADFConverter() *ADFConverter {
	return &ADFConverter{}
}

// Format returns the output format name.
func (c *ADFConverter) Format() string {
	return adfFormat
}

// ContentType returns the MIME type of the output.
func (c *ADFConverter) ContentType() string {
	return jsonMIME
}

// ADF node types.
type adfDocument struct {
	Version int       `json:"version"`
	Type    string    `json:"type"`
	Content []adfNode `json:"content"`
}

type adfNode struct {
	Type    string    `json:"type"`
	Attrs   *adfAttrs `json:"attrs,omitempty"`
	Content []adfNode `json:"content,omitempty"`
	Text    string    `json:"text,omitempty"`
	Marks   []adfMark `json:"marks,omitempty"`
}

type adfAttrs struct {
	Level int `json:"level,omitempty"`
}

type adfMark struct {
	Type string `json:"type"`
}

// Convert transforms content lines to ADF JSON. Consecutive "- " items and
// indented contents entries are grouped into bullet lists.
func (c *ADFConverter) Convert(lines []domain.ContentLine, output io.Writer) error {
	adf := &adfDocument{
		Version: 1,
		Type:    "doc",
		Content: []adfNode{},
	}

	var list []adfNode
	flush := func() {
		if len(list) > 0 {
			adf.Content = append(adf.Content, adfNode{Type: "bulletList", Content: list})
			list = nil
		}
	}

	for _, line := range normalizeLines(lines) {
		if item, ok := listItemText(line); ok {
			list = append(list, adfNode{
				Type:    "listItem",
				Content: []adfNode{c.paragraph(item)},
			})
			continue
		}
		flush()

		switch line.Style() {
		case domain.StyleTitle:
			adf.Content = append(adf.Content, c.heading(line.Text, 1))
		case domain.StyleHeading:
			adf.Content = append(adf.Content, c.heading(line.Text, 2))
		case domain.StyleSection:
			adf.Content = append(adf.Content, c.heading(line.Text, 3), adfNode{Type: "rule"})
		default:
			if isDivider(line.Text) {
				adf.Content = append(adf.Content, adfNode{Type: "rule"})
				continue
			}
			if line.IsBold {
				adf.Content = append(adf.Content, adfNode{
					Type:    "paragraph",
					Content: []adfNode{c.boldText(line.Text)},
				})
				continue
			}
			adf.Content = append(adf.Content, c.paragraph(line.Text))
		}
	}
	flush()

	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(adf); err != nil {
		return fmt.Errorf("failed to encode ADF: %w", err)
	}

	return nil
}

func (c *ADFConverter) heading(text string, level int) adfNode {
	return adfNode{
		Type:  "heading",
		Attrs: &adfAttrs{Level: level},
		Content: []adfNode{
			{Type: "text", Text: text},
		},
	}
}

func (c *ADFConverter) paragraph(text string) adfNode {
	return adfNode{
		Type: "paragraph",
		Content: []adfNode{
			{Type: "text", Text: text},
		},
	}
}

func (c *ADFConverter) boldText(text string) adfNode {
	return adfNode{
		Type: "text",
		Text: text,
		Marks: []adfMark{
			{Type: "strong"},
		},
	}
}

func listItemText(line domain.ContentLine) (string, bool) {
	if line.Style() != domain.StylePlain {
		return "", false
	}
	if item, ok := strings.CutPrefix(line.Text, adfListPrefix); ok {
		return item, true
	}
	if item, ok := strings.CutPrefix(line.Text, adfTOCIndent); ok {
		return strings.TrimSpace(item), true
	}
	return "", false
}

// isDivider matches the dash rule the extractor emits under table headers.
func isDivider(text string) bool {
	return text != "" && strings.Trim(text, adfDividerRune) == ""
}
