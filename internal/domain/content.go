// Package domain provides core business models and interfaces for the WasteNaut document pipeline.
package domain

import "strings"

// Font sizes assigned by the extractor.
const (
	DefaultFontSize = 11
	TitleFontSize   = 22
	HeadingFontSize = 18
	SectionFontSize = 14
	TaglineFontSize = 12
	TOCFontSize     = 10
	TableFontSize   = 10
)

// LineStyle is the visual treatment a renderer applies to a ContentLine.
type LineStyle int

const (
	StylePlain LineStyle = iota
	StyleTitle
	StyleHeading
	StyleSection
)

// ContentLine is one unit of extracted, typed text.
// The flags are independent; Style resolves which one wins.
type ContentLine struct {
	Text             string
	FontSize         int
	IsTitle          bool
	IsHeading        bool
	IsSectionHeading bool
	IsBold           bool
}

// NewLine returns a plain line at the default font size.
func NewLine(text string) ContentLine {
	return ContentLine{Text: text, FontSize: DefaultFontSize}
}

// Style resolves the render priority: title > heading(>=18) > section heading > plain.
func (l ContentLine) Style() LineStyle {
	switch {
	case l.IsTitle:
		return StyleTitle
	case l.IsHeading && l.Size() >= HeadingFontSize:
		return StyleHeading
	case l.IsSectionHeading || (l.IsHeading && l.Size() == SectionFontSize):
		return StyleSection
	default:
		return StylePlain
	}
}

// Size returns the font size, falling back to DefaultFontSize for unset values.
func (l ContentLine) Size() int {
	if l.FontSize <= 0 {
		return DefaultFontSize
	}
	return l.FontSize
}

// Blank reports whether the line has no visible text.
func (l ContentLine) Blank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Kind returns the short type label used by diagnostic reports.
func (l ContentLine) Kind() string {
	switch {
	case l.IsTitle:
		return "Title"
	case l.IsSectionHeading:
		return "H2"
	case l.IsHeading:
		return "H1"
	case l.IsBold:
		return "Bold"
	default:
		return "Text"
	}
}

// LineProjection is the JSON view of a ContentLine used by diagnostic tooling.
type LineProjection struct {
	Text             string `json:"text"`
	IsHeading        bool   `json:"isHeading"`
	IsBold           bool   `json:"isBold"`
	IsTitle          bool   `json:"isTitle"`
	IsSectionHeading bool   `json:"isSectionHeading"`
	FontSize         int    `json:"fontSize"`
}

// Project converts lines to their JSON projection.
func Project(lines []ContentLine) []LineProjection {
	result := make([]LineProjection, 0, len(lines))

	for _, l := range lines {
		result = append(result, LineProjection{
			Text:             l.Text,
			IsHeading:        l.IsHeading,
			IsBold:           l.IsBold,
			IsTitle:          l.IsTitle,
			IsSectionHeading: l.IsSectionHeading,
			FontSize:         l.Size(),
		})
	}

	return result
}
