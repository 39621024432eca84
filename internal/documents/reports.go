package documents

import (
	"fmt"
	"unicode/utf8"

	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
)

const (
	linesPerPage      = 25
	previewTextLimit  = 60
	inspectLineCount  = 10
	inspectTextLimit  = 50
	inspectHeaderSize = 50
)

// ExtractionReport describes what the extractor produced for a document.
type ExtractionReport struct {
	HTMLLength     int                     `json:"htmlLength"`
	LinesExtracted int                     `json:"linesExtracted"`
	Lines          []domain.LineProjection `json:"lines"`
}

// PreviewLine is one line of the first-page preview.
type PreviewLine struct {
	Index    int    `json:"index"`
	Text     string `json:"text"`
	Type     string `json:"type"`
	FontSize int    `json:"fontSize"`
}

// PreviewReport estimates how a document will be laid out.
type PreviewReport struct {
	TotalLines     int           `json:"totalLines"`
	PagesExpected  int           `json:"pagesExpected"`
	FirstPageLines []PreviewLine `json:"firstPageLines"`
}

// InspectLine summarizes one of the leading lines of a rendered document.
type InspectLine struct {
	Text             string `json:"text"`
	IsTitle          bool   `json:"isTitle"`
	IsHeading        bool   `json:"isHeading"`
	IsSectionHeading bool   `json:"isSectionHeading"`
}

// InspectReport describes a rendered PDF.
type InspectReport struct {
	LinesExtracted int           `json:"linesExtracted"`
	First10Lines   []InspectLine `json:"first10Lines"`
	PDFSize        int           `json:"pdfSize"`
	PDFHeader      string        `json:"pdfHeader"`
}

// Extract reports the lines extracted from the document selected by docType.
func (s *Service) Extract(docType string) (ExtractionReport, error) {
	html, lines, err := s.linesFor(docType)
	if err != nil {
		return ExtractionReport{}, err
	}

	return ExtractionReport{
		HTMLLength:     len(html),
		LinesExtracted: len(lines),
		Lines:          domain.Project(lines),
	}, nil
}

// Preview reports the expected page count and the first page's lines.
func (s *Service) Preview(docType string) (PreviewReport, error) {
	_, lines, err := s.linesFor(docType)
	if err != nil {
		return PreviewReport{}, err
	}

	first := lines[:min(len(lines), linesPerPage)]
	report := PreviewReport{
		TotalLines:     len(lines),
		PagesExpected:  (len(lines) + linesPerPage - 1) / linesPerPage,
		FirstPageLines: make([]PreviewLine, 0, len(first)),
	}

	for i, l := range first {
		text := l.Text
		if utf8.RuneCountInString(text) > previewTextLimit {
			text = truncate(text, previewTextLimit) + "..."
		}

		report.FirstPageLines = append(report.FirstPageLines, PreviewLine{
			Index:    i,
			Text:     text,
			Type:     l.Kind(),
			FontSize: l.Size(),
		})
	}

	return report, nil
}

// Inspect renders the document selected by docType and reports on the result.
func (s *Service) Inspect(docType string) (InspectReport, error) {
	_, lines, err := s.linesFor(docType)
	if err != nil {
		return InspectReport{}, err
	}

	body, err := s.pdf.Render(lines)
	if err != nil {
		return InspectReport{}, fmt.Errorf("failed to render %s: %w", docType, err)
	}

	first := lines[:min(len(lines), inspectLineCount)]
	report := InspectReport{
		LinesExtracted: len(lines),
		First10Lines:   make([]InspectLine, 0, len(first)),
		PDFSize:        len(body),
		PDFHeader:      ascii(body[:min(len(body), inspectHeaderSize)]),
	}

	for _, l := range first {
		report.First10Lines = append(report.First10Lines, InspectLine{
			Text:             truncate(l.Text, inspectTextLimit),
			IsTitle:          l.IsTitle,
			IsHeading:        l.IsHeading,
			IsSectionHeading: l.IsSectionHeading,
		})
	}

	return report, nil
}

func (s *Service) linesFor(docType string) (string, []domain.ContentLine, error) {
	html, err := s.source.ForDocType(docType)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load document %s: %w", docType, err)
	}

	return html, s.extractor.Extract(html), nil
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// ascii decodes b as ASCII, replacing bytes above 0x7F with '?'.
func ascii(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c > 0x7F {
			c = '?'
		}
		out[i] = c
	}
	return string(out)
}
