// Package converters provides implementations for rendering content lines and receipts in various formats.
package converters

import (
	"bytes"
	"time"

	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

// US Letter in points with 50pt margins.
const (
	pdfFontFamily   = "Arial"
	pdfMargin       = 50.0
	pdfPageWidth    = 612.0
	pdfPageHeight   = 792.0
	pdfContentWidth = pdfPageWidth - 2*pdfMargin
	pdfLineSpacing  = 1.3
	pdfCreator      = "wastenaut-docs"
)

type rgb struct{ r, g, b int }

var (
	colorBrand       = rgb{15, 245, 136}  // #0FF588
	colorTitleBand   = rgb{0, 212, 170}   // #00D4AA
	colorHeadingBand = rgb{242, 252, 248} // #F2FCF8
	colorHeadingText = rgb{10, 212, 131}  // #0AD483
	colorSection     = rgb{0, 153, 102}   // #009966
	colorFooterBand  = rgb{217, 217, 217} // #D9D9D9
	colorMuted       = rgb{128, 128, 128} // #808080
	colorSummaryFill = rgb{245, 245, 245} // #F5F5F5
	colorTableHeader = rgb{240, 240, 240} // #F0F0F0
	colorBorder      = rgb{221, 221, 221} // #DDDDDD
	colorWhite       = rgb{255, 255, 255}
	colorBlack       = rgb{0, 0, 0}
)

// PDFOption configures the PDF converters.
type PDFOption func(*pdfSettings)

type pdfSettings struct {
	now      func() time.Time
	compress bool
	author   string
}

func defaultPDFSettings() pdfSettings {
	return pdfSettings{now: time.Now, compress: true, author: "WasteNaut"}
}

// WithClock sets the clock used for "Generated" stamps.
func WithClock(now func() time.Time) PDFOption {
	return func(s *pdfSettings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCompression toggles page stream compression.
func WithCompression(compress bool) PDFOption {
	return func(s *pdfSettings) {
		s.compress = compress
	}
}

// WithAuthor sets the document author metadata.
func WithAuthor(author string) PDFOption {
	return func(s *pdfSettings) {
		s.author = author
	}
}

func (s pdfSettings) newPDF(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetCompression(s.compress)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(title, true)
	pdf.SetAuthor(s.author, true)
	pdf.SetCreator(pdfCreator, true)
	pdf.SetCreationDate(s.now())
	return pdf
}

func setFill(pdf *gofpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
func setText(pdf *gofpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func setDraw(pdf *gofpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }

func lineHeight(size float64) float64 {
	return size * pdfLineSpacing
}

// checkPageBreak starts a new page when height does not fit above the bottom margin.
func checkPageBreak(pdf *gofpdf.Fpdf, height float64) {
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottomMargin := pdf.GetMargins()

	if pdf.GetY()+height > pageHeight-bottomMargin {
		pdf.AddPage()
	}
}

// normalizeLines drops blank lines and guarantees something to render.
func normalizeLines(lines []domain.ContentLine) []domain.ContentLine {
	if len(lines) == 0 {
		lines = []domain.ContentLine{{Text: "No content available", FontSize: domain.TaglineFontSize}}
	}

	kept := make([]domain.ContentLine, 0, len(lines))
	for _, l := range lines {
		if !l.Blank() {
			kept = append(kept, l)
		}
	}

	if len(kept) == 0 {
		kept = append(kept, domain.ContentLine{Text: "Document content", FontSize: domain.TaglineFontSize})
	}

	return kept
}

func render(convert func(*bytes.Buffer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := convert(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
