package converters

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFormat      = "pdf"
	pdfContentType = "application/pdf"

	headerHeight    = 60.0
	headerFontSize  = 18.0
	footerHeight    = 30.0
	footerFontSize  = 9.0
	contentPadding  = 10.0
	blockGap        = 8.0
	titlePadding    = 10.0
	titleMargin     = 5.0
	headingPadding  = 8.0
	headingMargin   = 5.0
	sectionMargin   = 4.0
	sectionRuleGap  = 2.0
	plainMargin     = 2.0
	sectionRuleSize = 1.0

	bodyBottom = pdfMargin + footerHeight + contentPadding
)

// PDFConverter renders content lines as a branded, paginated PDF.
type PDFConverter struct {
	pdfSettings
	brand domain.Brand
}

// NewPDFConverter creates a new PDF converter.
func NewPDFConverter(brand domain.Brand, opts ...PDFOption) *PDFConverter {
	c := &PDFConverter{pdfSettings: defaultPDFSettings(), brand: brand}
	for _, opt := range opts {
		opt(&c.pdfSettings)
	}
	return c
}

// Format returns the output format name.
func (c *PDFConverter) Format() string {
	return pdfFormat
}

// ContentType returns the MIME type of the output.
func (c *PDFConverter) ContentType() string {
	return pdfContentType
}

// Render returns the PDF bytes for lines.
func (c *PDFConverter) Render(lines []domain.ContentLine) ([]byte, error) {
	return render(func(buf *bytes.Buffer) error {
		return c.Convert(lines, buf)
	})
}

// Convert lays the lines out twice: the first pass counts pages so the
// second can print "Page n of total" in every footer.
func (c *PDFConverter) Convert(lines []domain.ContentLine, output io.Writer) error {
	lines = normalizeLines(lines)
	generated := c.now().Format(time.DateOnly)

	counting := c.layout(lines, generated, 0)
	if err := counting.Error(); err != nil {
		return fmt.Errorf("failed to lay out document: %w", err)
	}

	final := c.layout(lines, generated, counting.PageCount())
	if err := final.Output(output); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	return nil
}

// linePage carries the per-document state of one layout pass.
type linePage struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func (c *PDFConverter) layout(lines []domain.ContentLine, generated string, total int) *gofpdf.Fpdf {
	pdf := c.newPDF(lines[0].Text)
	pdf.SetAutoPageBreak(true, bodyBottom)

	p := &linePage{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetHeaderFunc(func() { p.header(c.brand.Platform) })
	pdf.SetFooterFunc(func() { p.footer(generated, total) })

	pdf.AddPage()

	for i, line := range lines {
		if i > 0 {
			pdf.Ln(blockGap)
		}
		p.line(line)
	}

	return pdf
}

func (p *linePage) header(platform string) {
	setFill(p.pdf, colorBrand)
	p.pdf.Rect(pdfMargin, pdfMargin, pdfContentWidth, headerHeight, "F")

	p.pdf.SetFont(pdfFontFamily, "B", headerFontSize)
	setText(p.pdf, colorWhite)
	p.pdf.SetXY(pdfMargin, pdfMargin)
	p.pdf.CellFormat(pdfContentWidth, headerHeight, p.tr(platform), "", 0, "CM", false, 0, "")
	setText(p.pdf, colorBlack)

	p.pdf.SetXY(pdfMargin, pdfMargin+headerHeight+contentPadding)
}

func (p *linePage) footer(generated string, total int) {
	top := pdfPageHeight - pdfMargin - footerHeight

	// the band sits below the break trigger
	p.pdf.SetAutoPageBreak(false, 0)
	defer p.pdf.SetAutoPageBreak(true, bodyBottom)

	setFill(p.pdf, colorFooterBand)
	p.pdf.Rect(pdfMargin, top, pdfContentWidth, footerHeight, "F")

	p.pdf.SetFont(pdfFontFamily, "", footerFontSize)
	setText(p.pdf, colorMuted)
	p.pdf.SetXY(pdfMargin, top)
	text := fmt.Sprintf("Generated: %s - Page %d of %d", generated, p.pdf.PageNo(), max(total, p.pdf.PageNo()))
	p.pdf.CellFormat(pdfContentWidth, footerHeight, text, "", 0, "CM", false, 0, "")
	setText(p.pdf, colorBlack)
}

func (p *linePage) line(line domain.ContentLine) {
	size := float64(line.Size())

	switch line.Style() {
	case domain.StyleTitle:
		p.pdf.Ln(titleMargin)
		p.band(line.Text, size, titlePadding, colorTitleBand, colorWhite, "C")
		p.pdf.Ln(titleMargin)
	case domain.StyleHeading:
		p.pdf.Ln(headingMargin)
		p.band(line.Text, size, headingPadding, colorHeadingBand, colorHeadingText, "L")
		p.pdf.Ln(headingMargin)
	case domain.StyleSection:
		p.section(line.Text, size)
	default:
		style := ""
		if line.IsBold {
			style = "B"
		}
		p.pdf.SetFont(pdfFontFamily, style, size)
		setText(p.pdf, colorBlack)
		p.pdf.Ln(plainMargin)
		p.pdf.MultiCell(pdfContentWidth, lineHeight(size), p.tr(line.Text), "", "L", false)
		p.pdf.Ln(plainMargin)
	}
}

// band draws bold text on a filled background spanning the content width.
func (p *linePage) band(text string, size, padding float64, fill, color rgb, align string) {
	p.pdf.SetFont(pdfFontFamily, "B", size)

	txt := p.tr(text)
	width := pdfContentWidth - 2*padding
	lh := lineHeight(size)
	height := float64(len(p.pdf.SplitLines([]byte(txt), width)))*lh + 2*padding

	checkPageBreak(p.pdf, height)

	x, y := pdfMargin, p.pdf.GetY()
	setFill(p.pdf, fill)
	p.pdf.Rect(x, y, pdfContentWidth, height, "F")

	setText(p.pdf, color)
	p.pdf.SetXY(x+padding, y+padding)
	p.pdf.MultiCell(width, lh, txt, "", align, false)
	setText(p.pdf, colorBlack)

	p.pdf.SetXY(x, y+height)
}

// section draws an accent-colored heading followed by a full-width rule.
func (p *linePage) section(text string, size float64) {
	lh := lineHeight(size)
	checkPageBreak(p.pdf, 2*sectionMargin+lh+sectionRuleGap+blockGap+lineHeight(domain.DefaultFontSize))

	p.pdf.Ln(sectionMargin)
	p.pdf.SetFont(pdfFontFamily, "B", size)
	setText(p.pdf, colorSection)
	p.pdf.MultiCell(pdfContentWidth, lh, p.tr(text), "", "L", false)
	setText(p.pdf, colorBlack)

	y := p.pdf.GetY() + sectionRuleGap
	setDraw(p.pdf, colorSection)
	p.pdf.SetLineWidth(sectionRuleSize)
	p.pdf.Line(pdfMargin, y, pdfMargin+pdfContentWidth, y)
	p.pdf.SetY(y + sectionMargin)
}
