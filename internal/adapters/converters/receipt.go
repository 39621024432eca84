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
	receiptSummaryPadding = 15.0
	receiptTablePadding   = 10.0
	receiptBlockGap       = 15.0
)

// receiptColumns are the relative widths of Date, Description and Value.
var receiptColumns = [3]float64{2, 3, 2}

// ReceiptPDF renders tax receipts.
type ReceiptPDF struct {
	pdfSettings
	brand domain.Brand
}

// NewReceiptPDF creates a new receipt renderer.
func NewReceiptPDF(brand domain.Brand, opts ...PDFOption) *ReceiptPDF {
	r := &ReceiptPDF{pdfSettings: defaultPDFSettings(), brand: brand}
	for _, opt := range opts {
		opt(&r.pdfSettings)
	}
	return r
}

// ContentType returns the MIME type of the output.
func (r *ReceiptPDF) ContentType() string {
	return pdfContentType
}

// Render returns the receipt PDF bytes.
func (r *ReceiptPDF) Render(data domain.ReceiptData) ([]byte, error) {
	return render(func(buf *bytes.Buffer) error {
		return r.Convert(data, buf)
	})
}

// Convert writes the receipt for data as PDF.
func (r *ReceiptPDF) Convert(data domain.ReceiptData, output io.Writer) error {
	pdf := r.newPDF(fmt.Sprintf("Tax Receipt %s %s", data.Request.DonorID, data.Request.TaxYear))
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	w := &receiptWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	w.header(r.brand.Platform, data.Request.TaxYear)
	w.donor(data.Request)
	w.summary(data)
	w.details(data)
	w.footer(r.brand, r.now().UTC())

	if err := pdf.Output(output); err != nil {
		return fmt.Errorf("failed to write receipt PDF: %w", err)
	}

	return nil
}

type receiptWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// text writes one full-width line.
func (w *receiptWriter) text(s, style string, size float64, align string) {
	w.pdf.SetFont(pdfFontFamily, style, size)
	w.pdf.CellFormat(pdfContentWidth, lineHeight(size), w.tr(s), "", 1, align, false, 0, "")
}

// paragraph writes left-aligned text wrapped to the content width.
func (w *receiptWriter) paragraph(s, style string, size float64) {
	w.pdf.SetFont(pdfFontFamily, style, size)
	w.pdf.MultiCell(pdfContentWidth, lineHeight(size), w.tr(s), "", "L", false)
}

func (w *receiptWriter) header(platform, taxYear string) {
	w.text("OFFICIAL TAX RECEIPT", "B", 24, "C")
	w.pdf.Ln(4)
	w.text(platform, "B", 14, "C")
	w.text("Tax Year: "+taxYear, "", 12, "C")
	w.pdf.Ln(receiptBlockGap)
}

func (w *receiptWriter) donor(req domain.ReceiptRequest) {
	w.paragraph("Donor ID: "+req.DonorID, "B", 12)
	w.paragraph("Donor Name: "+req.DonorName(), "", 12)
	w.pdf.Ln(receiptBlockGap)
}

func (w *receiptWriter) summary(data domain.ReceiptData) {
	height := 2*receiptSummaryPadding + lineHeight(14) + 4 + 2*lineHeight(12)
	checkPageBreak(w.pdf, height)

	x, y := pdfMargin, w.pdf.GetY()
	setFill(w.pdf, colorSummaryFill)
	setDraw(w.pdf, colorBorder)
	w.pdf.SetLineWidth(1)
	w.pdf.Rect(x, y, pdfContentWidth, height, "FD")

	inner := pdfContentWidth - 2*receiptSummaryPadding
	w.pdf.SetXY(x+receiptSummaryPadding, y+receiptSummaryPadding)

	w.pdf.SetFont(pdfFontFamily, "B", 14)
	w.pdf.CellFormat(inner, lineHeight(14), "Summary", "", 2, "L", false, 0, "")
	w.pdf.Ln(4)
	w.pdf.SetX(x + receiptSummaryPadding)

	w.pdf.SetFont(pdfFontFamily, "", 12)
	w.pdf.CellFormat(inner, lineHeight(12), fmt.Sprintf("Total Donations: %d", data.TotalDonations), "", 2, "L", false, 0, "")

	w.pdf.SetFont(pdfFontFamily, "B", 12)
	w.pdf.CellFormat(inner, lineHeight(12), "Total Donation Value: "+domain.Money(data.TotalValue), "", 2, "L", false, 0, "")

	w.pdf.SetXY(x, y+height)
	w.pdf.Ln(receiptBlockGap)
}

func (w *receiptWriter) details(data domain.ReceiptData) {
	w.text("Donation Details", "B", 16, "L")
	w.pdf.Ln(6)

	widths := columnWidths()
	setDraw(w.pdf, colorBorder)
	w.pdf.SetLineWidth(0.5)

	w.pdf.SetFont(pdfFontFamily, "B", 11)
	setFill(w.pdf, colorTableHeader)
	height := lineHeight(11) + receiptTablePadding
	w.pdf.CellFormat(widths[0], height, "Date", "1", 0, "LM", true, 0, "")
	w.pdf.CellFormat(widths[1], height, "Description", "1", 0, "LM", true, 0, "")
	w.pdf.CellFormat(widths[2], height, "Value", "1", 1, "RM", true, 0, "")

	w.pdf.SetFont(pdfFontFamily, "", 10)
	height = lineHeight(10) + receiptTablePadding
	for _, row := range data.Donations {
		w.pdf.CellFormat(widths[0], height, w.tr(row.Date), "1", 0, "LM", false, 0, "")
		w.pdf.CellFormat(widths[1], height, w.tr(row.Description), "1", 0, "LM", false, 0, "")
		w.pdf.CellFormat(widths[2], height, domain.Money(row.Value), "1", 1, "RM", false, 0, "")
	}

	if data.HasOmitted() {
		w.pdf.SetFont(pdfFontFamily, "I", 10)
		w.pdf.CellFormat(widths[0]+widths[1], height, fmt.Sprintf("... and %d more donations", data.OmittedCount), "1", 0, "LM", false, 0, "")
		w.pdf.SetFont(pdfFontFamily, "", 10)
		w.pdf.CellFormat(widths[2], height, domain.Money(data.RemainingValue), "1", 1, "RM", false, 0, "")
	}

	w.pdf.Ln(2 * receiptBlockGap)
}

func (w *receiptWriter) footer(brand domain.Brand, generated time.Time) {
	checkPageBreak(w.pdf, receiptBlockGap+4*lineHeight(10))

	y := w.pdf.GetY()
	setDraw(w.pdf, colorBorder)
	w.pdf.SetLineWidth(1)
	w.pdf.Line(pdfMargin, y, pdfMargin+pdfContentWidth, y)
	w.pdf.Ln(receiptTablePadding)

	setText(w.pdf, colorMuted)
	w.text("Generated: "+generated.Format(time.DateTime)+" UTC", "", 10, "C")
	setText(w.pdf, colorBlack)
	w.text("This receipt is for tax purposes only.", "B", 10, "C")
	w.text("Consult your tax advisor for proper reporting.", "", 10, "C")
	w.text(fmt.Sprintf("%s | EIN: %s", brand.Platform, brand.EIN), "", 10, "C")
}

func columnWidths() [3]float64 {
	var total float64
	for _, c := range receiptColumns {
		total += c
	}

	var widths [3]float64
	for i, c := range receiptColumns {
		widths[i] = pdfContentWidth * c / total
	}
	return widths
}
