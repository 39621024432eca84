package documents

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/config"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/receipt"
	pdfreader "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, time.November, 2, 14, 30, 5, 0, time.UTC)
}

func newService(t *testing.T) *Service {
	t.Helper()

	cfg := config.Default()
	cfg.PDF.Compress = false
	return New(&cfg, logger.NewConsoleLogger(io.Discard), WithClock(fixedClock))
}

func pages(t *testing.T, body []byte) int {
	t.Helper()

	r, err := pdfreader.NewReader(bytes.NewReader(body), int64(len(body)))
	require.NoError(t, err)
	return r.NumPage()
}

func TestResource(t *testing.T) {
	s := newService(t)

	for _, name := range []string{"food-safety-guide.pdf", "donation-checklist.pdf", "volunteer-handbook.pdf"} {
		t.Run(name, func(t *testing.T) {
			doc, err := s.Resource(name)
			require.NoError(t, err)

			assert.Equal(t, name, doc.Filename)
			assert.Equal(t, "application/pdf", doc.ContentType)
			assert.True(t, bytes.HasPrefix(doc.Body, []byte("%PDF-")))
			assert.Contains(t, string(doc.Body), "Generated: 2025-11-02 - Page 1 of")
			assert.GreaterOrEqual(t, pages(t, doc.Body), 1)
		})
	}
}

func TestResourceAs(t *testing.T) {
	s := newService(t)

	tests := []struct {
		format      string
		filename    string
		contentType string
	}{
		{"", "food-safety-guide.pdf", "application/pdf"},
		{"PDF", "food-safety-guide.pdf", "application/pdf"},
		{"docx", "food-safety-guide.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"word", "food-safety-guide.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"confluence", "food-safety-guide.adf.json", "application/json"},
		{"adf", "food-safety-guide.adf.json", "application/json"},
		{"json", "food-safety-guide.json", "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			doc, err := s.ResourceAs("food-safety-guide.pdf", tt.format)
			require.NoError(t, err)

			assert.Equal(t, tt.filename, doc.Filename)
			assert.Equal(t, tt.contentType, doc.ContentType)
			assert.NotEmpty(t, doc.Body)
		})
	}
}

func TestResourceAsUnsupportedFormat(t *testing.T) {
	_, err := newService(t).ResourceAs("food-safety-guide.pdf", "rtf")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "rtf")
}

func TestReceipt(t *testing.T) {
	s := newService(t)

	doc, err := s.Receipt("acme-donor-2023.pdf")
	require.NoError(t, err)

	assert.Equal(t, "acme-donor-2023.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.Contains(t, string(doc.Body), "Donor ID: acme-donor")
	assert.Contains(t, string(doc.Body), "Tax Year: 2023")

	doc, err = s.Receipt("solo.pdf")
	require.NoError(t, err)
	assert.Contains(t, string(doc.Body), "Tax Year: 2025")
}

func TestReceiptHTMLMatchesPDF(t *testing.T) {
	s := newService(t)

	for _, donor := range []string{"acme-donor", "small-shop", "test-donor", "green-grocer", "x"} {
		t.Run(donor, func(t *testing.T) {
			req := domain.ReceiptRequest{DonorID: donor, TaxYear: "2023"}
			data := receipt.Generate(req)

			html, err := s.ReceiptHTML(req)
			require.NoError(t, err)

			doc, err := s.Receipt(donor + "-2023.pdf")
			require.NoError(t, err)
			body := string(doc.Body)

			for _, row := range data.Donations {
				value := domain.Money(row.Value)
				assert.Contains(t, html, "<tr><td>"+row.Date+"</td><td>"+row.Description+"</td><td>"+value+"</td></tr>")
				assert.Contains(t, body, row.Date)
				assert.Contains(t, body, row.Description)
				assert.Contains(t, body, value)
			}

			more := fmt.Sprintf("... and %d more donations", data.OmittedCount)
			if data.HasOmitted() {
				remaining := domain.Money(data.RemainingValue)
				assert.Contains(t, html, more+"</em></td><td>"+remaining+"</td></tr>")
				assert.Contains(t, body, more)
				assert.Contains(t, body, remaining)
			} else {
				assert.NotContains(t, html, "more donations")
				assert.NotContains(t, body, "more donations")
			}
		})
	}
}

func TestSampleAndDirectPDF(t *testing.T) {
	s := newService(t)

	sample, err := s.SamplePDF()
	require.NoError(t, err)
	assert.Equal(t, SamplePDFFilename, sample.Filename)
	n := pages(t, sample.Body)
	assert.Greater(t, n, 1)
	assert.Contains(t, string(sample.Body), fmt.Sprintf("Page 1 of %d", n))
	assert.Contains(t, string(sample.Body), "Line 50: This is additional content to test multi-page PDF generation.")

	direct, err := s.DirectPDF()
	require.NoError(t, err)
	assert.Equal(t, DirectPDFFilename, direct.Filename)
	assert.Equal(t, 1, pages(t, direct.Body))
	assert.Contains(t, string(direct.Body), "2. STORAGE GUIDELINES")
}

func TestExtract(t *testing.T) {
	report, err := newService(t).Extract("food")
	require.NoError(t, err)

	assert.Greater(t, report.HTMLLength, 0)
	assert.Equal(t, report.LinesExtracted, len(report.Lines))
	assert.Equal(t, "Food Safety Guidelines", report.Lines[0].Text)
	assert.True(t, report.Lines[0].IsTitle)
}

func TestPreview(t *testing.T) {
	report, err := newService(t).Preview("food-safety")
	require.NoError(t, err)

	assert.Equal(t, (report.TotalLines+24)/25, report.PagesExpected)
	assert.LessOrEqual(t, len(report.FirstPageLines), 25)
	assert.Equal(t, "Title", report.FirstPageLines[0].Type)
	assert.Equal(t, domain.TitleFontSize, report.FirstPageLines[0].FontSize)

	for i, l := range report.FirstPageLines {
		assert.Equal(t, i, l.Index)
		assert.LessOrEqual(t, len([]rune(l.Text)), 63)
	}
}

func TestInspect(t *testing.T) {
	report, err := newService(t).Inspect("receipt")
	require.NoError(t, err)

	assert.Greater(t, report.PDFSize, 0)
	assert.True(t, strings.HasPrefix(report.PDFHeader, "%PDF-"))
	assert.LessOrEqual(t, len(report.PDFHeader), 50)
	assert.LessOrEqual(t, len(report.First10Lines), 10)
	assert.Equal(t, "OFFICIAL TAX RECEIPT", report.First10Lines[0].Text)

	for _, l := range report.First10Lines {
		assert.LessOrEqual(t, len([]rune(l.Text)), 50)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "°F", truncate("°F hot", 2))
	assert.Equal(t, "", truncate("abc", 0))
}
