package converters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/receipt"
	pdfreader "github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, time.November, 2, 14, 30, 5, 0, time.UTC)
}

func plainLines(n int) []domain.ContentLine {
	lines := make([]domain.ContentLine, 0, n)
	for i := 1; i <= n; i++ {
		lines = append(lines, domain.NewLine(fmt.Sprintf("Line %d: plain body text", i)))
	}
	return lines
}

func pageCount(t *testing.T, data []byte) int {
	t.Helper()

	r, err := pdfreader.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return r.NumPage()
}

func newTestPDF() *PDFConverter {
	return NewPDFConverter(domain.DefaultBrand(), WithClock(fixedClock), WithCompression(false))
}

func TestPDFConverterFooterTotals(t *testing.T) {
	tests := []struct {
		name  string
		lines []domain.ContentLine
		pages int
	}{
		{"single page", plainLines(3), 1},
		{"two pages", plainLines(30), 2},
		{"many pages", plainLines(60), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := newTestPDF().Render(tt.lines)
			require.NoError(t, err)

			assert.Equal(t, tt.pages, pageCount(t, data))
			for n := 1; n <= tt.pages; n++ {
				assert.Contains(t, string(data), fmt.Sprintf("Generated: 2025-11-02 - Page %d of %d", n, tt.pages))
			}
			assert.NotContains(t, string(data), fmt.Sprintf("of %d)", tt.pages+1))
		})
	}
}

func TestPDFConverterPlaceholders(t *testing.T) {
	data, err := newTestPDF().Render(nil)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No content available")
	assert.Equal(t, 1, pageCount(t, data))

	data, err = newTestPDF().Render([]domain.ContentLine{domain.NewLine("  "), domain.NewLine("")})
	require.NoError(t, err)
	assert.Contains(t, string(data), "Document content")
}

func TestPDFConverterStyles(t *testing.T) {
	lines := []domain.ContentLine{
		{Text: "Food Safety Guidelines", FontSize: domain.TitleFontSize, IsTitle: true},
		{Text: "WasteNaut Food Rescue Platform", FontSize: domain.TaglineFontSize, IsBold: true},
		{Text: "Overview", FontSize: domain.HeadingFontSize, IsHeading: true},
		{Text: "1. TEMPERATURE CONTROL", FontSize: domain.SectionFontSize, IsHeading: true, IsSectionHeading: true},
		domain.NewLine("- Keep cold items at or below 40°F"),
	}

	data, err := newTestPDF().Render(lines)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Contains(t, out, "WasteNaut Food Rescue Platform")
	assert.Contains(t, out, "1. TEMPERATURE CONTROL")
	assert.Contains(t, out, "/Title")
	assert.Contains(t, out, "Page 1 of 1")
}

func TestPDFConverterIsDeterministic(t *testing.T) {
	c := newTestPDF()

	a, err := c.Render(plainLines(40))
	require.NoError(t, err)
	b, err := c.Render(plainLines(40))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestReceiptPDF(t *testing.T) {
	r := NewReceiptPDF(domain.DefaultBrand(), WithClock(fixedClock), WithCompression(false))

	for _, donor := range []string{"acme-donor", "small-shop", "test-donor", "x"} {
		t.Run(donor, func(t *testing.T) {
			data := receipt.Generate(domain.ReceiptRequest{DonorID: donor, TaxYear: "2023"})

			out, err := r.Render(data)
			require.NoError(t, err)
			assert.Equal(t, 1, pageCount(t, out))

			text := string(out)
			assert.Contains(t, text, "OFFICIAL TAX RECEIPT")
			assert.Contains(t, text, "Tax Year: 2023")
			assert.Contains(t, text, "Donor ID: "+donor)
			assert.Contains(t, text, "Donor Name: "+data.Request.DonorName())
			assert.Contains(t, text, fmt.Sprintf("Total Donations: %d", data.TotalDonations))
			assert.Contains(t, text, "Total Donation Value: "+domain.Money(data.TotalValue))
			assert.Contains(t, text, "Generated: 2025-11-02 14:30:05 UTC")
			assert.Contains(t, text, "WasteNaut Food Rescue Platform | EIN: 12-3456789")

			for _, row := range data.Donations {
				assert.Contains(t, text, row.Description)
			}

			if data.HasOmitted() {
				assert.Contains(t, text, fmt.Sprintf("... and %d more donations", data.OmittedCount))
			} else {
				assert.NotContains(t, text, "more donations")
			}
		})
	}
}

func TestReceiptPDFWrapsLongDonor(t *testing.T) {
	r := NewReceiptPDF(domain.DefaultBrand(), WithClock(fixedClock), WithCompression(false))
	donor := strings.Repeat("long-donor-", 14)
	data := receipt.Generate(domain.ReceiptRequest{DonorID: donor, TaxYear: "2023"})

	out, err := r.Render(data)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pageCount(t, out), 1)

	text := string(out)
	assert.Contains(t, text, "Donor ID: long-donor-")
	assert.NotContains(t, text, "Donor ID: "+donor)
	assert.Contains(t, text, "Donor Name: long donor")
	assert.NotContains(t, text, "Donor Name: "+data.Request.DonorName())
}

func TestDocxConverter(t *testing.T) {
	lines := []domain.ContentLine{
		{Text: "Title", FontSize: domain.TitleFontSize, IsTitle: true},
		{Text: "Bold", FontSize: domain.TaglineFontSize, IsBold: true},
		{Text: "Section", FontSize: domain.SectionFontSize, IsHeading: true, IsSectionHeading: true},
		domain.NewLine("- item"),
	}

	for _, in := range [][]domain.ContentLine{lines, nil} {
		var buf bytes.Buffer
		require.NoError(t, NewDocxConverter().Convert(in, &buf))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
	}
}

func TestADFConverter(t *testing.T) {
	lines := []domain.ContentLine{
		{Text: "Guide", FontSize: domain.TitleFontSize, IsTitle: true},
		{Text: "Table of Contents:", FontSize: domain.TaglineFontSize, IsBold: true},
		{Text: "    First", FontSize: domain.TOCFontSize},
		{Text: "    Second", FontSize: domain.TOCFontSize},
		{Text: "1. FIRST", FontSize: domain.SectionFontSize, IsHeading: true, IsSectionHeading: true},
		domain.NewLine("- a"),
		domain.NewLine("- b"),
		{Text: "A | B", FontSize: domain.TableFontSize, IsBold: true},
		{Text: "-----", FontSize: domain.TableFontSize},
		{Text: "1 | 2", FontSize: domain.TableFontSize},
	}

	var buf bytes.Buffer
	require.NoError(t, NewADFConverter().Convert(lines, &buf))

	var doc adfDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	types := make([]string, 0, len(doc.Content))
	for _, n := range doc.Content {
		types = append(types, n.Type)
	}

	assert.Equal(t, "doc", doc.Type)
	assert.Equal(t, []string{"heading", "paragraph", "bulletList", "heading", "rule", "bulletList", "paragraph", "rule", "paragraph"}, types)
	assert.Equal(t, 1, doc.Content[0].Attrs.Level)
	assert.Equal(t, 3, doc.Content[3].Attrs.Level)
	require.Len(t, doc.Content[2].Content, 2)
	assert.Equal(t, "First", doc.Content[2].Content[0].Content[0].Content[0].Text)
	assert.Equal(t, "strong", doc.Content[1].Content[0].Marks[0].Type)
}

func TestJSONConverter(t *testing.T) {
	lines := []domain.ContentLine{
		{Text: "Guide", FontSize: domain.TitleFontSize, IsTitle: true},
		{Text: ""},
	}

	var buf bytes.Buffer
	require.NoError(t, NewJSONConverter().Convert(lines, &buf))

	var got []domain.LineProjection
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.True(t, got[0].IsTitle)
	assert.Equal(t, domain.DefaultFontSize, got[1].FontSize)
}

func TestConvertersImplementInterface(t *testing.T) {
	for _, c := range []domain.Converter{newTestPDF(), NewDocxConverter(), NewADFConverter(), NewJSONConverter()} {
		assert.NotEmpty(t, c.Format())
		assert.NotEmpty(t, c.ContentType())
	}
	var _ domain.ReceiptRenderer = NewReceiptPDF(domain.DefaultBrand())
}
