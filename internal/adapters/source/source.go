// Package source renders the canned HTML documents served by the platform.
package source

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/receipt"
)

// Well-known resource filenames.
const (
	FoodSafetyGuideFile   = "food-safety-guide.pdf"
	DonationChecklistFile = "donation-checklist.pdf"
)

// Debug document sample values.
const (
	SampleDonorID = "test-donor"
	SampleTaxYear = "2024"
	SampleName    = "test"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"money": domain.Money,
}).ParseFS(templateFS, "templates/*.html"))

// Source renders HTML documents for a brand.
type Source struct {
	brand domain.Brand
	now   func() time.Time
}

// New creates a content source. now supplies the "Generated" timestamps.
func New(brand domain.Brand, now func() time.Time) *Source {
	if now == nil {
		now = time.Now
	}
	return &Source{brand: brand, now: now}
}

type page struct {
	Title     string
	Brand     domain.Brand
	Generated string
	Timestamp string
	Filename  string
	Receipt   domain.ReceiptData
}

// FoodSafetyGuide returns the food safety guidelines document.
func (s *Source) FoodSafetyGuide() (string, error) {
	return s.render("food_safety_guide.html", s.page("Food Safety Guidelines"))
}

// DonationChecklist returns the donation best-practices checklist.
func (s *Source) DonationChecklist() (string, error) {
	return s.render("donation_checklist.html", s.page("Donation Best Practices Checklist"))
}

// TaxReceipt returns the HTML rendition of a receipt.
func (s *Source) TaxReceipt(req domain.ReceiptRequest) (string, error) {
	p := s.page("Tax Receipt")
	p.Receipt = receipt.Generate(req)
	return s.render("tax_receipt.html", p)
}

// Generic returns a placeholder document named after filename.
func (s *Source) Generic(filename string) (string, error) {
	p := s.page(filename)
	p.Filename = filename
	return s.render("generic.html", p)
}

// ForResource picks the document served under /resources/{filename}.
func (s *Source) ForResource(filename string) (string, error) {
	switch strings.ToLower(filename) {
	case FoodSafetyGuideFile:
		return s.FoodSafetyGuide()
	case DonationChecklistFile:
		return s.DonationChecklist()
	default:
		return s.Generic(filename)
	}
}

// ForDocType picks the document inspected by the debug endpoints.
func (s *Source) ForDocType(docType string) (string, error) {
	switch strings.ToLower(docType) {
	case "food", "food-safety":
		return s.FoodSafetyGuide()
	case "checklist", "donation":
		return s.DonationChecklist()
	case "receipt", "tax":
		return s.TaxReceipt(domain.ReceiptRequest{DonorID: SampleDonorID, TaxYear: SampleTaxYear})
	default:
		return s.Generic(SampleName)
	}
}

func (s *Source) page(title string) page {
	now := s.now().UTC()
	return page{
		Title:     title,
		Brand:     s.brand,
		Generated: now.Format(time.DateOnly),
		Timestamp: now.Format(time.DateTime),
	}
}

func (s *Source) render(name string, data page) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.String(), nil
}
