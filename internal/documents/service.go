// Package documents wires the content source, extractor and converters into
// the document operations exposed by the CLI and the HTTP server.
package documents

import (
	"bytes"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/adapters/converters"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/adapters/extract"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/adapters/source"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/config"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/receipt"
)

// Filenames of the fixed debug documents.
const (
	SamplePDFFilename = "test.pdf"
	DirectPDFFilename = "test-direct.pdf"
)

var extensions = map[string]string{
	"docx":       ".docx",
	"confluence": ".adf.json",
	"json":       ".json",
}

// Document is a rendered file ready to be served or written.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used for timestamps and default tax years.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service produces WasteNaut documents.
type Service struct {
	log        logger.ILogger
	now        func() time.Time
	source     *source.Source
	extractor  *extract.Extractor
	pdf        *converters.PDFConverter
	receipts   *converters.ReceiptPDF
	converters map[string]domain.Converter
}

// New creates a document service from the application configuration.
func New(cfg *config.Config, log logger.ILogger, opts ...Option) *Service {
	s := &Service{log: log, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	pdfOpts := []converters.PDFOption{
		converters.WithClock(s.now),
		converters.WithCompression(cfg.PDF.Compress),
		converters.WithAuthor(cfg.PDF.Author),
	}

	s.source = source.New(cfg.Brand, s.now)
	s.extractor = extract.New(cfg.Brand.Name)
	s.pdf = converters.NewPDFConverter(cfg.Brand, pdfOpts...)
	s.receipts = converters.NewReceiptPDF(cfg.Brand, pdfOpts...)
	s.converters = make(map[string]domain.Converter)

	for _, c := range []domain.Converter{s.pdf, converters.NewDocxConverter(), converters.NewADFConverter(), converters.NewJSONConverter()} {
		s.converters[c.Format()] = c
	}
	s.converters["word"] = s.converters["docx"]
	s.converters["adf"] = s.converters["confluence"]

	return s
}

// Formats lists the names accepted by ResourceAs.
func (s *Service) Formats() []string {
	return []string{"pdf", "docx", "confluence", "json"}
}

// Resource renders the resource document served under filename as PDF.
func (s *Service) Resource(filename string) (Document, error) {
	return s.ResourceAs(filename, s.pdf.Format())
}

// ResourceAs renders the resource document through the converter registered for format.
func (s *Service) ResourceAs(filename, format string) (Document, error) {
	converter, err := s.converter(format)
	if err != nil {
		return Document{}, err
	}

	html, err := s.source.ForResource(filename)
	if err != nil {
		return Document{}, fmt.Errorf("failed to load resource %s: %w", filename, err)
	}

	lines := s.extractor.Extract(html)

	var buf bytes.Buffer
	if err := converter.Convert(lines, &buf); err != nil {
		return Document{}, fmt.Errorf("failed to convert %s to %s: %w", filename, converter.Format(), err)
	}

	s.log.Infof("Rendered resource %s as %s (%d lines, %d bytes)", filename, converter.Format(), len(lines), buf.Len())

	return Document{
		Filename:    outputName(filename, converter.Format()),
		ContentType: converter.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}

// Receipt renders the tax receipt identified by filename.
func (s *Service) Receipt(filename string) (Document, error) {
	req := receipt.ParseFilename(filename, s.now())

	body, err := s.receipts.Render(receipt.Generate(req))
	if err != nil {
		return Document{}, fmt.Errorf("failed to render receipt %s: %w", filename, err)
	}

	s.log.Infof("Rendered receipt for donor %s, tax year %s", req.DonorID, req.TaxYear)

	return Document{
		Filename:    filename,
		ContentType: s.receipts.ContentType(),
		Body:        body,
	}, nil
}

// ReceiptHTML returns the HTML rendition of the receipt for req.
func (s *Service) ReceiptHTML(req domain.ReceiptRequest) (string, error) {
	return s.source.TaxReceipt(req)
}

// SamplePDF renders the fixed multi-page test document.
func (s *Service) SamplePDF() (Document, error) {
	return s.renderLines(SamplePDFFilename, sampleLines())
}

// DirectPDF renders a fixed line list without going through extraction.
func (s *Service) DirectPDF() (Document, error) {
	return s.renderLines(DirectPDFFilename, directLines())
}

func (s *Service) renderLines(filename string, lines []domain.ContentLine) (Document, error) {
	body, err := s.pdf.Render(lines)
	if err != nil {
		return Document{}, fmt.Errorf("failed to render %s: %w", filename, err)
	}

	return Document{Filename: filename, ContentType: s.pdf.ContentType(), Body: body}, nil
}

func (s *Service) converter(format string) (domain.Converter, error) {
	if format == "" {
		return s.pdf, nil
	}

	c, ok := s.converters[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w: %s (supported: %s)", domain.ErrUnsupportedFormat, format, strings.Join(s.Formats(), ", "))
	}

	return c, nil
}

// outputName swaps the .pdf extension of a resource name for the format's own.
// PDF output keeps the requested name.
func outputName(filename, format string) string {
	ext, ok := extensions[format]
	if !ok {
		return filename
	}

	if strings.EqualFold(path.Ext(filename), ".pdf") {
		filename = filename[:len(filename)-len(".pdf")]
	}

	return filename + ext
}
