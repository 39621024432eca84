package converters

import (
	"fmt"
	"io"

	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFormat      = "docx"
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// DocxConverter converts content lines to Word (DOCX) format.
type DocxConverter struct{}

// NewDocxConverter creates a new DOCX converter.
func NewDocxConverter() *DocxConverter {
	return &DocxConverter{}
}

// Format returns the output format name.
func (c *DocxConverter) Format() string {
	return docxFormat
}

// ContentType returns the MIME type of the output.
func (c *DocxConverter) ContentType() string {
	return docxContentType
}

// Convert writes lines as a DOCX document, mapping line styles to Word heading levels.
func (c *DocxConverter) Convert(lines []domain.ContentLine, output io.Writer) error {
	document, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	for _, line := range normalizeLines(lines) {
		if err := c.addLine(document, line); err != nil {
			return err
		}
	}

	if err := document.Write(output); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	return nil
}

func (c *DocxConverter) addLine(document *docx.RootDoc, line domain.ContentLine) error {
	var err error

	switch line.Style() {
	case domain.StyleTitle:
		_, err = document.AddHeading(line.Text, 0) // Level 0 = Title style
	case domain.StyleHeading:
		_, err = document.AddHeading(line.Text, 1)
	case domain.StyleSection:
		_, err = document.AddHeading(line.Text, 2)
	default:
		if line.IsBold {
			document.AddEmptyParagraph().AddText(line.Text).Bold(true)
		} else {
			document.AddParagraph(line.Text)
		}
	}

	if err != nil {
		return fmt.Errorf("failed to add heading %q: %w", line.Text, err)
	}

	return nil
}
