package domain

import (
	"errors"
	"io"
)

// ErrUnsupportedFormat is returned when no converter is registered for a format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Converter defines the interface for line-sequence converters.
type Converter interface {
	// Convert renders the ordered line sequence in the target format.
	Convert(lines []ContentLine, output io.Writer) error

	// Format returns the output format name (e.g., "pdf", "docx").
	Format() string

	// ContentType returns the MIME type of the output.
	ContentType() string
}

// ReceiptRenderer lays out a tax receipt directly, bypassing the line model.
type ReceiptRenderer interface {
	Convert(data ReceiptData, output io.Writer) error
}
