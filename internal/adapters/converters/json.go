package converters

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/GabrielNunesIT/wastenaut-docs/internal/domain"
)

// JSONConverter writes the JSON projection of content lines.
type JSONConverter struct{}

// NewJSONConverter creates a new JSON converter.
func NewJSONConverter() *JSONConverter {
	return &JSONConverter{}
}

// Format returns the output format name.
func (c *JSONConverter) Format() string {
	return jsonFormat
}

// ContentType returns the MIME type of the output.
func (c *JSONConverter) ContentType() string {
	return jsonMIME
}

// Convert encodes lines as an indented JSON array. Unlike the document
// formats, the lines are written as given.
func (c *JSONConverter) Convert(lines []domain.ContentLine, output io.Writer) error {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(domain.Project(lines)); err != nil {
		return fmt.Errorf("failed to encode lines: %w", err)
	}

	return nil
}
