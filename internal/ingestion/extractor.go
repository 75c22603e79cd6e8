package ingestion

import (
	"context"
	"fmt"
)

// TextExtractor extracts plain text from one document format.
type TextExtractor interface {
	Extract(ctx context.Context, content []byte) (string, error)
}

// UnsupportedFormatError indicates no extractor is registered for a format.
type UnsupportedFormatError struct {
	Filename string
	Format   Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q for %s", e.Format, e.Filename)
}

// Manager dispatches extraction to the extractor registered for the detected
// format.
type Manager struct {
	extractors map[Format]TextExtractor
}

// NewManager returns a Manager with the TXT, HTML and DOCX extractors
// registered. PDF needs a context to build its parser, so callers register it
// explicitly via Register.
func NewManager() *Manager {
	m := &Manager{extractors: make(map[Format]TextExtractor)}
	m.Register(FormatTXT, &TXTExtractor{})
	m.Register(FormatHTML, &HTMLExtractor{})
	m.Register(FormatDOCX, &DOCXExtractor{})
	return m
}

// Register installs an extractor for a format, replacing any existing one.
func (m *Manager) Register(format Format, extractor TextExtractor) {
	m.extractors[format] = extractor
}

// Supports reports whether an extractor is registered for the format.
func (m *Manager) Supports(format Format) bool {
	_, ok := m.extractors[format]
	return ok
}

// ExtractText detects the document format and extracts its raw text.
func (m *Manager) ExtractText(ctx context.Context, filename string, content []byte) (string, error) {
	format := DetectFormat(filename, content)
	extractor, ok := m.extractors[format]
	if !ok {
		return "", &UnsupportedFormatError{Filename: filename, Format: format}
	}
	text, err := extractor.Extract(ctx, content)
	if err != nil {
		return "", fmt.Errorf("extracting text from %s (%s): %w", filename, format, err)
	}
	return text, nil
}
