package ingestion

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
)

const pdfExtractTimeout = 30 * time.Second

// PDFExtractor extracts the full text of a PDF document through the eino PDF
// parser, configured to return the whole document as a single string rather
// than one document per page.
type PDFExtractor struct {
	parser *pdf.PDFParser
}

// NewPDFExtractor builds the underlying PDF parser.
func NewPDFExtractor(ctx context.Context) (*PDFExtractor, error) {
	p, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
	if err != nil {
		return nil, fmt.Errorf("creating PDF parser: %w", err)
	}
	return &PDFExtractor{parser: p}, nil
}

func (e *PDFExtractor) Extract(ctx context.Context, content []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, pdfExtractTimeout)
	defer cancel()

	docs, err := e.parser.Parse(ctx, bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parsing PDF: %w", err)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("PDF parser returned no documents")
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, doc.Content)
	}
	return strings.Join(parts, "\n"), nil
}
