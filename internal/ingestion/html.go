package ingestion

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLExtractor extracts the visible text of an HTML document, one block
// element per line, so downstream line-based heuristics keep working.
type HTMLExtractor struct{}

var blockSelector = "h1, h2, h3, h4, h5, h6, p, li, td, div, section, article, br"

func (e *HTMLExtractor) Extract(_ context.Context, content []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var lines []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// Skip containers whose text is just their children concatenated.
		if s.Children().Filter(blockSelector).Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	return strings.Join(lines, "\n"), nil
}
