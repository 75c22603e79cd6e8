package ingestion

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// TXTExtractor handles plain-text documents. Invalid UTF-8 input is assumed
// to be Latin-1 and transcoded, which covers the accented bytes common in
// French CVs saved from older tooling.
type TXTExtractor struct{}

func (e *TXTExtractor) Extract(_ context.Context, content []byte) (string, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if utf8.Valid(content) {
		return string(content), nil
	}
	return latin1ToUTF8(content), nil
}

func latin1ToUTF8(content []byte) string {
	var sb strings.Builder
	sb.Grow(len(content))
	for _, b := range content {
		sb.WriteRune(rune(b))
	}
	return sb.String()
}
