// Package ingestion detects uploaded document formats and extracts their raw
// text, supplying the plain-text input the parsing core consumes.
package ingestion

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format identifies a supported document format.
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
	FormatTXT     Format = "txt"
	FormatHTML    Format = "html"
	FormatUnknown Format = "unknown"
)

var magicPDF = []byte("%PDF-")
var magicZIP = []byte("PK\x03\x04")

// DetectFormat infers the document format from the declared filename
// extension, falling back to content sniffing when the extension is missing
// or unknown.
func DetectFormat(filename string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx", ".doc":
		return FormatDOCX
	case ".txt", ".text", ".md":
		return FormatTXT
	case ".html", ".htm":
		return FormatHTML
	}
	return sniffFormat(content)
}

func sniffFormat(content []byte) Format {
	if bytes.HasPrefix(content, magicPDF) {
		return FormatPDF
	}
	if bytes.HasPrefix(content, magicZIP) {
		// DOCX is a zip container; anything else zip-shaped is unsupported anyway.
		return FormatDOCX
	}

	head := bytes.ToLower(bytes.TrimSpace(content))
	if len(head) > 512 {
		head = head[:512]
	}
	if bytes.HasPrefix(head, []byte("<!doctype html")) || bytes.HasPrefix(head, []byte("<html")) {
		return FormatHTML
	}
	if isMostlyText(content) {
		return FormatTXT
	}
	return FormatUnknown
}

// isMostlyText applies a cheap binary-vs-text heuristic to the first KiB.
func isMostlyText(content []byte) bool {
	if len(content) == 0 {
		return false
	}
	sample := content
	if len(sample) > 1024 {
		sample = sample[:1024]
	}
	binary := 0
	for _, b := range sample {
		if b == 0 || (b < 0x09 && b != 0) {
			binary++
		}
	}
	return binary*100 < len(sample)
}
