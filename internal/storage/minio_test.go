package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("abc123", "cv jean.pdf")
	assert.Equal(t, "abc123_cv_jean.pdf", key)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"plain", "cv.pdf", "cv.pdf"},
		{"strips directories", "/tmp/uploads/cv.pdf", "cv.pdf"},
		{"spaces replaced", "mon cv final.pdf", "mon_cv_final.pdf"},
		{"accents replaced", "résumé.pdf", "r_sum_.pdf"},
		{"keeps dash underscore", "cv-jean_2024.pdf", "cv-jean_2024.pdf"},
		{"empty", "", "upload"},
		{"dot", ".", "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFilename(tt.filename))
		})
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"cv.pdf", "application/pdf"},
		{"cv.PDF", "application/pdf"},
		{"cv.doc", "application/msword"},
		{"cv.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"cv.txt", "text/plain"},
		{"cv.html", "text/html"},
		{"cv.bin", "application/octet-stream"},
		{"cv", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, contentTypeFor(tt.filename))
		})
	}
}
