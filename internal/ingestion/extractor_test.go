package ingestion

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_DefaultRegistrations(t *testing.T) {
	m := NewManager()

	assert.True(t, m.Supports(FormatTXT))
	assert.True(t, m.Supports(FormatHTML))
	assert.True(t, m.Supports(FormatDOCX))
	assert.False(t, m.Supports(FormatPDF))
	assert.False(t, m.Supports(FormatUnknown))
}

func TestManager_ExtractText(t *testing.T) {
	m := NewManager()

	text, err := m.ExtractText(context.Background(), "cv.txt", []byte("Jean Dupont"))
	require.NoError(t, err)
	assert.Equal(t, "Jean Dupont", text)
}

func TestManager_UnsupportedFormat(t *testing.T) {
	m := NewManager()

	_, err := m.ExtractText(context.Background(), "cv.pdf", []byte("%PDF-1.7"))
	require.Error(t, err)

	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, FormatPDF, unsupported.Format)
	assert.Equal(t, "cv.pdf", unsupported.Filename)
}

func TestTXTExtractor(t *testing.T) {
	e := &TXTExtractor{}
	ctx := context.Background()

	t.Run("plain utf8", func(t *testing.T) {
		text, err := e.Extract(ctx, []byte("Jean Dupont\nDéveloppeur"))
		require.NoError(t, err)
		assert.Equal(t, "Jean Dupont\nDéveloppeur", text)
	})

	t.Run("strips BOM", func(t *testing.T) {
		text, err := e.Extract(ctx, append([]byte{0xEF, 0xBB, 0xBF}, []byte("Jean")...))
		require.NoError(t, err)
		assert.Equal(t, "Jean", text)
	})

	t.Run("latin1 fallback", func(t *testing.T) {
		// "Prénom" in Latin-1: é is 0xE9.
		text, err := e.Extract(ctx, []byte{'P', 'r', 0xE9, 'n', 'o', 'm'})
		require.NoError(t, err)
		assert.Equal(t, "Prénom", text)
	})
}

func TestHTMLExtractor(t *testing.T) {
	e := &HTMLExtractor{}
	ctx := context.Background()

	html := `<html><head><style>p { color: red; }</style>
<script>alert("x")</script></head>
<body><h1>Jean Dupont</h1><p>jean@example.com</p><ul><li>Python</li><li>Docker</li></ul></body></html>`

	text, err := e.Extract(ctx, []byte(html))
	require.NoError(t, err)

	assert.Contains(t, text, "Jean Dupont")
	assert.Contains(t, text, "jean@example.com")
	assert.Contains(t, text, "Python")
	assert.NotContains(t, text, "alert")
	assert.NotContains(t, text, "color: red")

	// Block elements become separate lines.
	assert.Contains(t, text, "Jean Dupont\n")
}

func TestDOCXExtractor(t *testing.T) {
	e := &DOCXExtractor{}
	ctx := context.Background()

	docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jean Dupont</w:t></w:r></w:p>
    <w:p><w:r><w:t>jean@example.com</w:t></w:r></w:p>
  </w:body>
</w:document>`

	content := buildDOCX(t, map[string]string{"word/document.xml": docXML})

	text, err := e.Extract(ctx, content)
	require.NoError(t, err)
	assert.Contains(t, text, "Jean Dupont\n")
	assert.Contains(t, text, "jean@example.com")
}

func TestDOCXExtractor_MissingDocumentPart(t *testing.T) {
	e := &DOCXExtractor{}

	content := buildDOCX(t, map[string]string{"word/other.xml": "<x/>"})
	_, err := e.Extract(context.Background(), content)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word/document.xml")
}

func TestDOCXExtractor_NotAZip(t *testing.T) {
	e := &DOCXExtractor{}

	_, err := e.Extract(context.Background(), []byte("not a zip archive"))
	require.Error(t, err)
}

func buildDOCX(t *testing.T, parts map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, body := range parts {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}
