package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/truthtalent/cv-parser/internal/ingestion"
)

// ErrMissingFile indicates the multipart form carried no file part.
type ErrMissingFile struct{}

func (e *ErrMissingFile) Error() string {
	return "missing file"
}

// ErrEmptyFile indicates an uploaded file with zero bytes.
type ErrEmptyFile struct {
	Filename string
}

func (e *ErrEmptyFile) Error() string {
	return fmt.Sprintf("empty file: %s", e.Filename)
}

// ErrFileTooLarge indicates the upload exceeded the configured limit.
type ErrFileTooLarge struct {
	Size int64
	Max  int64
}

func (e *ErrFileTooLarge) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("file too large (max %d bytes)", e.Max)
	}
	return fmt.Sprintf("file too large: %d bytes (max %d)", e.Size, e.Max)
}

// ErrStoreUnavailable indicates the endpoint needs the database but none is
// configured.
type ErrStoreUnavailable struct{}

func (e *ErrStoreUnavailable) Error() string {
	return "candidate store is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var unsupported *ingestion.UnsupportedFormatError
	switch {
	case errors.As(err, new(*ErrMissingFile)),
		errors.As(err, new(*ErrEmptyFile)),
		errors.As(err, new(*ErrFileTooLarge)):
		return http.StatusBadRequest
	case errors.As(err, &unsupported):
		return http.StatusUnsupportedMediaType
	case errors.As(err, new(*ErrStoreUnavailable)):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
