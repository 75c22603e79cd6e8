// Package schemas validates assembled candidate records against the embedded
// JSON Schema the record store expects, so a malformed record is rejected
// before it reaches persistence.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/truthtalent/cv-parser/internal/types"
)

//go:embed candidate_record.schema.json
var candidateRecordSchema []byte

// ValidationError aggregates the field-level failures of a schema check.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("candidate record validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateCandidateRecord checks a record against the store schema. A nil
// return means the record is safe to persist.
func ValidateCandidateRecord(record *types.CandidateRecord) error {
	if record == nil {
		return fmt.Errorf("candidate record is nil")
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling candidate record: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(candidateRecordSchema),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("running schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
