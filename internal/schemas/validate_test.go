package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truthtalent/cv-parser/internal/types"
)

func TestValidateCandidateRecord_Valid(t *testing.T) {
	record := types.NewCandidateRecord()
	record.Personal.Name = "Jean Dupont"
	record.Personal.Email = "jean.dupont@example.com"
	record.Skills = []string{"Python", "Docker"}
	record.Metadata.Source = "cv_jean.pdf"
	record.Metadata.ParserVersion = "2.0.0"

	assert.NoError(t, ValidateCandidateRecord(record))
}

func TestValidateCandidateRecord_FreshRecordValid(t *testing.T) {
	assert.NoError(t, ValidateCandidateRecord(types.NewCandidateRecord()))
}

func TestValidateCandidateRecord_Nil(t *testing.T) {
	assert.Error(t, ValidateCandidateRecord(nil))
}

func TestValidateCandidateRecord_TooManySkills(t *testing.T) {
	record := types.NewCandidateRecord()
	for i := 0; i < 30; i++ {
		record.Skills = append(record.Skills, "skill")
	}

	err := ValidateCandidateRecord(record)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Equal(t, "skills", ve.Errors[0].Field)
}

func TestValidateCandidateRecord_ConfidenceOutOfRange(t *testing.T) {
	record := types.NewCandidateRecord()
	record.ConfidenceScore = 1.5

	err := ValidateCandidateRecord(record)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, err.Error(), "confidence_score")
}

func TestValidateCandidateRecord_BadLevel(t *testing.T) {
	record := types.NewCandidateRecord()
	record.Experience.Level = "wizard"

	err := ValidateCandidateRecord(record)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "skills", Message: "too long"},
		{Field: "confidence_score", Message: "out of range"},
	}}

	msg := ve.Error()
	assert.Contains(t, msg, "1. skills")
	assert.Contains(t, msg, "2. confidence_score")
}
