package parsing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truthtalent/cv-parser/internal/skills"
	"github.com/truthtalent/cv-parser/internal/types"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
}

func TestExtractCandidateData_FullExample(t *testing.T) {
	p := NewParser(WithClock(fixedClock))

	text := "Jean Dupont\njean.dupont@example.com\n0612345678\n5 ans d'expérience en Python et Docker"

	record, err := p.ExtractCandidateData(text)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "Jean Dupont", record.Personal.Name)
	assert.Equal(t, "Jean", record.Personal.FirstName)
	assert.Equal(t, "Dupont", record.Personal.LastName)
	assert.Equal(t, "jean.dupont@example.com", record.Personal.Email)
	assert.Equal(t, "0612345678", record.Personal.Phone)

	assert.Contains(t, record.Skills, "Python")
	assert.Contains(t, record.Skills, "Docker")

	assert.Equal(t, 5, record.Experience.Years)
	assert.Equal(t, types.LevelMid, record.Experience.Level)

	assert.Greater(t, record.ConfidenceScore, 0.0)
	assert.LessOrEqual(t, record.ConfidenceScore, 1.0)
}

func TestExtractCandidateData_InsufficientText(t *testing.T) {
	p := NewParser()

	record, err := p.ExtractCandidateData("short text")
	assert.Nil(t, record)
	require.Error(t, err)
	assert.True(t, IsInsufficientText(err))

	var ie *InsufficientTextError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, 10, ie.Length)
	assert.Equal(t, MinTextLength, ie.Min)
}

func TestExtractCandidateData_SeniorNoContact(t *testing.T) {
	p := NewParser()

	record, err := p.ExtractCandidateData("Senior Developer, 10 ans d'expérience")
	require.NoError(t, err)

	assert.Equal(t, types.LevelSenior, record.Experience.Level)
	assert.Equal(t, 10, record.Experience.Years)

	// No contact info: only the experience credit counts.
	assert.Empty(t, record.Personal.Email)
	assert.Empty(t, record.Personal.Phone)
	assert.False(t, record.Personal.HasName())
	assert.InDelta(t, 0.10, record.ConfidenceScore, 0.001)
}

func TestExtractCandidateData_SchemelessLinkedIn(t *testing.T) {
	p := NewParser()

	record, err := p.ExtractCandidateData("Contact professionnel : linkedin.com/in/johndoe")
	require.NoError(t, err)
	assert.Equal(t, "https://linkedin.com/in/johndoe", record.Personal.LinkedIn)
}

func TestExtractCandidateData_Idempotent(t *testing.T) {
	p := NewParser(WithClock(fixedClock))

	text := "Marie Martin\nmarie.martin@example.fr\nTel: 06 98 76 54 32\n" +
		"Développeuse senior, 8 ans d'expérience\n" +
		"Compétences: Python, React, PostgreSQL, AWS\n" +
		"Langues\nFrançais natif, Anglais courant\n" +
		"Formation\nMaster Informatique, Université de Lyon"

	first, err := p.ExtractCandidateData(text)
	require.NoError(t, err)
	second, err := p.ExtractCandidateData(text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractCandidateData_Metadata(t *testing.T) {
	p := NewParser(WithClock(fixedClock))

	record, err := p.ExtractCandidateDataFrom("Jean Dupont\njean@example.com\nParis", "cv_jean.pdf")
	require.NoError(t, err)

	assert.Equal(t, "cv_jean.pdf", record.Metadata.Source)
	assert.Equal(t, fixedClock(), record.Metadata.ProcessedAt)
	assert.Equal(t, parserVersion, record.Metadata.ParserVersion)
	assert.Greater(t, record.Metadata.CharCount, 0)
	assert.Greater(t, record.Metadata.WordCount, 0)
}

func TestExtractCandidateData_NormalizesInput(t *testing.T) {
	p := NewParser()

	messy := "Jean   Dupont\r\n\r\n\r\njean.dupont@example.com\x00\n0612345678"
	record, err := p.ExtractCandidateData(messy)
	require.NoError(t, err)

	assert.Equal(t, "Jean Dupont", record.Personal.Name)
	assert.Equal(t, "jean.dupont@example.com", record.Personal.Email)
}

func TestExtractCandidateData_AllCollectionsNonNil(t *testing.T) {
	p := NewParser()

	record, err := p.ExtractCandidateData("Texte quelconque sans aucune information utile ici")
	require.NoError(t, err)

	assert.NotNil(t, record.Skills)
	assert.NotNil(t, record.SkillsByCategory)
	assert.NotNil(t, record.Experience.Positions)
	assert.NotNil(t, record.Education.Details)
	assert.NotNil(t, record.Languages)
}

func TestExtractCandidateData_SkillCapInvariant(t *testing.T) {
	p := NewParser()

	// A text mentioning far more dictionary skills than the cap.
	text := "Compétences: Python Java JavaScript TypeScript Go Rust PHP Ruby C# C++ " +
		"React Angular Vue Svelte HTML CSS Sass Docker Kubernetes Terraform " +
		"Ansible Jenkins Git MySQL PostgreSQL MongoDB Redis Elasticsearch " +
		"Kafka Spark AWS Azure GCP Swift Kotlin Flutter"

	record, err := p.ExtractCandidateData(text)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(record.Skills), skills.MaxSkills)

	extractor := skills.NewExtractor(nil)
	for _, s := range record.Skills {
		assert.True(t, extractor.Contains(s), "non-dictionary skill %q", s)
	}
}

func TestExtractPersonalInfo_DefaultSafety(t *testing.T) {
	p := NewParser()

	// Empty input never reaches the full pipeline, but the extractors still
	// answer with safe defaults when called directly.
	info := p.ExtractPersonalInfo("")
	assert.Equal(t, types.PlaceholderName, info.Name)
	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
}

func TestParser_ConcurrentUse(t *testing.T) {
	p := NewParser(WithClock(fixedClock))
	text := "Jean Dupont\njean@example.com\n5 ans d'expérience en Python"

	done := make(chan *types.CandidateRecord, 8)
	for i := 0; i < 8; i++ {
		go func() {
			record, err := p.ExtractCandidateData(text)
			assert.NoError(t, err)
			done <- record
		}()
	}

	first := <-done
	for i := 1; i < 8; i++ {
		assert.Equal(t, first, <-done)
	}
}
