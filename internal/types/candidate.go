// Package types provides type definitions for structured candidate data used throughout the CV parser.
package types

import "time"

// PlaceholderName is the sentinel value used when no candidate name could be
// detected. Downstream scoring treats it as "not found".
const PlaceholderName = "Candidat"

// ExperienceLevel classifies a candidate's seniority.
type ExperienceLevel string

const (
	LevelIntern ExperienceLevel = "intern"
	LevelJunior ExperienceLevel = "junior"
	LevelMid    ExperienceLevel = "mid-level"
	LevelSenior ExperienceLevel = "senior"
)

// PersonalInfo holds contact and identity fields extracted from a CV.
// Every field is either a validated match or the empty string, never absent.
type PersonalInfo struct {
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
}

// HasName reports whether a real name was detected (not the placeholder).
func (p PersonalInfo) HasName() bool {
	return p.Name != "" && p.Name != PlaceholderName
}

// Position is a single professional experience entry.
type Position struct {
	Period  string `json:"period"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

// ExperienceSummary aggregates what could be inferred about professional experience.
type ExperienceSummary struct {
	Years     int             `json:"years"`
	Level     ExperienceLevel `json:"level"`
	Positions []Position      `json:"positions"`
}

// EducationSummary aggregates what could be inferred about education.
type EducationSummary struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Details     []string `json:"details"`
}

// Metadata records processing context for a parsed CV.
type Metadata struct {
	Source        string    `json:"source"`
	CharCount     int       `json:"char_count"`
	WordCount     int       `json:"word_count"`
	ProcessedAt   time.Time `json:"processed_at"`
	ParserVersion string    `json:"parser_version"`
}

// CandidateRecord is the assembled output of a full extraction run: the unit
// handed to the record store. All fields are always populated (empty string,
// zero, or empty slice) because the store schema requires every column.
type CandidateRecord struct {
	Personal         PersonalInfo        `json:"personal_info"`
	Skills           []string            `json:"skills"`
	SkillsByCategory map[string][]string `json:"skills_by_category"`
	Experience       ExperienceSummary   `json:"experience"`
	Education        EducationSummary    `json:"education"`
	Languages        []string            `json:"languages"`
	Summary          string              `json:"summary"`
	ConfidenceScore  float64             `json:"confidence_score"`
	Metadata         Metadata            `json:"metadata"`
}

// NewCandidateRecord returns a record with every collection initialized so the
// JSON form never contains null columns.
func NewCandidateRecord() *CandidateRecord {
	return &CandidateRecord{
		Skills:           []string{},
		SkillsByCategory: map[string][]string{},
		Experience: ExperienceSummary{
			Level:     LevelIntern,
			Positions: []Position{},
		},
		Education: EducationSummary{
			Details: []string{},
		},
		Languages: []string{},
	}
}
