// Package parsing turns normalized CV text into a structured candidate record
// using regular-expression extraction with ordered fallback chains.
package parsing

import (
	"regexp"
	"strings"
	"time"

	"github.com/truthtalent/cv-parser/internal/scoring"
	"github.com/truthtalent/cv-parser/internal/skills"
	"github.com/truthtalent/cv-parser/internal/types"
)

const (
	// MinTextLength is the default threshold below which extraction is refused.
	MinTextLength = 20

	parserVersion = "2.0"
)

// defaultCities is the static location lookup list.
var defaultCities = []string{
	"Paris", "Lyon", "Marseille", "Toulouse", "Nice", "Nantes",
	"Strasbourg", "Montpellier", "Bordeaux", "Lille", "Rennes", "Grenoble",
}

// Parser holds the read-only dictionaries and collaborators needed for a full
// extraction run. It is immutable after construction and safe for concurrent
// use from any number of goroutines.
type Parser struct {
	minTextLength int
	skills        *skills.Extractor
	cities        []string
	cityPatterns  map[string]*regexp.Regexp
	degrees       []degreeEntry
	languages     []string
	now           func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithMinTextLength overrides the insufficient-text threshold.
func WithMinTextLength(n int) Option {
	return func(p *Parser) { p.minTextLength = n }
}

// WithSkillExtractor replaces the default skill dictionary.
func WithSkillExtractor(e *skills.Extractor) Option {
	return func(p *Parser) { p.skills = e }
}

// WithCities replaces the static city list.
func WithCities(cities []string) Option {
	return func(p *Parser) { p.cities = cities }
}

// WithClock injects the timestamp source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// NewParser builds a Parser with the default dictionaries.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		minTextLength: MinTextLength,
		skills:        skills.NewExtractor(nil),
		cities:        defaultCities,
		degrees:       degreeTable,
		languages:     knownLanguages,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.cityPatterns = make(map[string]*regexp.Regexp, len(p.cities))
	for _, city := range p.cities {
		p.cityPatterns[city] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(city) + `\b`)
	}
	return p
}

// ExtractCandidateData runs every extractor over normalized text and
// assembles the result into a fully-populated CandidateRecord. The only error
// condition is input below the minimum length; every other miss produces an
// empty field and a lower confidence score.
func (p *Parser) ExtractCandidateData(text string) (*types.CandidateRecord, error) {
	return p.extract(text, "")
}

// ExtractCandidateDataFrom is ExtractCandidateData with a source label
// (typically the uploaded filename) recorded in the metadata.
func (p *Parser) ExtractCandidateDataFrom(text, source string) (*types.CandidateRecord, error) {
	return p.extract(text, source)
}

func (p *Parser) extract(text, source string) (*types.CandidateRecord, error) {
	text = Normalize(text)
	if len(text) < p.minTextLength {
		return nil, &InsufficientTextError{Length: len(text), Min: p.minTextLength}
	}

	record := types.NewCandidateRecord()

	record.Personal = p.ExtractPersonalInfo(text)
	record.Skills = p.skills.Extract(text)
	record.SkillsByCategory = p.skills.Categorize(record.Skills)
	record.Experience = p.ExtractExperience(text)
	record.Education = p.ExtractEducation(text)
	record.Languages = p.ExtractLanguages(text)
	record.Summary = p.ExtractSummary(text)
	record.ConfidenceScore = scoring.Confidence(record.Personal, record.Skills, record.Experience)

	record.Metadata = types.Metadata{
		Source:        source,
		CharCount:     len(text),
		WordCount:     len(strings.Fields(text)),
		ProcessedAt:   p.now(),
		ParserVersion: parserVersion,
	}

	return record, nil
}
