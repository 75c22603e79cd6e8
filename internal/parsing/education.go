package parsing

import (
	"strings"

	"github.com/truthtalent/cv-parser/internal/types"
)

var educationLabels = []string{"éducation", "education", "formation", "formations", "parcours académique"}

// degreeEntry maps a keyword found in the text to a canonical degree name.
// Matching follows table-definition order; the first hit wins.
type degreeEntry struct {
	keyword string
	name    string
}

var degreeTable = []degreeEntry{
	{"bac", "Baccalauréat"},
	{"bts", "BTS"},
	{"dut", "DUT"},
	{"licence", "Licence"},
	{"master", "Master"},
	{"mba", "MBA"},
	{"doctorat", "Doctorat"},
	{"phd", "Doctorat"},
	{"ingénieur", "Diplôme d'Ingénieur"},
}

var institutionWords = []string{"université", "école", "institut", "faculté", "polytechnique"}

// ExtractEducation locates the education section (falling back to the full
// text) and pulls the degree, institution and raw detail lines from it.
func (p *Parser) ExtractEducation(text string) types.EducationSummary {
	summary := types.EducationSummary{Details: []string{}}

	section, ok := findSection(text, educationLabels)
	if !ok {
		section = splitLines(text)
	}
	sectionText := strings.ToLower(strings.Join(section, "\n"))

	for _, entry := range p.degrees {
		if strings.Contains(sectionText, entry.keyword) {
			summary.Degree = entry.name
			break
		}
	}

	for _, line := range section {
		lower := strings.ToLower(line)
		for _, w := range institutionWords {
			if strings.Contains(lower, w) {
				summary.Institution = line
				break
			}
		}
		if summary.Institution != "" {
			break
		}
	}

	for _, line := range section {
		if len(line) > 10 && !isSectionHeader(line) {
			summary.Details = append(summary.Details, line)
		}
	}

	return summary
}
