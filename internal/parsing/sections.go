package parsing

import (
	"regexp"
	"strings"
)

// sectionHeaders are the labels that delimit the classic CV sections, used
// both to locate a wanted section and to know where it ends.
var sectionHeaders = []string{
	"expérience", "expériences", "experience", "experiences",
	"formation", "formations", "éducation", "education",
	"parcours académique",
	"compétences", "competences", "skills", "technologies",
	"langues", "languages",
	"projets", "projects",
	"certifications",
	"résumé", "profil", "profile", "summary",
	"objectif", "objective",
	"contact", "coordonnées",
	"centres d'intérêt", "loisirs", "interests",
}

var headerLineRe = regexp.MustCompile(`^[\p{L}' éèêëàâîïôûüç-]{2,40}:?$`)

// isSectionHeader reports whether a line looks like a section heading: short,
// free of digits, and starting with a known section label.
func isSectionHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !headerLineRe.MatchString(trimmed) {
		return false
	}
	lower := strings.ToLower(strings.TrimSuffix(trimmed, ":"))
	for _, h := range sectionHeaders {
		if lower == h || strings.HasPrefix(lower, h+" ") {
			return true
		}
	}
	return false
}

// findSection returns the lines between a header matching one of labels and
// the next section header (exclusive). The second return value is false when
// no matching header exists, in which case callers fall back to the full text.
func findSection(text string, labels []string) ([]string, bool) {
	lines := splitLines(text)
	start := -1
	remainder := ""
	for i, line := range lines {
		lower := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(line), ":"))
		for _, label := range labels {
			if lower == label || strings.HasPrefix(lower, label+" ") || strings.HasPrefix(lower, label+":") {
				start = i + 1
				// Inline form "Langues: Anglais, Français" keeps the content
				// after the colon as part of the section.
				if idx := strings.Index(line, ":"); idx >= 0 {
					remainder = strings.TrimSpace(line[idx+1:])
				}
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	section := []string{}
	if remainder != "" {
		section = append(section, remainder)
	}
	for _, line := range lines[start:] {
		if isSectionHeader(line) {
			break
		}
		section = append(section, line)
	}
	return section, true
}
