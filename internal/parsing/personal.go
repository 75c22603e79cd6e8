package parsing

import (
	"regexp"
	"strings"

	"github.com/truthtalent/cv-parser/internal/types"
)

// Each contact field is extracted by an ordered chain of matchers evaluated
// until the first success, so pattern priority stays auditable per-pattern.

const emailAtom = `[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`

var emailMatchers = []*regexp.Regexp{
	regexp.MustCompile(`\b` + emailAtom + `\b`),
	regexp.MustCompile(`(?i)e-?mail\s*:?\s*(` + emailAtom + `)`),
	regexp.MustCompile(`(?i)contact\s*:?\s*(` + emailAtom + `)`),
}

var phoneMatchers = []*regexp.Regexp{
	// French national or international: +33 6 12 34 56 78, 06.12.34.56.78
	regexp.MustCompile(`(?:\+33\s?|0)[1-9](?:[\s.-]?\d{2}){4}`),
	// North-American grouped: (555) 123-4567
	regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}`),
	// Generic 10 digits in pairs
	regexp.MustCompile(`\d{2}[.\s-]?\d{2}[.\s-]?\d{2}[.\s-]?\d{2}[.\s-]?\d{2}`),
	// Labeled fallback
	regexp.MustCompile(`(?i)(?:t[ée]l(?:[ée]phone)?|phone)\s*[.:]?\s*([+\d][\d\s().-]{8,})`),
}

var linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/(?:in|company)/[A-Za-z0-9_-]+`)

var phoneDigitsRe = regexp.MustCompile(`[^\d+]`)

// nameHeaderWords disqualify a line from being a candidate name.
var nameHeaderWords = []string{
	"cv", "curriculum", "vitae", "resume", "résumé",
	"experience", "expérience", "formation", "education", "éducation",
	"skills", "compétences", "contact", "email", "e-mail", "tel",
	"téléphone", "phone", "adresse", "address", "profil", "profile",
	"summary", "objectif", "objective", "langues", "languages",
	"développeur", "developer", "ingénieur", "engineer", "consultant",
}

// nameTitles are stripped before splitting a full name.
var nameTitles = []string{"m.", "mme", "mlle", "mr", "mrs", "ms", "dr", "prof", "ing."}

var (
	digitRe     = regexp.MustCompile(`\d`)
	tenDigitsRe = regexp.MustCompile(`\d{10}`)
	labeledName = regexp.MustCompile(`(?i)(?:nom complet|full name|name|nom|pr[ée]nom)\s*:\s*([\p{L}' -]{2,49})`)
)

// ExtractPersonalInfo runs the contact-field matcher chains over normalized text.
func (p *Parser) ExtractPersonalInfo(text string) types.PersonalInfo {
	info := types.PersonalInfo{}

	for i, re := range emailMatchers {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if i == 0 {
			info.Email = m[0]
		} else {
			info.Email = m[1]
		}
		break
	}

	for i, re := range phoneMatchers {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := m[0]
		if i == len(phoneMatchers)-1 {
			raw = m[1]
		}
		if phone := normalizePhone(raw); phone != "" {
			info.Phone = phone
			break
		}
	}

	if m := linkedinRe.FindString(text); m != "" {
		if !strings.HasPrefix(strings.ToLower(m), "http") {
			m = "https://" + m
		}
		info.LinkedIn = m
	}

	for _, city := range p.cities {
		if p.cityPatterns[city].MatchString(text) {
			info.Location = city
			break
		}
	}

	info.Name = extractName(text)
	info.FirstName, info.LastName = SplitName(info.Name)

	return info
}

// normalizePhone strips everything but digits and a leading plus, and discards
// candidates with fewer than 10 digits.
func normalizePhone(raw string) string {
	cleaned := phoneDigitsRe.ReplaceAllString(raw, "")
	if i := strings.LastIndex(cleaned, "+"); i > 0 {
		cleaned = strings.ReplaceAll(cleaned, "+", "")
	}
	digits := strings.TrimPrefix(cleaned, "+")
	if len(digits) < 10 {
		return ""
	}
	return cleaned
}

// extractName applies the three-tier name fallback:
// a plausible name line near the top, then an explicit label, then the first
// acceptable line. Failing all three it returns the placeholder.
func extractName(text string) string {
	lines := splitLines(text)

	// Tier 1: a 2-4 word line in the first 10 lines with no digits or noise.
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range lines[:limit] {
		if looksLikeName(line) {
			return line
		}
	}

	// Tier 2: explicit "Nom:" / "Full Name:" labels.
	if m := labeledName.FindStringSubmatch(text); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			return name
		}
	}

	// Tier 3: first line of acceptable shape.
	for _, line := range lines {
		if len(line) >= 3 && len(line) <= 40 &&
			!strings.Contains(line, "@") &&
			!tenDigitsRe.MatchString(line) &&
			!containsHeaderWord(line) {
			return line
		}
	}

	return types.PlaceholderName
}

func looksLikeName(line string) bool {
	if len(line) < 3 || len(line) >= 50 {
		return false
	}
	if strings.Contains(line, "@") || strings.Contains(line, ":") || digitRe.MatchString(line) {
		return false
	}
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	return !containsHeaderWord(line)
}

func containsHeaderWord(line string) bool {
	lower := strings.ToLower(line)
	for _, w := range nameHeaderWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// SplitName separates a full name into first and last components, stripping
// any leading title. The placeholder sentinel splits to two empty strings.
func SplitName(name string) (first, last string) {
	if name == "" || name == types.PlaceholderName {
		return "", ""
	}

	words := strings.Fields(name)
	for len(words) > 0 && isTitle(words[0]) {
		words = words[1:]
	}

	switch len(words) {
	case 0:
		return "", ""
	case 1:
		return words[0], ""
	case 2:
		return words[0], words[1]
	default:
		return words[0], strings.Join(words[1:], " ")
	}
}

func isTitle(word string) bool {
	lower := strings.ToLower(strings.TrimSuffix(word, "."))
	for _, t := range nameTitles {
		if lower == strings.TrimSuffix(t, ".") {
			return true
		}
	}
	return false
}
