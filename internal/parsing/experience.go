package parsing

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/truthtalent/cv-parser/internal/types"
)

const (
	maxPositions     = 10
	maxPositionField = 100
	seniorYears      = 7
	midLevelYears    = 3
)

// yearsMatchers are evaluated in order; the first successful integer parse wins.
var yearsMatchers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*(?:ans|années?|years?)\b`),
	regexp.MustCompile(`(?i)exp[ée]rience\s*:?\s*(\d{1,2})\s*(?:ans|années?|years?)`),
	regexp.MustCompile(`(?i)(\d{1,2})\s*\+\s*(?:ans|years?)`),
}

// levelKeywords are scanned in seniority order; the first hit anywhere in the
// text decides the level.
var levelKeywords = []struct {
	level    types.ExperienceLevel
	keywords []string
}{
	{types.LevelSenior, []string{"senior", "lead", "principal", "expert", "architecte"}},
	{types.LevelMid, []string{"confirmé", "confirme", "intermédiaire", "mid-level", "expérimenté"}},
	{types.LevelJunior, []string{"junior", "débutant"}},
	{types.LevelIntern, []string{"stagiaire", "alternant", "apprenti", "intern", "internship"}},
}

var dateRangeMatchers = []*regexp.Regexp{
	// 2020 - 2023, 2021 – présent
	regexp.MustCompile(`(?i)\b(19|20)\d{2}\s*[-–—]\s*(?:(19|20)\d{2}|pr[ée]sent|present|aujourd'hui)\b`),
	// Janvier 2020 - Décembre 2023, Jan 2020 - Present
	regexp.MustCompile(`(?i)\b(?:janv|févr|fevr|mars|avr|mai|juin|juil|août|aout|sept|oct|nov|déc|dec|jan|feb|apr|may|jun|jul|aug)[\p{L}.]*\s+(19|20)\d{2}\s*[-–—]\s*(?:(?:janv|févr|fevr|mars|avr|mai|juin|juil|août|aout|sept|oct|nov|déc|dec|jan|feb|apr|may|jun|jul|aug)[\p{L}.]*\s+(19|20)\d{2}|pr[ée]sent|present|aujourd'hui)\b`),
}

var companyDelimiters = []string{" chez ", " at ", "|", " - ", "•", "·", ":", ";"}

// ExtractExperience infers years, seniority level and position history.
func (p *Parser) ExtractExperience(text string) types.ExperienceSummary {
	summary := types.ExperienceSummary{Positions: []types.Position{}}

	for _, re := range yearsMatchers {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if years, err := strconv.Atoi(m[1]); err == nil {
			summary.Years = years
			break
		}
	}

	summary.Level = detectLevel(text, summary.Years)
	summary.Positions = extractPositions(text)

	return summary
}

func detectLevel(text string, years int) types.ExperienceLevel {
	lower := strings.ToLower(text)
	for _, entry := range levelKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.level
			}
		}
	}

	switch {
	case years >= seniorYears:
		return types.LevelSenior
	case years >= midLevelYears:
		return types.LevelMid
	case years > 0:
		return types.LevelJunior
	default:
		return types.LevelIntern
	}
}

// extractPositions scans lines for date ranges; each matching line yields one
// position with the date substring stripped from the title.
func extractPositions(text string) []types.Position {
	positions := []types.Position{}
	for _, line := range splitLines(text) {
		var period string
		for _, re := range dateRangeMatchers {
			if m := re.FindString(line); m != "" {
				period = m
				break
			}
		}
		if period == "" {
			continue
		}

		rest := strings.TrimSpace(strings.Replace(line, period, "", 1))
		rest = strings.Trim(rest, "()[]-–—•·,;: ")
		title, company := splitTitleCompany(rest)

		positions = append(positions, types.Position{
			Period:  period,
			Title:   truncate(title, maxPositionField),
			Company: truncate(company, maxPositionField),
		})
		if len(positions) == maxPositions {
			break
		}
	}
	return positions
}

func splitTitleCompany(line string) (title, company string) {
	lower := strings.ToLower(line)
	for _, delim := range companyDelimiters {
		idx := strings.Index(lower, strings.ToLower(delim))
		if idx <= 0 {
			continue
		}
		title = strings.TrimSpace(line[:idx])
		company = strings.Trim(strings.TrimSpace(line[idx+len(delim):]), "()•·-,;: ")
		return title, company
	}
	return strings.TrimSpace(line), ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
