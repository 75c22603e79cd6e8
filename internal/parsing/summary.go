package parsing

import (
	"regexp"
	"strings"
)

var summaryLabels = []string{
	"résumé", "resume", "summary", "profil", "profile",
	"objectif", "objective", "à propos", "about",
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

const (
	summaryMaxLines   = 3
	sentenceMinWords  = 6
	sentenceMaxWords  = 30
	summaryMinLineLen = 10
)

// ExtractSummary pulls a short free-text profile: the lines following a
// summary-style header, or failing that the first sentence of plausible length.
func (p *Parser) ExtractSummary(text string) string {
	lines := splitLines(text)

	for i, line := range lines {
		lower := strings.ToLower(line)
		matched := false
		for _, label := range summaryLabels {
			if strings.HasPrefix(lower, label) && len(line) < 30 {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		collected := []string{}
		for j := i + 1; j < len(lines) && len(collected) < summaryMaxLines; j++ {
			if len(lines[j]) <= summaryMinLineLen || isSectionHeader(lines[j]) {
				break
			}
			collected = append(collected, lines[j])
		}
		if len(collected) > 0 {
			return strings.Join(collected, " ")
		}
		break
	}

	// Fallback: first sentence of reasonable length.
	for _, sentence := range sentenceSplitRe.Split(text, -1) {
		sentence = strings.TrimSpace(strings.ReplaceAll(sentence, "\n", " "))
		n := len(strings.Fields(sentence))
		if n >= sentenceMinWords && n < sentenceMaxWords {
			return sentence
		}
	}
	return ""
}
