package parsing

import (
	"regexp"
	"strings"
)

var languageLabels = []string{"langues", "languages"}

// knownLanguages is the static lookup list, in output order.
var knownLanguages = []string{
	"Français", "Anglais", "Espagnol", "Allemand", "Italien",
	"Portugais", "Arabe", "Chinois", "Russe", "Japonais",
}

// proficiencyLevels maps level keywords (FR and EN) to the canonical display
// form used in the "<Language> (<Level>)" rendering.
var proficiencyLevels = []struct {
	keyword string
	display string
}{
	{"bilingue", "Bilingue"},
	{"bilingual", "Bilingue"},
	{"natif", "Natif"},
	{"native", "Natif"},
	{"courant", "Courant"},
	{"fluent", "Courant"},
	{"avancé", "Avancé"},
	{"advanced", "Avancé"},
	{"intermédiaire", "Intermédiaire"},
	{"intermediate", "Intermédiaire"},
	{"débutant", "Débutant"},
	{"beginner", "Débutant"},
}

const proficiencyWindow = 3

var wordSplitRe = regexp.MustCompile(`[\s/,;:()\[\]|•·-]+`)

// ExtractLanguages finds the languages the text mentions and, when a
// proficiency keyword sits within a few words of the mention, attaches it.
// Results are deduplicated by their final formatted string.
func (p *Parser) ExtractLanguages(text string) []string {
	section, ok := findSection(text, languageLabels)
	scope := text
	if ok {
		scope = strings.Join(section, "\n")
	}

	words := wordSplitRe.Split(strings.ToLower(scope), -1)

	found := []string{}
	seen := map[string]bool{}
	for _, lang := range p.languages {
		idx := indexOfWord(words, strings.ToLower(lang))
		if idx < 0 {
			continue
		}

		entry := lang
		if level := levelNear(words, idx); level != "" {
			entry = lang + " (" + level + ")"
		}
		if !seen[entry] {
			seen[entry] = true
			found = append(found, entry)
		}
	}
	return found
}

func indexOfWord(words []string, want string) int {
	for i, w := range words {
		if w == want {
			return i
		}
	}
	return -1
}

// levelNear looks for a proficiency keyword within ±proficiencyWindow words,
// preferring the closest match and, at equal distance, the word after the
// language mention ("Anglais courant" over a level belonging to a neighbor).
func levelNear(words []string, idx int) string {
	for d := 1; d <= proficiencyWindow; d++ {
		for _, i := range []int{idx + d, idx - d} {
			if i < 0 || i >= len(words) {
				continue
			}
			for _, lvl := range proficiencyLevels {
				if words[i] == lvl.keyword {
					return lvl.display
				}
			}
		}
	}
	return ""
}
