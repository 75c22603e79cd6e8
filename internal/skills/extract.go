package skills

import (
	"regexp"
	"strings"
)

// MaxSkills bounds the flat skill list so the persisted payload stays small.
const MaxSkills = 25

var skillsBlockRe = regexp.MustCompile(`(?i)(?:comp[ée]tences|skills|technologies)\s*:?\s*\n?((?:[^\n]+\n?){1,10})`)

// Extractor performs case-insensitive word-boundary searches for every skill
// in its dictionary. It is immutable after construction and safe for
// concurrent use.
type Extractor struct {
	categories []Category
	patterns   map[string]*regexp.Regexp
	max        int
}

// NewExtractor compiles match patterns for the given dictionary. A nil or
// empty dictionary falls back to DefaultDictionary.
func NewExtractor(dictionary []Category) *Extractor {
	if len(dictionary) == 0 {
		dictionary = DefaultDictionary()
	}
	e := &Extractor{
		categories: dictionary,
		patterns:   make(map[string]*regexp.Regexp),
		max:        MaxSkills,
	}
	for _, cat := range dictionary {
		for _, skill := range cat.Skills {
			if _, ok := e.patterns[skill]; !ok {
				e.patterns[skill] = compileSkillPattern(skill)
			}
		}
	}
	return e
}

// compileSkillPattern builds a word-boundary pattern that also works for
// names ending in symbols (C#, C++, Node.js).
func compileSkillPattern(skill string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(skill)
	lead := `(?:^|[^a-zA-Z0-9_])`
	trail := `(?:$|[^a-zA-Z0-9_+#])`
	return regexp.MustCompile(`(?i)` + lead + quoted + trail)
}

// Extract returns the dictionary skills present in text, in dictionary order,
// capped at MaxSkills. A labeled skills block, when present, is scanned as
// well and merged without duplication.
func (e *Extractor) Extract(text string) []string {
	scopes := []string{text}
	if m := skillsBlockRe.FindStringSubmatch(text); m != nil {
		scopes = append(scopes, m[1])
	}

	found := []string{}
	seen := map[string]bool{}
	for _, cat := range e.categories {
		for _, skill := range cat.Skills {
			if seen[skill] {
				continue
			}
			for _, scope := range scopes {
				if e.patterns[skill].MatchString(scope) {
					seen[skill] = true
					found = append(found, skill)
					break
				}
			}
			if len(found) == e.max {
				return found
			}
		}
	}
	return found
}

// Categorize groups an already-extracted flat skill list back by dictionary
// category. Categories with no hits are omitted.
func (e *Extractor) Categorize(found []string) map[string][]string {
	member := map[string]bool{}
	for _, s := range found {
		member[s] = true
	}

	grouped := map[string][]string{}
	for _, cat := range e.categories {
		for _, skill := range cat.Skills {
			if member[skill] {
				grouped[cat.Name] = append(grouped[cat.Name], skill)
			}
		}
	}
	return grouped
}

// Contains reports whether name is a dictionary member (exact match).
func (e *Extractor) Contains(name string) bool {
	_, ok := e.patterns[name]
	return ok
}

// Normalize maps a free-form mention to its canonical dictionary spelling, or
// returns the trimmed input unchanged when unknown.
func (e *Extractor) Normalize(name string) string {
	trimmed := strings.TrimSpace(name)
	for skill := range e.patterns {
		if strings.EqualFold(skill, trimmed) {
			return skill
		}
	}
	return trimmed
}
