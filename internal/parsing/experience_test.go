package parsing

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truthtalent/cv-parser/internal/types"
)

func TestExtractExperience_Years(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"french ans", "5 ans d'expérience en développement", 5},
		{"french annees", "12 années d'expérience", 12},
		{"english years", "8 years of experience", 8},
		{"plus form", "10+ ans en gestion de projet", 10},
		{"labeled", "Expérience: 6 ans", 6},
		{"no mention", "Développeur web à Paris", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := p.ExtractExperience(tt.input)
			assert.Equal(t, tt.want, summary.Years)
		})
	}
}

func TestDetectLevel_Keywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.ExperienceLevel
	}{
		{"senior keyword", "Senior Developer", types.LevelSenior},
		{"lead keyword", "Tech Lead, 2 ans", types.LevelSenior},
		{"architect keyword", "Architecte logiciel", types.LevelSenior},
		{"mid keyword", "Développeur confirmé", types.LevelMid},
		{"junior keyword", "Développeur junior", types.LevelJunior},
		{"intern keyword", "Stagiaire développement", types.LevelIntern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectLevel(tt.input, 0))
		})
	}
}

func TestDetectLevel_KeywordWinsOverYears(t *testing.T) {
	// A keyword match takes priority over the year thresholds.
	assert.Equal(t, types.LevelJunior, detectLevel("développeur junior", 12))
}

func TestDetectLevel_YearThresholds(t *testing.T) {
	tests := []struct {
		years int
		want  types.ExperienceLevel
	}{
		{0, types.LevelIntern},
		{1, types.LevelJunior},
		{2, types.LevelJunior},
		{3, types.LevelMid},
		{6, types.LevelMid},
		{7, types.LevelSenior},
		{15, types.LevelSenior},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, detectLevel("no keywords here", tt.years), "years=%d", tt.years)
	}
}

func TestExtractPositions(t *testing.T) {
	text := "Expérience\n" +
		"2020 - 2023 Développeur Backend chez Acme\n" +
		"Jan 2018 - Dec 2019 Ingénieur Logiciel | TechCorp\n" +
		"2016 - 2018 Consultant\n" +
		"Ligne sans dates ignorée"

	positions := extractPositions(text)
	require.Len(t, positions, 3)

	assert.Equal(t, "2020 - 2023", positions[0].Period)
	assert.Equal(t, "Développeur Backend", positions[0].Title)
	assert.Equal(t, "Acme", positions[0].Company)

	assert.Equal(t, "Ingénieur Logiciel", positions[1].Title)
	assert.Equal(t, "TechCorp", positions[1].Company)

	assert.Equal(t, "Consultant", positions[2].Title)
	assert.Empty(t, positions[2].Company)
}

func TestExtractPositions_PresentRange(t *testing.T) {
	positions := extractPositions("2021 – présent Data Engineer chez DataCo")
	require.Len(t, positions, 1)
	assert.Equal(t, "Data Engineer", positions[0].Title)
	assert.Equal(t, "DataCo", positions[0].Company)
}

func TestExtractPositions_CapsAtMax(t *testing.T) {
	text := ""
	for i := 0; i < 15; i++ {
		text += "2010 - 2011 Développeur chez Acme\n"
	}
	positions := extractPositions(text)
	assert.Len(t, positions, maxPositions)
}

func TestTruncate_RuneBoundary(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 100))
	assert.Len(t, truncate(strings.Repeat("a", 150), 100), 100)

	// A two-byte rune straddling the cap must not be split.
	straddle := strings.Repeat("a", 99) + "ée"
	got := truncate(straddle, 100)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", 99), got)
}

func TestExtractPositions_LongAccentedTitleStaysValidUTF8(t *testing.T) {
	title := "Ingénieur " + strings.Repeat("é", 60)
	positions := extractPositions("2020 - 2023 " + title)
	require.Len(t, positions, 1)
	assert.LessOrEqual(t, len(positions[0].Title), maxPositionField)
	assert.True(t, utf8.ValidString(positions[0].Title))
}

func TestSplitTitleCompany(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantTitle   string
		wantCompany string
	}{
		{"chez delimiter", "Développeur chez Acme", "Développeur", "Acme"},
		{"at delimiter", "Engineer at Google", "Engineer", "Google"},
		{"pipe delimiter", "Consultant | Capgemini", "Consultant", "Capgemini"},
		{"no delimiter", "Développeur Full Stack", "Développeur Full Stack", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, company := splitTitleCompany(tt.input)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantCompany, company)
		})
	}
}

func TestExtractExperience_AlwaysPopulated(t *testing.T) {
	p := NewParser()
	summary := p.ExtractExperience("")

	assert.Equal(t, 0, summary.Years)
	assert.Equal(t, types.LevelIntern, summary.Level)
	assert.NotNil(t, summary.Positions)
	assert.Empty(t, summary.Positions)
}
