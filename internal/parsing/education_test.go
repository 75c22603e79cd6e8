package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEducation_Degree(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"master", "Formation\nMaster Informatique, Université de Lyon", "Master"},
		{"licence", "Éducation\nLicence de mathématiques", "Licence"},
		{"bts", "BTS Informatique de gestion", "BTS"},
		{"phd maps to doctorat", "PhD in Computer Science", "Doctorat"},
		{"engineer diploma", "Diplôme d'ingénieur en informatique", "Diplôme d'Ingénieur"},
		{"none", "Développeur web passionné", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := p.ExtractEducation(tt.input)
			assert.Equal(t, tt.want, summary.Degree)
		})
	}
}

func TestExtractEducation_FirstTableHitWins(t *testing.T) {
	p := NewParser()

	// Both "bac" and "master" appear; the table is ordered so "bac" wins.
	summary := p.ExtractEducation("Formation\nBac S puis Master Informatique")
	assert.Equal(t, "Baccalauréat", summary.Degree)
}

func TestExtractEducation_Institution(t *testing.T) {
	p := NewParser()

	summary := p.ExtractEducation("Formation\nMaster Informatique\nUniversité de Bordeaux\n2015 - 2017")
	assert.Equal(t, "Université de Bordeaux", summary.Institution)

	summary = p.ExtractEducation("École Polytechnique de Paris")
	assert.Equal(t, "École Polytechnique de Paris", summary.Institution)
}

func TestExtractEducation_SectionScoping(t *testing.T) {
	p := NewParser()

	text := "Expérience\n2020 - 2023 Développeur chez Acme\n" +
		"Formation\nMaster Informatique\nUniversité de Lyon\n" +
		"Langues\nAnglais courant"

	summary := p.ExtractEducation(text)
	assert.Equal(t, "Master", summary.Degree)
	assert.Equal(t, "Université de Lyon", summary.Institution)
	// Detail lines come from the education section only.
	for _, d := range summary.Details {
		assert.NotContains(t, d, "Acme")
		assert.NotContains(t, d, "Anglais")
	}
}

func TestExtractEducation_AlwaysPopulated(t *testing.T) {
	p := NewParser()
	summary := p.ExtractEducation("")

	assert.Empty(t, summary.Degree)
	assert.Empty(t, summary.Institution)
	assert.NotNil(t, summary.Details)
}
