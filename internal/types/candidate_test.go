package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCandidateRecord_CollectionsInitialized(t *testing.T) {
	record := NewCandidateRecord()

	assert.NotNil(t, record.Skills)
	assert.NotNil(t, record.SkillsByCategory)
	assert.NotNil(t, record.Experience.Positions)
	assert.NotNil(t, record.Education.Details)
	assert.NotNil(t, record.Languages)
	assert.Equal(t, LevelIntern, record.Experience.Level)
}

func TestNewCandidateRecord_JSONHasNoNullColumns(t *testing.T) {
	record := NewCandidateRecord()

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"skills", "skills_by_category", "languages"} {
		assert.NotNil(t, decoded[key], "column %s must not be null", key)
	}
}

func TestPersonalInfo_HasName(t *testing.T) {
	assert.False(t, PersonalInfo{}.HasName())
	assert.False(t, PersonalInfo{Name: PlaceholderName}.HasName())
	assert.True(t, PersonalInfo{Name: "Jean Dupont"}.HasName())
}

func TestExperienceLevels(t *testing.T) {
	assert.Equal(t, ExperienceLevel("intern"), LevelIntern)
	assert.Equal(t, ExperienceLevel("junior"), LevelJunior)
	assert.Equal(t, ExperienceLevel("mid-level"), LevelMid)
	assert.Equal(t, ExperienceLevel("senior"), LevelSenior)
}
