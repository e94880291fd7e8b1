package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehat-jiwa/assessment-service/internal/models"
)

func TestGet_KnownInstruments(t *testing.T) {
	tests := []struct {
		id            string
		questionCount int
		scoringType   models.ScoringType
		answerMin     int
		answerMax     int
		optionCount   int
	}{
		{"dass42", 42, models.ScoringLikert, 0, 3, 4},
		{"gse", 10, models.ScoringLikert, 1, 4, 4},
		{"mhkq", 15, models.ScoringBoolean, 0, 1, 2},
		{"mscs", 12, models.ScoringLikert, 1, 7, 7},
		{"pdd", 12, models.ScoringLikert, 1, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			inst, err := Get(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.id, inst.ID)
			assert.Equal(t, tt.questionCount, inst.QuestionCount())
			assert.Equal(t, tt.scoringType, inst.ScoringType)
			assert.Equal(t, tt.answerMin, inst.AnswerMin)
			assert.Equal(t, tt.answerMax, inst.AnswerMax)
			for i, q := range inst.Questions {
				assert.Lenf(t, q.Options, tt.optionCount, "question %d", i)
				assert.NotEmptyf(t, q.Text, "question %d", i)
			}
		})
	}
}

func TestGet_UnknownInstrument(t *testing.T) {
	inst, err := Get("phq9")
	assert.Nil(t, inst)
	assert.ErrorIs(t, err, ErrUnknownInstrument)
}

func TestIDs(t *testing.T) {
	assert.Equal(t, []string{"dass42", "gse", "mhkq", "mscs", "pdd"}, IDs())
}

func TestDASS42_Subscales(t *testing.T) {
	inst, err := Get("dass42")
	require.NoError(t, err)

	depression := inst.CategoryItems(CategoryDepression)
	anxiety := inst.CategoryItems(CategoryAnxiety)
	stress := inst.CategoryItems(CategoryStress)

	assert.Len(t, depression, 14)
	assert.Len(t, anxiety, 14)
	assert.Len(t, stress, 14)

	// Every question belongs to exactly one subscale.
	seen := make(map[int]bool)
	for _, idx := range append(append(depression, anxiety...), stress...) {
		assert.False(t, seen[idx])
		seen[idx] = true
	}
	assert.Len(t, seen, 42)
}

func TestMSCS_Subscales(t *testing.T) {
	inst, err := Get("mscs")
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 7, 10}, inst.CategoryItems(CategoryFamily))
	assert.Equal(t, []int{5, 6, 8, 11}, inst.CategoryItems(CategoryFriends))
	assert.Equal(t, []int{0, 1, 4, 9}, inst.CategoryItems(CategorySignificantOther))

	require.Contains(t, inst.Categories, CategoryFamily)
	assert.Equal(t, "Keluarga", inst.Categories[CategoryFamily].Label)
	assert.Equal(t, "Teman", inst.Categories[CategoryFriends].Label)
	assert.Equal(t, "Orang Terdekat", inst.Categories[CategorySignificantOther].Label)
}

func TestList_ReturnsAllInstruments(t *testing.T) {
	list := List()
	require.Len(t, list, 5)
	for i, inst := range list {
		assert.Equal(t, IDs()[i], inst.ID)
	}
}
