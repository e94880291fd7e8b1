package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehat-jiwa/assessment-service/internal/catalog"
	"github.com/sehat-jiwa/assessment-service/internal/models"
)

func uniformAnswers(count, value int) models.AnswerSet {
	answers := make(models.AnswerSet, count)
	for i := 0; i < count; i++ {
		answers[i] = value
	}
	return answers
}

func TestScore_UnknownInstrument(t *testing.T) {
	result, err := Score("phq9", models.AnswerSet{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, catalog.ErrUnknownInstrument)
}

func TestScore_EveryCatalogInstrumentHasScoringFunction(t *testing.T) {
	for _, id := range catalog.IDs() {
		t.Run(id, func(t *testing.T) {
			inst, err := catalog.Get(id)
			require.NoError(t, err)

			result, err := Score(id, uniformAnswers(inst.QuestionCount(), 1))
			require.NoError(t, err)
			assert.NotNil(t, result)
		})
	}
}

func TestScoreDASS42_AllZero(t *testing.T) {
	result, err := Score("dass42", uniformAnswers(42, 0))
	require.NoError(t, err)

	assert.Equal(t, float64(0), result.Scores["depression"])
	assert.Equal(t, float64(0), result.Scores["anxiety"])
	assert.Equal(t, float64(0), result.Scores["stress"])
	assert.Equal(t, "Normal", result.Categories["depression"])
	assert.Equal(t, "Normal", result.Categories["anxiety"])
	assert.Equal(t, "Normal", result.Categories["stress"])
	assert.Equal(t, "Normal", result.Categories["overall"])
	assert.Contains(t, result.Interpretation, "depresi: Normal")
	assert.Contains(t, result.Recommendations, "Pertahankan keseimbangan hidup yang sehat")
}

func TestScoreDASS42_AllMax(t *testing.T) {
	result, err := Score("dass42", uniformAnswers(42, 3))
	require.NoError(t, err)

	// 14 items per subscale, raw sum 42, doubled to 84.
	assert.Equal(t, float64(84), result.Scores["depression"])
	assert.Equal(t, float64(84), result.Scores["anxiety"])
	assert.Equal(t, float64(84), result.Scores["stress"])
	assert.Equal(t, "Sangat Berat", result.Categories["depression"])
	assert.Equal(t, "Sangat Berat", result.Categories["anxiety"])
	assert.Equal(t, "Sangat Berat", result.Categories["stress"])
	assert.Equal(t, "Sangat Berat", result.Categories["overall"])

	// No subscale strictly dominates, so only the base advice applies.
	assert.Len(t, result.Recommendations, 3)
	assert.Contains(t, result.Recommendations, "Konsultasi dengan psikolog atau konselor")
}

func TestScoreDASS42_DepressionDominant(t *testing.T) {
	inst, err := catalog.Get("dass42")
	require.NoError(t, err)

	answers := uniformAnswers(42, 0)
	for _, idx := range inst.CategoryItems(catalog.CategoryDepression) {
		answers[idx] = 3
	}

	result, err := Score("dass42", answers)
	require.NoError(t, err)

	assert.Equal(t, float64(84), result.Scores["depression"])
	assert.Equal(t, "Sangat Berat", result.Categories["overall"])
	assert.Contains(t, result.Recommendations, "Fokus pada aktivitas yang meningkatkan mood positif")
}

func TestScoreDASS42_SubscaleBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		classify func(int) models.Severity
		want     models.Severity
	}{
		{"depression 9 normal", 9, depressionSeverity, models.SeverityNormal},
		{"depression 10 mild", 10, depressionSeverity, models.SeverityMild},
		{"depression 20 moderate", 20, depressionSeverity, models.SeverityModerate},
		{"depression 27 severe", 27, depressionSeverity, models.SeveritySevere},
		{"depression 28 extremely severe", 28, depressionSeverity, models.SeverityExtremelySevere},
		{"anxiety 7 normal", 7, anxietySeverity, models.SeverityNormal},
		{"anxiety 8 mild", 8, anxietySeverity, models.SeverityMild},
		{"anxiety 14 moderate", 14, anxietySeverity, models.SeverityModerate},
		{"anxiety 19 severe", 19, anxietySeverity, models.SeveritySevere},
		{"anxiety 20 extremely severe", 20, anxietySeverity, models.SeverityExtremelySevere},
		{"stress 14 normal", 14, stressSeverity, models.SeverityNormal},
		{"stress 15 mild", 15, stressSeverity, models.SeverityMild},
		{"stress 25 moderate", 25, stressSeverity, models.SeverityModerate},
		{"stress 33 severe", 33, stressSeverity, models.SeveritySevere},
		{"stress 34 extremely severe", 34, stressSeverity, models.SeverityExtremelySevere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.classify(tt.score))
		})
	}
}

func TestScoreGSE(t *testing.T) {
	result, err := Score("gse", uniformAnswers(10, 4))
	require.NoError(t, err)

	assert.Equal(t, float64(40), result.Scores["total"])
	assert.Equal(t, float64(4), result.Scores["average"])
	assert.Equal(t, "Tinggi", result.Categories["level"])
	assert.Contains(t, result.Interpretation, "40 dari 40")
	assert.Contains(t, result.Interpretation, "rata-rata: 4.00")
	assert.Contains(t, result.Recommendations, "Pertahankan keyakinan diri yang baik")
}

func TestScoreGSE_LevelBands(t *testing.T) {
	tests := []struct {
		name  string
		value int
		level string
	}{
		{"all 4 high", 4, "Tinggi"},
		{"all 3 medium", 3, "Sedang"},
		{"all 2 low", 2, "Rendah"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Score("gse", uniformAnswers(10, tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.level, result.Categories["level"])
		})
	}
}

func TestScoreMHKQ_PerfectKey(t *testing.T) {
	answers := make(models.AnswerSet, len(mhkqAnswerKey))
	for idx, want := range mhkqAnswerKey {
		if want {
			answers[idx] = 1
		} else {
			answers[idx] = 0
		}
	}

	result, err := Score("mhkq", answers)
	require.NoError(t, err)

	assert.Equal(t, float64(15), result.Scores["correct"])
	assert.Equal(t, float64(100), result.Scores["percentage"])
	assert.Equal(t, "Tinggi", result.Categories["level"])
	assert.Contains(t, result.Interpretation, "15 dari 15")
}

func TestScoreMHKQ_AllTrue(t *testing.T) {
	// 9 of the 15 key answers are true, which lands exactly on the
	// medium band boundary.
	result, err := Score("mhkq", uniformAnswers(15, 1))
	require.NoError(t, err)

	assert.Equal(t, float64(9), result.Scores["correct"])
	assert.Equal(t, float64(60), result.Scores["percentage"])
	assert.Equal(t, "Sedang", result.Categories["level"])
}

func TestScoreMHKQ_UnansweredNeverCorrect(t *testing.T) {
	result, err := Score("mhkq", models.AnswerSet{})
	require.NoError(t, err)

	assert.Equal(t, float64(0), result.Scores["correct"])
	assert.Equal(t, "Rendah", result.Categories["level"])
}

func TestScoreMSCS(t *testing.T) {
	result, err := Score("mscs", uniformAnswers(12, 7))
	require.NoError(t, err)

	assert.Equal(t, float64(7), result.Scores["family"])
	assert.Equal(t, float64(7), result.Scores["friends"])
	assert.Equal(t, float64(7), result.Scores["significant_other"])
	assert.Equal(t, float64(7), result.Scores["totalAverage"])
	assert.Equal(t, "Tinggi", result.Categories["level"])
	assert.Contains(t, result.Recommendations, "Pertahankan hubungan sosial yang baik")
}

func TestScoreMSCS_WeakestSubscaleAdvice(t *testing.T) {
	inst, err := catalog.Get("mscs")
	require.NoError(t, err)

	answers := uniformAnswers(12, 4)
	for _, idx := range inst.CategoryItems(catalog.CategoryFamily) {
		answers[idx] = 1
	}

	result, err := Score("mscs", answers)
	require.NoError(t, err)

	assert.Equal(t, float64(1), result.Scores["family"])
	assert.Equal(t, "Rendah", result.Categories["level"])
	assert.Contains(t, result.Recommendations, "Perkuat hubungan dengan keluarga")
}

func TestScorePDD_NeutralAnswers(t *testing.T) {
	// Reverse scoring maps neutral 3 onto itself, so the total stays 36.
	result, err := Score("pdd", uniformAnswers(12, 3))
	require.NoError(t, err)

	assert.Equal(t, float64(36), result.Scores["total"])
	assert.Equal(t, float64(3), result.Scores["average"])
	assert.Equal(t, "Sedang", result.Categories["level"])
	assert.Contains(t, result.Interpretation, "36 dari 60")
}

func TestScorePDD_MinimalStigma(t *testing.T) {
	answers := uniformAnswers(12, 1)
	for idx := range pddReverseItems {
		answers[idx] = 5
	}

	result, err := Score("pdd", answers)
	require.NoError(t, err)

	assert.Equal(t, float64(12), result.Scores["total"])
	assert.Equal(t, "Rendah", result.Categories["level"])
	assert.Contains(t, result.Recommendations, "Pertahankan rutinitas yang sehat")
}

func TestScorePDD_HighStigmaUrgentAdvice(t *testing.T) {
	answers := uniformAnswers(12, 5)
	for idx := range pddReverseItems {
		answers[idx] = 1
	}

	result, err := Score("pdd", answers)
	require.NoError(t, err)

	assert.Equal(t, float64(60), result.Scores["total"])
	assert.Equal(t, "Tinggi", result.Categories["level"])
	assert.Contains(t, result.Recommendations, "Segera cari bantuan profesional")
}
