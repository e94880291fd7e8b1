package scoring

import (
	"fmt"

	"github.com/sehat-jiwa/assessment-service/internal/catalog"
	"github.com/sehat-jiwa/assessment-service/internal/models"
)

// DASS-42 cutoffs per subscale. Raw subscale sums are doubled before
// classification, matching the published DASS-42 norms.
func depressionSeverity(score int) models.Severity {
	switch {
	case score <= 9:
		return models.SeverityNormal
	case score <= 13:
		return models.SeverityMild
	case score <= 20:
		return models.SeverityModerate
	case score <= 27:
		return models.SeveritySevere
	default:
		return models.SeverityExtremelySevere
	}
}

func anxietySeverity(score int) models.Severity {
	switch {
	case score <= 7:
		return models.SeverityNormal
	case score <= 9:
		return models.SeverityMild
	case score <= 14:
		return models.SeverityModerate
	case score <= 19:
		return models.SeveritySevere
	default:
		return models.SeverityExtremelySevere
	}
}

func stressSeverity(score int) models.Severity {
	switch {
	case score <= 14:
		return models.SeverityNormal
	case score <= 18:
		return models.SeverityMild
	case score <= 25:
		return models.SeverityModerate
	case score <= 33:
		return models.SeveritySevere
	default:
		return models.SeverityExtremelySevere
	}
}

func scoreDASS42(inst *models.Instrument, answers models.AnswerSet) *models.ScoreResult {
	sums := map[string]int{
		catalog.CategoryDepression: 0,
		catalog.CategoryAnxiety:    0,
		catalog.CategoryStress:     0,
	}
	for idx, q := range inst.Questions {
		sums[q.Category] += answers.Likert(idx)
	}
	for category := range sums {
		sums[category] *= 2
	}

	depression := depressionSeverity(sums[catalog.CategoryDepression])
	anxiety := anxietySeverity(sums[catalog.CategoryAnxiety])
	stress := stressSeverity(sums[catalog.CategoryStress])
	overall := models.MaxSeverity(depression, anxiety, stress)

	interpretation := fmt.Sprintf(
		"Hasil assessment DASS-42 menunjukkan tingkat depresi: %s, kecemasan: %s, dan stres: %s. "+
			"Hasil ini dapat digunakan sebagai skrining awal dan bukan diagnosis medis.",
		depression.DisplayID(), anxiety.DisplayID(), stress.DisplayID())

	return &models.ScoreResult{
		Scores: map[string]float64{
			catalog.CategoryDepression: float64(sums[catalog.CategoryDepression]),
			catalog.CategoryAnxiety:    float64(sums[catalog.CategoryAnxiety]),
			catalog.CategoryStress:     float64(sums[catalog.CategoryStress]),
		},
		Categories: map[string]string{
			catalog.CategoryDepression: depression.DisplayID(),
			catalog.CategoryAnxiety:    anxiety.DisplayID(),
			catalog.CategoryStress:     stress.DisplayID(),
			"overall":                  overall.DisplayID(),
		},
		Interpretation: interpretation,
		Recommendations: dassRecommendations(overall,
			sums[catalog.CategoryDepression], sums[catalog.CategoryAnxiety], sums[catalog.CategoryStress]),
	}
}
