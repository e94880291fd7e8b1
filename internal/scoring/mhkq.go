package scoring

import (
	"fmt"

	"github.com/sehat-jiwa/assessment-service/internal/models"
)

// mhkqAnswerKey marks which statements are factually true. Unanswered
// items never count as correct.
var mhkqAnswerKey = []bool{
	true, false, true, false, true,
	false, true, true, false, false,
	true, true, true, true, false,
}

func scoreMHKQ(inst *models.Instrument, answers models.AnswerSet) *models.ScoreResult {
	correct := 0
	for idx, want := range mhkqAnswerKey {
		if got, answered := answers.Bool(idx); answered && got == want {
			correct++
		}
	}

	total := len(mhkqAnswerKey)
	percentage := float64(correct) / float64(total) * 100

	level := models.LevelLow
	switch {
	case percentage >= 80:
		level = models.LevelHigh
	case percentage >= 60:
		level = models.LevelMedium
	}

	interpretation := fmt.Sprintf(
		"Skor pengetahuan kesehatan mental Anda adalah %d dari %d (%.1f%%). Tingkat pengetahuan: %s. "+
			"Skor yang lebih tinggi menunjukkan pemahaman yang lebih baik tentang kesehatan mental.",
		correct, total, percentage, level.DisplayID())

	return &models.ScoreResult{
		Scores: map[string]float64{
			"correct":    float64(correct),
			"total":      float64(total),
			"percentage": round1(percentage),
		},
		Categories:      map[string]string{"level": level.DisplayID()},
		Interpretation:  interpretation,
		Recommendations: mhkqRecommendations(level),
	}
}
