package scoring

import (
	"fmt"

	"github.com/sehat-jiwa/assessment-service/internal/models"
)

func scoreGSE(inst *models.Instrument, answers models.AnswerSet) *models.ScoreResult {
	total := 0
	for idx := range inst.Questions {
		total += answers.Likert(idx)
	}
	average := float64(total) / float64(inst.QuestionCount())

	level := models.LevelLow
	switch {
	case average >= 3.5:
		level = models.LevelHigh
	case average >= 2.5:
		level = models.LevelMedium
	}

	maxTotal := inst.QuestionCount() * inst.AnswerMax
	interpretation := fmt.Sprintf(
		"Skor GSE Anda adalah %d dari %d (rata-rata: %.2f). Tingkat self-efficacy Anda: %s. "+
			"Skor yang lebih tinggi menunjukkan keyakinan diri yang lebih kuat dalam mengatasi tantangan.",
		total, maxTotal, average, level.DisplayID())

	return &models.ScoreResult{
		Scores: map[string]float64{
			"total":   float64(total),
			"average": round2(average),
		},
		Categories:      map[string]string{"level": level.DisplayID()},
		Interpretation:  interpretation,
		Recommendations: gseRecommendations(level),
	}
}
