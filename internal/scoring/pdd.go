package scoring

import (
	"fmt"

	"github.com/sehat-jiwa/assessment-service/internal/models"
)

// pddReverseItems are the positively worded statements, scored as 6-v so
// that higher totals always mean stronger perceived stigma.
var pddReverseItems = map[int]bool{
	0: true, 2: true, 3: true, 5: true, 6: true, 8: true,
}

func scorePDD(inst *models.Instrument, answers models.AnswerSet) *models.ScoreResult {
	total := 0
	for idx := range inst.Questions {
		v := answers.Likert(idx)
		if pddReverseItems[idx] {
			v = 6 - v
		}
		total += v
	}
	average := float64(total) / float64(inst.QuestionCount())

	level := models.LevelLow
	switch {
	case average >= 4:
		level = models.LevelHigh
	case average >= 3:
		level = models.LevelMedium
	}

	maxTotal := inst.QuestionCount() * inst.AnswerMax
	interpretation := fmt.Sprintf(
		"Skor persepsi stigma Anda adalah %d dari %d (rata-rata: %.2f). Tingkat persepsi stigma: %s. "+
			"Skor yang lebih tinggi mengindikasikan persepsi stigma yang lebih kuat terhadap gangguan kesehatan mental.",
		total, maxTotal, average, level.DisplayID())

	return &models.ScoreResult{
		Scores: map[string]float64{
			"total":   float64(total),
			"average": round2(average),
		},
		Categories:      map[string]string{"level": level.DisplayID()},
		Interpretation:  interpretation,
		Recommendations: pddRecommendations(level),
	}
}
