package scoring

import (
	"fmt"

	"github.com/sehat-jiwa/assessment-service/internal/catalog"
	"github.com/sehat-jiwa/assessment-service/internal/models"
)

func scoreMSCS(inst *models.Instrument, answers models.AnswerSet) *models.ScoreResult {
	averages := make(map[string]float64, len(inst.Categories))
	for category := range inst.Categories {
		items := inst.CategoryItems(category)
		sum := 0
		for _, idx := range items {
			sum += answers.Likert(idx)
		}
		averages[category] = float64(sum) / float64(len(items))
	}

	totalAverage := (averages[catalog.CategoryFamily] +
		averages[catalog.CategoryFriends] +
		averages[catalog.CategorySignificantOther]) / 3

	level := models.LevelLow
	switch {
	case totalAverage >= 5.5:
		level = models.LevelHigh
	case totalAverage >= 4:
		level = models.LevelMedium
	}

	interpretation := fmt.Sprintf(
		"Skor dukungan sosial Anda: Keluarga (%.2f), Teman (%.2f), Orang Terdekat (%.2f). "+
			"Rata-rata keseluruhan: %.2f. Tingkat dukungan sosial: %s.",
		averages[catalog.CategoryFamily], averages[catalog.CategoryFriends],
		averages[catalog.CategorySignificantOther], totalAverage, level.DisplayID())

	return &models.ScoreResult{
		Scores: map[string]float64{
			catalog.CategoryFamily:           averages[catalog.CategoryFamily],
			catalog.CategoryFriends:          averages[catalog.CategoryFriends],
			catalog.CategorySignificantOther: averages[catalog.CategorySignificantOther],
			"totalAverage":                   round2(totalAverage),
		},
		Categories:      map[string]string{"level": level.DisplayID()},
		Interpretation:  interpretation,
		Recommendations: mscsRecommendations(level, averages),
	}
}
