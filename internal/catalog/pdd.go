package catalog

import "github.com/sehat-jiwa/assessment-service/internal/models"

var pddOptions = []string{"Sangat Tidak Setuju", "Tidak Setuju", "Netral", "Setuju", "Sangat Setuju"}

func pddQuestion(text string) models.Question {
	return models.Question{Text: text, Options: pddOptions}
}

// PDD: 12 likert items (1-5), positively-worded items reverse scored.
var pdd = &models.Instrument{
	ID:          "pdd",
	Title:       "PDD",
	Description: "Perceived Devaluation-Discrimination Scale - Mengukur persepsi stigma kesehatan mental",
	Duration:    "10-15 menit",
	ScoringType: models.ScoringLikert,
	AnswerMin:   1,
	AnswerMax:   5,
	Questions: []models.Question{
		pddQuestion("Kebanyakan orang akan menerima seseorang yang pernah dirawat karena gangguan mental sebagai guru anak-anak mereka"),
		pddQuestion("Kebanyakan orang percaya bahwa seseorang yang pernah dirawat karena gangguan mental sama tidak dapat diandalkannya dengan orang lain"),
		pddQuestion("Kebanyakan orang akan menerima seseorang yang pernah dirawat karena gangguan mental sebagai teman dekat"),
		pddQuestion("Kebanyakan orang percaya bahwa seseorang yang pernah dirawat karena gangguan mental sama pintar dengan orang pada umumnya"),
		pddQuestion("Kebanyakan orang akan menolak seseorang yang pernah dirawat karena gangguan mental sebagai anggota keluarga melalui pernikahan"),
		pddQuestion("Kebanyakan orang menganggap seseorang yang pernah dirawat karena gangguan mental sama dengan orang lain"),
		pddQuestion("Kebanyakan majikan akan mempekerjakan seseorang yang pernah dirawat karena gangguan mental jika dia memenuhi syarat untuk pekerjaan tersebut"),
		pddQuestion("Kebanyakan orang menganggap seseorang yang pernah dirawat karena gangguan mental berbahaya"),
		pddQuestion("Kebanyakan orang akan dengan mudah menerima seseorang yang pernah dirawat karena gangguan mental sebagai teman dekat"),
		pddQuestion("Kebanyakan orang percaya bahwa seseorang yang pernah dirawat karena gangguan mental akan bertindak tidak terduga"),
		pddQuestion("Kebanyakan orang percaya bahwa seseorang yang pernah dirawat karena gangguan mental menunjukkan penilaian yang buruk"),
		pddQuestion("Kebanyakan orang akan menghindar dari seseorang yang pernah dirawat karena gangguan mental"),
	},
}
