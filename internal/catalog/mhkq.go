package catalog

import "github.com/sehat-jiwa/assessment-service/internal/models"

var mhkqOptions = []string{"Benar", "Salah"}

func mhkqQuestion(text string) models.Question {
	return models.Question{Text: text, Options: mhkqOptions}
}

// MHKQ: 15 true/false knowledge items scored against an answer key.
var mhkq = &models.Instrument{
	ID:          "mhkq",
	Title:       "MHKQ",
	Description: "Mental Health Knowledge Questionnaire - Menilai pengetahuan kesehatan mental",
	Duration:    "10-12 menit",
	ScoringType: models.ScoringBoolean,
	AnswerMin:   0,
	AnswerMax:   1,
	Questions: []models.Question{
		mhkqQuestion("Gangguan mental dapat disembuhkan dengan perawatan yang tepat"),
		mhkqQuestion("Orang dengan gangguan mental berbahaya bagi masyarakat"),
		mhkqQuestion("Stres yang berkepanjangan dapat menyebabkan masalah kesehatan mental"),
		mhkqQuestion("Gangguan mental hanya menyerang orang yang lemah mentalnya"),
		mhkqQuestion("Terapi psikologi efektif untuk mengatasi gangguan mental"),
		mhkqQuestion("Orang dengan gangguan mental tidak dapat bekerja secara normal"),
		mhkqQuestion("Dukungan keluarga dan teman penting untuk pemulihan kesehatan mental"),
		mhkqQuestion("Gangguan mental dapat dicegah dengan gaya hidup sehat"),
		mhkqQuestion("Obat-obatan selalu diperlukan untuk mengobati gangguan mental"),
		mhkqQuestion("Berbicara tentang masalah mental dapat membuat kondisi menjadi lebih buruk"),
		mhkqQuestion("Gangguan mental dapat menyerang siapa saja tanpa memandang usia atau status sosial"),
		mhkqQuestion("Orang dengan gangguan mental dapat pulih sepenuhnya"),
		mhkqQuestion("Stigma terhadap gangguan mental dapat menghambat seseorang untuk mencari bantuan"),
		mhkqQuestion("Aktivitas fisik dapat membantu meningkatkan kesehatan mental"),
		mhkqQuestion("Gangguan mental adalah tanda kelemahan karakter"),
	},
}
