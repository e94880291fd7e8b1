package catalog

import "github.com/sehat-jiwa/assessment-service/internal/models"

var gseOptions = []string{"Sangat Tidak Benar", "Hampir Tidak Benar", "Hampir Benar", "Sangat Benar"}

func gseQuestion(text string) models.Question {
	return models.Question{Text: text, Options: gseOptions}
}

// GSE: 10 likert items (1-4), single total score.
var gse = &models.Instrument{
	ID:          "gse",
	Title:       "GSE",
	Description: "General Self-Efficacy Scale - Mengukur keyakinan diri dalam mengatasi tantangan",
	Duration:    "5-8 menit",
	ScoringType: models.ScoringLikert,
	AnswerMin:   1,
	AnswerMax:   4,
	Questions: []models.Question{
		gseQuestion("Saya dapat selalu mengatasi masalah yang sulit jika saya berusaha dengan cukup keras"),
		gseQuestion("Jika seseorang menentang saya, saya dapat menemukan cara dan jalan untuk mendapatkan apa yang saya inginkan"),
		gseQuestion("Mudah bagi saya untuk berpegang teguh pada tujuan saya dan mencapai target saya"),
		gseQuestion("Saya yakin bahwa saya dapat menangani peristiwa yang tidak terduga dengan efisien"),
		gseQuestion("Berkat kecerdikan saya, saya tahu bagaimana menangani situasi yang tidak terduga"),
		gseQuestion("Saya dapat memecahkan sebagian besar masalah jika saya melakukan upaya yang diperlukan"),
		gseQuestion("Saya dapat tetap tenang ketika menghadapi kesulitan karena saya dapat mengandalkan kemampuan mengatasi masalah"),
		gseQuestion("Ketika saya dihadapkan dengan masalah, saya biasanya dapat menemukan beberapa solusi"),
		gseQuestion("Jika saya sedang dalam kesulitan, saya biasanya dapat memikirkan suatu solusi"),
		gseQuestion("Saya biasanya dapat menangani apa pun yang terjadi pada saya"),
	},
}
