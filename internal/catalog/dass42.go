package catalog

import "github.com/sehat-jiwa/assessment-service/internal/models"

const (
	CategoryDepression = "depression"
	CategoryAnxiety    = "anxiety"
	CategoryStress     = "stress"
)

var dassOptions = []string{"Tidak Pernah", "Kadang-kadang", "Sering", "Sangat Sering"}

func dassQuestion(text, category string) models.Question {
	return models.Question{Text: text, Options: dassOptions, Category: category}
}

// DASS-42: 42 likert items (0-3), 14 per subscale. The category tag of each
// index is part of the published item map and must not be reordered.
var dass42 = &models.Instrument{
	ID:          "dass42",
	Title:       "DASS-42",
	Description: "Depression, Anxiety, Stress Scales - Mengukur tingkat depresi, kecemasan, dan stres",
	Duration:    "15-20 menit",
	ScoringType: models.ScoringLikert,
	AnswerMin:   0,
	AnswerMax:   3,
	Categories: map[string]models.CategoryDef{
		CategoryDepression: {Min: 0, Max: 21, Label: "Depresi"},
		CategoryAnxiety:    {Min: 0, Max: 21, Label: "Kecemasan"},
		CategoryStress:     {Min: 0, Max: 21, Label: "Stres"},
	},
	Questions: []models.Question{
		dassQuestion("Saya merasa kesulitan untuk tenang setelah sesuatu mengganggu saya", CategoryStress),
		dassQuestion("Saya menyadari mulut saya terasa kering", CategoryAnxiety),
		dassQuestion("Saya seperti tidak dapat merasakan perasaan positif sama sekali", CategoryDepression),
		dassQuestion("Saya mengalami kesulitan bernapas (seperti napas cepat, kehabisan napas padahal tidak melakukan aktivitas fisik)", CategoryAnxiety),
		dassQuestion("Saya merasa sulit untuk memiliki inisiatif dalam melakukan sesuatu", CategoryDepression),
		dassQuestion("Saya cenderung bereaksi berlebihan terhadap suatu situasi", CategoryStress),
		dassQuestion("Saya mengalami gemetaran (seperti pada tangan)", CategoryAnxiety),
		dassQuestion("Saya merasa banyak menggunakan energi untuk merasa cemas", CategoryStress),
		dassQuestion("Saya khawatir dengan situasi dimana saya mungkin panik dan mempermalukan diri sendiri", CategoryAnxiety),
		dassQuestion("Saya merasa tidak ada hal yang dapat saya harapkan", CategoryDepression),
		dassQuestion("Saya mendapati diri saya mudah gelisah", CategoryStress),
		dassQuestion("Saya merasa sulit untuk rileks", CategoryStress),
		dassQuestion("Saya merasa sedih dan tertekan", CategoryDepression),
		dassQuestion("Saya tidak sabar dengan segala hal yang menunda saya untuk menyelesaikan apa yang sedang saya lakukan", CategoryStress),
		dassQuestion("Saya merasa seperti akan pingsan", CategoryAnxiety),
		dassQuestion("Saya kehilangan minat pada banyak hal", CategoryDepression),
		dassQuestion("Saya merasa tidak berharga sebagai seorang manusia", CategoryDepression),
		dassQuestion("Saya merasa mudah tersinggung", CategoryStress),
		dassQuestion("Saya merasakan keringat berlebihan (seperti tangan berkeringat), padahal suhu tidak panas atau tidak melakukan aktivitas fisik", CategoryAnxiety),
		dassQuestion("Saya merasa takut tanpa alasan yang jelas", CategoryAnxiety),
		dassQuestion("Saya merasa hidup tidak bermakna", CategoryDepression),
		dassQuestion("Saya merasa sulit untuk tenang", CategoryStress),
		dassQuestion("Saya mengalami kesulitan menelan", CategoryAnxiety),
		dassQuestion("Saya tidak dapat menikmati hal-hal yang saya lakukan", CategoryDepression),
		dassQuestion("Saya menyadari perubahan denyut jantung saya padahal saya tidak melakukan aktivitas fisik (seperti denyut jantung meningkat, jantung berdebar-debar)", CategoryAnxiety),
		dassQuestion("Saya merasa putus asa dan sedih", CategoryDepression),
		dassQuestion("Saya merasa mudah marah", CategoryStress),
		dassQuestion("Saya merasa hampir panik", CategoryAnxiety),
		dassQuestion("Saya merasa sulit untuk tenang setelah sesuatu mengganggu saya", CategoryStress),
		dassQuestion("Saya takut bahwa saya akan terhambat oleh tugas-tugas sepele yang tidak biasa saya lakukan", CategoryAnxiety),
		dassQuestion("Saya tidak antusias terhadap apapun", CategoryDepression),
		dassQuestion("Saya merasa sulit untuk sabar dalam menghadapi gangguan terhadap apa yang sedang saya lakukan", CategoryStress),
		dassQuestion("Saya sedang merasa gelisah", CategoryStress),
		dassQuestion("Saya merasa tidak berharga", CategoryDepression),
		dassQuestion("Saya tidak dapat mentoleransi gangguan-gangguan terhadap apa yang sedang saya lakukan", CategoryStress),
		dassQuestion("Saya merasa sangat ketakutan", CategoryAnxiety),
		dassQuestion("Saya merasa tidak ada harapan untuk masa depan", CategoryDepression),
		dassQuestion("Saya merasa hidup tidak bermakna", CategoryDepression),
		dassQuestion("Saya mendapati diri saya mudah gelisah", CategoryStress),
		dassQuestion("Saya merasa khawatir mengenai situasi dimana saya mungkin panik dan mempermalukan diri sendiri", CategoryAnxiety),
		dassQuestion("Saya merasa gemetar (seperti pada kaki)", CategoryAnxiety),
		dassQuestion("Saya tidak mampu untuk menjadi antusias tentang apapun", CategoryDepression),
	},
}
