package catalog

import "github.com/sehat-jiwa/assessment-service/internal/models"

// MSCS subscale identifiers.
const (
	CategoryFamily           = "family"
	CategoryFriends          = "friends"
	CategorySignificantOther = "significant_other"
)

var mscsOptions = []string{"Sangat Tidak Setuju", "Tidak Setuju", "Agak Tidak Setuju", "Netral", "Agak Setuju", "Setuju", "Sangat Setuju"}

func mscsQuestion(text, category string) models.Question {
	return models.Question{Text: text, Options: mscsOptions, Category: category}
}

// MSCS: 12 likert items (1-7), four per subscale.
var mscs = &models.Instrument{
	ID:          "mscs",
	Title:       "MSCS",
	Description: "Multidimensional Scale of Perceived Social Support - Mengukur persepsi dukungan sosial",
	Duration:    "8-10 menit",
	ScoringType: models.ScoringLikert,
	AnswerMin:   1,
	AnswerMax:   7,
	Categories: map[string]models.CategoryDef{
		CategoryFamily:           {Min: 1, Max: 7, Label: "Keluarga"},
		CategoryFriends:          {Min: 1, Max: 7, Label: "Teman"},
		CategorySignificantOther: {Min: 1, Max: 7, Label: "Orang Terdekat"},
	},
	Questions: []models.Question{
		mscsQuestion("Ada orang khusus yang ada saat saya membutuhkannya", CategorySignificantOther),
		mscsQuestion("Ada orang khusus yang berbagi kegembiraan dan kesedihan saya", CategorySignificantOther),
		mscsQuestion("Keluarga saya benar-benar mencoba membantu saya", CategoryFamily),
		mscsQuestion("Saya mendapatkan dukungan emosional yang saya butuhkan dari keluarga saya", CategoryFamily),
		mscsQuestion("Saya memiliki orang khusus yang menjadi sumber kenyamanan bagi saya", CategorySignificantOther),
		mscsQuestion("Teman-teman saya benar-benar mencoba membantu saya", CategoryFriends),
		mscsQuestion("Saya dapat mengandalkan teman-teman saya saat terjadi masalah", CategoryFriends),
		mscsQuestion("Saya dapat berbicara tentang masalah saya dengan keluarga saya", CategoryFamily),
		mscsQuestion("Saya memiliki teman-teman yang berbagi kegembiraan dan kesedihan saya", CategoryFriends),
		mscsQuestion("Ada orang khusus dalam hidup saya yang peduli terhadap perasaan saya", CategorySignificantOther),
		mscsQuestion("Keluarga saya bersedia membantu saya membuat keputusan", CategoryFamily),
		mscsQuestion("Saya dapat berbicara tentang masalah saya dengan teman-teman saya", CategoryFriends),
	},
}
