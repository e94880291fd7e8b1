package scoring

import (
	"github.com/sehat-jiwa/assessment-service/internal/catalog"
	"github.com/sehat-jiwa/assessment-service/internal/models"
)

// Recommendation text is advisory screening guidance, not clinical advice.
// The elevated branches add one targeted item when a single subscale
// strictly dominates the others.

func dassRecommendations(overall models.Severity, depression, anxiety, stress int) []string {
	if overall == models.SeverityNormal {
		return []string{
			"Pertahankan keseimbangan hidup yang sehat",
			"Lanjutkan aktivitas yang mendukung kesejahteraan mental",
		}
	}

	recs := []string{
		"Konsultasi dengan psikolog atau konselor",
		"Praktikkan teknik relaksasi dan mindfulness",
		"Jaga pola tidur dan olahraga teratur",
	}
	switch {
	case depression > anxiety && depression > stress:
		recs = append(recs, "Fokus pada aktivitas yang meningkatkan mood positif")
	case anxiety > depression && anxiety > stress:
		recs = append(recs, "Pelajari teknik manajemen kecemasan")
	case stress > depression && stress > anxiety:
		recs = append(recs, "Identifikasi dan kelola sumber stress")
	}
	return recs
}

func gseRecommendations(level models.Level) []string {
	if level == models.LevelHigh {
		return []string{
			"Pertahankan keyakinan diri yang baik",
			"Berbagi pengalaman positif dengan orang lain",
		}
	}
	return []string{
		"Tetapkan tujuan kecil yang dapat dicapai",
		"Rayakan pencapaian sekecil apapun",
		"Cari dukungan dari orang-orang terdekat",
		"Praktikkan self-talk yang positif",
	}
}

func mhkqRecommendations(level models.Level) []string {
	if level == models.LevelHigh {
		return []string{
			"Terus update pengetahuan kesehatan mental",
			"Berbagi informasi dengan orang lain",
		}
	}
	return []string{
		"Pelajari lebih banyak tentang kesehatan mental",
		"Ikuti workshop atau seminar kesehatan mental",
		"Baca buku atau artikel terpercaya",
		"Konsultasi dengan profesional untuk informasi akurat",
	}
}

func mscsRecommendations(level models.Level, averages map[string]float64) []string {
	if level == models.LevelHigh {
		return []string{
			"Pertahankan hubungan sosial yang baik",
			"Apresiasi dukungan yang ada",
		}
	}

	recs := []string{
		"Bangun komunikasi yang lebih terbuka",
		"Cari komunitas atau kelompok yang sesuai",
		"Investasikan waktu untuk hubungan yang bermakna",
	}
	family := averages[catalog.CategoryFamily]
	friends := averages[catalog.CategoryFriends]
	other := averages[catalog.CategorySignificantOther]
	switch {
	case family < friends && family < other:
		recs = append(recs, "Perkuat hubungan dengan keluarga")
	case friends < family && friends < other:
		recs = append(recs, "Bangun pertemanan yang lebih solid")
	case other < family && other < friends:
		recs = append(recs, "Komunikasikan kebutuhan dengan orang terdekat")
	}
	return recs
}

func pddRecommendations(level models.Level) []string {
	if level == models.LevelLow {
		return []string{
			"Pertahankan rutinitas yang sehat",
			"Monitor perubahan mood secara berkala",
		}
	}

	recs := []string{
		"Konsultasi dengan psikiater atau psikolog",
		"Pertimbangkan terapi kognitif behavioral",
		"Jaga rutinitas harian yang terstruktur",
		"Monitor gejala secara berkala",
	}
	if level == models.LevelHigh {
		recs = append(recs,
			"Segera cari bantuan profesional",
			"Informasikan kondisi kepada keluarga terdekat")
	}
	return recs
}
