package models

// Severity is the ordinal classification of a subscale score against fixed
// clinical cutoffs. Comparisons always use the logical value; Indonesian
// display labels are derived, never compared.
type Severity string

const (
	SeverityNormal          Severity = "normal"
	SeverityMild            Severity = "mild"
	SeverityModerate        Severity = "moderate"
	SeveritySevere          Severity = "severe"
	SeverityExtremelySevere Severity = "extremely_severe"
)

var severityRank = map[Severity]int{
	SeverityNormal:          0,
	SeverityMild:            1,
	SeverityModerate:        2,
	SeveritySevere:          3,
	SeverityExtremelySevere: 4,
}

// Rank returns the ordinal position of the severity, Normal being lowest.
func (s Severity) Rank() int {
	return severityRank[s]
}

// DisplayID returns the Indonesian label shown to users.
func (s Severity) DisplayID() string {
	switch s {
	case SeverityMild:
		return "Ringan"
	case SeverityModerate:
		return "Sedang"
	case SeveritySevere:
		return "Berat"
	case SeverityExtremelySevere:
		return "Sangat Berat"
	default:
		return "Normal"
	}
}

// MaxSeverity returns the highest-ranked severity among the given values.
func MaxSeverity(values ...Severity) Severity {
	max := SeverityNormal
	for _, v := range values {
		if v.Rank() > max.Rank() {
			max = v
		}
	}
	return max
}

// Level is the three-band classification used by single-score instruments
// (GSE, MHKQ, MSCS, PDD).
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// DisplayID returns the Indonesian label shown to users.
func (l Level) DisplayID() string {
	switch l {
	case LevelHigh:
		return "Tinggi"
	case LevelMedium:
		return "Sedang"
	default:
		return "Rendah"
	}
}
