package models

// ScoringType distinguishes how raw answers for an instrument are read.
type ScoringType string

const (
	ScoringLikert  ScoringType = "likert"
	ScoringBoolean ScoringType = "boolean"
)

// Question is a single item of an instrument. Category is empty for
// instruments without subscales.
type Question struct {
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Category string   `json:"category,omitempty"`
}

// CategoryDef describes a subscale of an instrument.
type CategoryDef struct {
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Label string `json:"label"`
}

// Instrument is a static questionnaire definition. Instruments are fixed at
// build time and never persisted; attempts reference them by ID.
type Instrument struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Duration    string                 `json:"duration"`
	ScoringType ScoringType            `json:"scoring_type"`
	AnswerMin   int                    `json:"answer_min"`
	AnswerMax   int                    `json:"answer_max"`
	Categories  map[string]CategoryDef `json:"categories,omitempty"`
	Questions   []Question             `json:"questions"`
}

func (i *Instrument) QuestionCount() int {
	return len(i.Questions)
}

// CategoryItems returns the zero-based question indexes tagged with the given
// category, in question order. Membership is fixed at definition time.
func (i *Instrument) CategoryItems(category string) []int {
	var items []int
	for idx, q := range i.Questions {
		if q.Category == category {
			items = append(items, idx)
		}
	}
	return items
}
