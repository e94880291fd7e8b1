package models

import "sort"

// AnswerSet maps a zero-based question index to the raw response value.
// Likert items store the chosen scale value; boolean items store 1 for
// "Benar"/true and 0 for "Salah"/false. An absent index means unanswered.
type AnswerSet map[int]int

// Likert returns the value for index i, defaulting a missing answer to 0.
// The default is deliberate lenience for ad-hoc scoring; the completion
// guard rejects incomplete attempts before scoring ever runs.
func (a AnswerSet) Likert(i int) int {
	return a[i]
}

// Bool reports the boolean value for index i and whether it was answered.
// A missing answer is never a match against an answer key.
func (a AnswerSet) Bool(i int) (value, answered bool) {
	v, ok := a[i]
	return v == 1, ok
}

// Missing returns the unanswered indexes in [0, questionCount), ascending.
func (a AnswerSet) Missing(questionCount int) []int {
	var missing []int
	for i := 0; i < questionCount; i++ {
		if _, ok := a[i]; !ok {
			missing = append(missing, i)
		}
	}
	return missing
}

// Complete reports whether every index in [0, questionCount) is answered.
func (a AnswerSet) Complete(questionCount int) bool {
	return len(a.Missing(questionCount)) == 0
}

// Indexes returns the answered indexes in ascending order.
func (a AnswerSet) Indexes() []int {
	idx := make([]int, 0, len(a))
	for i := range a {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}
