package model

// AnswerValue is the raw submitted value for one diagnosis question. Exactly
// one field is expected to be set, matching the question's answer type; the
// scorer treats anything else as a missing answer and degrades to the neutral
// default rather than failing.
type AnswerValue struct {
	Choice     string   `json:"choice,omitempty"`     // radio: the chosen option label
	Rating     *float64 `json:"rating,omitempty"`     // slider: 1-10 (pointer so 0 is distinguishable from absent)
	Selections []string `json:"selections,omitempty"` // checkbox: selected option labels
}
