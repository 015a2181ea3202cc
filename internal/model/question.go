package model

// AnswerType defines how a diagnosis question is answered
type AnswerType string

const (
	AnswerTypeRadio    AnswerType = "radio"    // Single choice from a fixed option list
	AnswerTypeSlider   AnswerType = "slider"   // 1-10 self rating
	AnswerTypeCheckbox AnswerType = "checkbox" // Multi-select, may include the "none" sentinel
)

// SentinelNone is the checkbox option meaning "no concerns". Selecting it
// scores the question high regardless of co-selected items.
const SentinelNone = "None of the above"

// Question is one entry of the fixed diagnosis battery. The battery is
// configuration, not per-client data: it is loaded once and never persisted.
type Question struct {
	ID       string     `json:"id"`
	Prompt   string     `json:"question"`
	Category Category   `json:"category"`
	Type     AnswerType `json:"type"`
	Options  []string   `json:"options"`
	Order    int        `json:"order"`
}
