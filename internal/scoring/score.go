// Package scoring converts raw diagnosis answers into 0-100 axis scores.
// Everything here is pure: persistence belongs to the caller, and malformed
// input never errors — a diagnosis must always complete, so bad data degrades
// to the neutral default instead.
package scoring

import "bizbalance/internal/model"

// Neutral is the score assigned when an answer is missing or unusable.
const Neutral = 50.0

// radioScores maps a radio option's position to its score. Options are
// ordered worst to best by convention; positions beyond the fourth fall back
// to Neutral.
var radioScores = map[int]float64{
	0: 15,
	1: 40,
	2: 70,
	3: 100,
}

const (
	noneSentinelScore = 90.0 // "no concerns" beats every partial selection
	concernBase       = 80.0
	concernPenalty    = 20.0
	concernFloor      = 10.0
)

// Score computes the 0-100 score for one answer against its question. A nil
// answer means the question was never submitted.
func Score(q model.Question, ans *model.AnswerValue) float64 {
	if ans == nil {
		return Neutral
	}

	switch q.Type {
	case model.AnswerTypeRadio:
		return scoreRadio(q, ans)
	case model.AnswerTypeSlider:
		return scoreSlider(ans)
	case model.AnswerTypeCheckbox:
		return scoreCheckbox(ans)
	}
	return Neutral
}

func scoreRadio(q model.Question, ans *model.AnswerValue) float64 {
	if ans.Choice == "" || len(q.Options) == 0 {
		return Neutral
	}
	for i, opt := range q.Options {
		if opt == ans.Choice { // exact match only, no fuzzy matching
			if s, ok := radioScores[i]; ok {
				return s
			}
			return Neutral
		}
	}
	return Neutral
}

func scoreSlider(ans *model.AnswerValue) float64 {
	if ans.Rating == nil {
		return Neutral
	}
	s := *ans.Rating * 10
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func scoreCheckbox(ans *model.AnswerValue) float64 {
	if ans.Selections == nil {
		return Neutral
	}

	concerns := 0
	for _, sel := range ans.Selections {
		if sel == model.SentinelNone {
			return noneSentinelScore
		}
		concerns++
	}
	if concerns == 0 {
		return Neutral
	}

	s := concernBase - concernPenalty*float64(concerns)
	if s < concernFloor {
		return concernFloor
	}
	return s
}
