package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bizbalance/internal/model"
)

func radioQuestion(options ...string) model.Question {
	return model.Question{
		ID:       "q_radio",
		Category: model.CategoryAsset,
		Type:     model.AnswerTypeRadio,
		Options:  options,
	}
}

func TestScoreNilAnswer(t *testing.T) {
	q := radioQuestion("a", "b", "c", "d")
	assert.Equal(t, Neutral, Score(q, nil))
}

func TestScoreRadio(t *testing.T) {
	q := radioQuestion("never", "rarely", "often", "always")

	tests := []struct {
		name   string
		choice string
		want   float64
	}{
		{"first option", "never", 15},
		{"second option", "rarely", 40},
		{"third option", "often", 70},
		{"fourth option", "always", 100},
		{"unknown choice", "sometimes", Neutral},
		{"empty choice", "", Neutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(q, &model.AnswerValue{Choice: tt.choice}))
		})
	}
}

func TestScoreRadioFifthOptionIsNeutral(t *testing.T) {
	q := radioQuestion("a", "b", "c", "d", "e")
	assert.Equal(t, Neutral, Score(q, &model.AnswerValue{Choice: "e"}))
}

func TestScoreRadioNoOptions(t *testing.T) {
	q := radioQuestion()
	assert.Equal(t, Neutral, Score(q, &model.AnswerValue{Choice: "anything"}))
}

func TestScoreSlider(t *testing.T) {
	q := model.Question{ID: "q_slider", Category: model.CategoryBody, Type: model.AnswerTypeSlider}

	rating := func(v float64) *model.AnswerValue {
		return &model.AnswerValue{Rating: &v}
	}

	tests := []struct {
		name string
		ans  *model.AnswerValue
		want float64
	}{
		{"missing rating", &model.AnswerValue{}, Neutral},
		{"zero maps to zero, not neutral", rating(0), 0},
		{"midpoint", rating(5), 50},
		{"top of scale", rating(10), 100},
		{"above scale clamps", rating(15), 100},
		{"below scale clamps", rating(-2), 0},
		{"fractional", rating(7.5), 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(q, tt.ans))
		})
	}
}

func TestScoreCheckbox(t *testing.T) {
	q := model.Question{ID: "q_check", Category: model.CategoryEmotion, Type: model.AnswerTypeCheckbox}

	tests := []struct {
		name       string
		selections []string
		want       float64
	}{
		{"no selections field", nil, Neutral},
		{"empty selection", []string{}, Neutral},
		{"none-of-the-above", []string{model.SentinelNone}, 90},
		{"sentinel wins over concerns", []string{"sleep trouble", model.SentinelNone}, 90},
		{"one concern", []string{"sleep trouble"}, 60},
		{"two concerns", []string{"sleep trouble", "appetite"}, 40},
		{"three concerns", []string{"a", "b", "c"}, 20},
		{"four concerns hits the floor", []string{"a", "b", "c", "d"}, 10},
		{"five concerns stays at the floor", []string{"a", "b", "c", "d", "e"}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(q, &model.AnswerValue{Selections: tt.selections}))
		})
	}
}

func TestScoreUnknownTypeIsNeutral(t *testing.T) {
	q := model.Question{ID: "q_odd", Category: model.CategoryTime, Type: "textarea"}
	assert.Equal(t, Neutral, Score(q, &model.AnswerValue{Choice: "whatever"}))
}
