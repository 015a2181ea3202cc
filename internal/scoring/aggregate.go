package scoring

import (
	"math"

	"bizbalance/internal/model"
)

// Aggregate scores every battery question against the submitted answers,
// averages per category and overall. Deterministic and side-effect free.
// A category with no contributing questions defaults to the neutral score;
// that cannot happen with the shipped battery but is defined for robustness.
func Aggregate(questions []model.Question, answers map[string]model.AnswerValue) (map[model.Category]int, int) {
	perCategory := make(map[model.Category][]float64, len(model.Categories))

	for _, q := range questions {
		var ans *model.AnswerValue
		if a, ok := answers[q.ID]; ok {
			ans = &a
		}
		perCategory[q.Category] = append(perCategory[q.Category], Score(q, ans))
	}

	scores := make(map[model.Category]int, len(model.Categories))
	sum := 0
	for _, c := range model.Categories {
		s := roundedMean(perCategory[c])
		scores[c] = s
		sum += s
	}
	overall := int(math.Round(float64(sum) / float64(len(model.Categories))))

	return scores, overall
}

func roundedMean(values []float64) int {
	if len(values) == 0 {
		return model.NeutralScore
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return int(math.Round(sum / float64(len(values))))
}
