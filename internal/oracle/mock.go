package oracle

import (
	"context"
	"fmt"

	"bizbalance/internal/model"
)

// Mock is a deterministic Oracle used when no API key is configured. It keeps
// local development and demos working without network access.
type Mock struct{}

func NewMock() *Mock { return &Mock{} }

func (m *Mock) GenerateChecklist(_ context.Context, vipName string, category model.Category, score int) (*model.Checklist, error) {
	name := category.DisplayName()
	return &model.Checklist{
		Intro:     fmt.Sprintf("%s: your next step", name),
		Subtitle:  fmt.Sprintf("%s, a score of %d is a starting line, not a verdict.", vipName, score),
		Items: []string{
			fmt.Sprintf("Have you written down what %s means for your business this quarter?", name),
			"Have you reviewed the numbers behind this area in the last month?",
			"Have you picked one small improvement you could finish this week?",
			"Are you tracking this area somewhere you actually look at?",
			"Have you told someone (a partner, a peer) what you plan to change?",
		},
		MinChecks: DefaultMinChecks,
	}, nil
}

func (m *Mock) EvaluateChecklist(_ context.Context, vipName string, category model.Category, checklist *model.Checklist, checked []int) (*model.Evaluation, error) {
	minChecks := checklist.MinChecks
	if minChecks <= 0 {
		minChecks = DefaultMinChecks
	}
	passed := len(checked) >= minChecks

	eval := &model.Evaluation{
		Passed: passed,
		Score:  len(checked),
		Total:  len(checklist.Items),
	}
	if passed {
		eval.Message = fmt.Sprintf("%s, you have real momentum in %s. Keep going.", vipName, category.DisplayName())
		eval.NextStep = "The next area is unlocked. Take it at the same steady pace."
	} else {
		eval.Message = fmt.Sprintf("%s, a few more boxes in %s and you'll be ready. No rush.", vipName, category.DisplayName())
	}
	return eval, nil
}
