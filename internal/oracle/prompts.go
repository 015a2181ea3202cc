package oracle

import (
	"fmt"
	"strings"

	"bizbalance/internal/model"
)

// DefaultMinChecks is the nominal pass bar communicated to the oracle. The
// oracle may still fail a submission that clears it.
const DefaultMinChecks = 3

// BuildChecklistPrompt assembles the system and user prompts for checklist
// generation.
func BuildChecklistPrompt(vipName string, category model.Category, score int) (string, string) {
	system := "You are a business mentor with 10 years of experience."

	user := fmt.Sprintf(`%s is currently in the %s area (current score: %d) and is %s

Create a warm, concrete checklist that lets %s self-assess and come away feeling either "I'm doing better than I thought" or "I just need to fill these gaps."

Requirements:
- 5 to 7 items
- Phrased as "Have you...?" or "Are you...?" questions
- Warm and encouraging tone, never accusatory
- Concrete and actionable
- Written from a business owner's perspective

Respond ONLY with JSON in exactly this shape:
{
  "intro": "a short, punchy title",
  "subtitle": "a warm encouraging line addressed to the owner",
  "checklist": ["question 1", "question 2", "question 3", "question 4", "question 5"],
  "minChecks": %d
}`,
		vipName, category.DisplayName(), score, category.EmpathyContext(), vipName, DefaultMinChecks)

	return system, user
}

// BuildEvaluationPrompt assembles the system and user prompts for judging a
// checklist submission. Indexes outside the checklist are ignored.
func BuildEvaluationPrompt(vipName string, category model.Category, checklist *model.Checklist, checked []int) (string, string) {
	system := "You are a professional mentor helping business owners grow."

	checkedSet := make(map[int]bool, len(checked))
	for _, i := range checked {
		if i >= 0 && i < len(checklist.Items) {
			checkedSet[i] = true
		}
	}

	var checkedItems, uncheckedItems []string
	for i, item := range checklist.Items {
		if checkedSet[i] {
			checkedItems = append(checkedItems, "✓ "+item)
		} else {
			uncheckedItems = append(uncheckedItems, "☐ "+item)
		}
	}

	total := len(checklist.Items)
	count := len(checked)
	minChecks := checklist.MinChecks
	if minChecks <= 0 {
		minChecks = DefaultMinChecks
	}

	user := fmt.Sprintf(`%s completed the checklist for the %q area.

Checked items (%d/%d):
%s

Unchecked items:
%s

Assess how ready %s is to improve in %q and decide whether they can move on to the next stage.

Judging criteria:
- %d or more checks normally passes (passed: true).
- You may still recommend a retry if essential items were skipped or the effort looks superficial.
- Tone must be very warm and encouraging, with expert insight.

Respond ONLY with JSON in exactly this shape:
{
  "passed": true or false,
  "score": %d,
  "total": %d,
  "message": "evaluation and encouragement (3-4 sentences)",
  "nextStep": "guidance for the next stage if passed (empty string if not)"
}`,
		vipName, category.DisplayName(), count, total,
		strings.Join(checkedItems, "\n"), strings.Join(uncheckedItems, "\n"),
		vipName, category.DisplayName(), minChecks, count, total)

	return system, user
}
