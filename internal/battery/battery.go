// Package battery loads the fixed diagnosis question set. The battery is a
// versioned configuration artifact: the embedded default ships 20 questions,
// and an operator can swap it via BATTERY_PATH without redeploying core logic.
package battery

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"bizbalance/internal/model"
)

//go:embed questions.json
var defaultQuestions []byte

// Battery holds the loaded question set, ordered by display order.
type Battery struct {
	questions []model.Question
	byID      map[string]model.Question
}

// Load reads the battery from path, or the embedded default when path is
// empty. Unknown categories or duplicate ids are configuration mistakes and
// fail loudly here instead of silently mis-scoring later.
func Load(path string) (*Battery, error) {
	data := defaultQuestions
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read battery %s: %w", path, err)
		}
	}

	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse battery: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("battery is empty")
	}

	byID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		if !q.Category.Valid() {
			return nil, fmt.Errorf("question %s: unknown category %q", q.ID, q.Category)
		}
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		byID[q.ID] = q
	}

	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Order < questions[j].Order
	})

	return &Battery{questions: questions, byID: byID}, nil
}

// Questions returns the battery in display order.
func (b *Battery) Questions() []model.Question {
	return b.questions
}

// ByID looks up a question by id.
func (b *Battery) ByID(id string) (model.Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// Len returns the number of questions.
func (b *Battery) Len() int { return len(b.questions) }
