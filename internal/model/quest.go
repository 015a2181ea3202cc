package model

import "time"

// QuestStatus is the completion state of a quest
type QuestStatus string

const (
	QuestStatusPending   QuestStatus = "pending"
	QuestStatusCompleted QuestStatus = "completed"
)

// Checklist is the oracle-generated self-assessment payload for a quest.
// Stored as-is; the oracle is trusted on item count and wording.
type Checklist struct {
	Intro     string   `json:"intro"`
	Subtitle  string   `json:"subtitle"`
	Items     []string `json:"checklist"`
	MinChecks int      `json:"minChecks"`
}

// Evaluation is the oracle's verdict on a checklist submission. Passed is
// authoritative and independent of Score: the oracle may fail a submission
// that clears the numeric bar.
type Evaluation struct {
	Passed   bool   `json:"passed"`
	Score    int    `json:"score"`
	Total    int    `json:"total"`
	Message  string `json:"message"`
	NextStep string `json:"nextStep"`
}

// Quest is one gated improvement task. Each VIP gets exactly six, one per
// category, ordered weakest axis first. Only the Unlock flow may flip
// IsLocked and only a passing evaluation (or the manual override) may flip
// Status.
type Quest struct {
	ID           string      `json:"id" gorm:"primaryKey"`
	VIPID        string      `json:"vipId" gorm:"column:vip_id;index;uniqueIndex:idx_quest_vip_category"`
	AgentID      string      `json:"agentId" gorm:"column:agent_id"`
	Title        string      `json:"title"`
	Category     Category    `json:"category" gorm:"uniqueIndex:idx_quest_vip_category"`
	QuestOrder   int         `json:"quest_order"`
	IsLocked     bool        `json:"is_locked"`
	Status       QuestStatus `json:"status" gorm:"index"`
	Checklist    *Checklist  `json:"ai_questions,omitempty" gorm:"serializer:json"`
	UserAnswers  []int       `json:"user_answers,omitempty" gorm:"serializer:json"`
	CheckedCount int         `json:"checked_count"`
	Evaluation   *Evaluation `json:"ai_evaluation,omitempty" gorm:"serializer:json"`
	CompletedAt  *time.Time  `json:"completed_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// QuestCount is the fixed length of a VIP's quest sequence.
const QuestCount = 6
