package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"bizbalance/internal/model"
	"bizbalance/internal/oracle"
	"bizbalance/internal/repository"
)

// QuestService owns the quest state machine: sequencing six quests from the
// health snapshot, generating and judging checklists via the oracle, and
// advancing the unlock chain. No other code path may flip a quest's lock or
// status.
type QuestService struct {
	quests        repository.QuestRepo
	users         repository.UserRepo
	notifications repository.NotificationRepo
	health        *HealthStore
	oracle        oracle.Oracle
	notifier      Notifier
}

func NewQuestService(quests repository.QuestRepo, users repository.UserRepo, notifications repository.NotificationRepo, health *HealthStore, o oracle.Oracle) *QuestService {
	return &QuestService{
		quests:        quests,
		users:         users,
		notifications: notifications,
		health:        health,
		oracle:        o,
	}
}

// SetNotifier injects the push channel for completion events.
func (s *QuestService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Initialize creates the VIP's six quests, weakest axis first, with only the
// first unlocked. Idempotent: re-invocation returns ErrAlreadyInitialized
// and inserts nothing, guarded by the (vip_id, category) unique index rather
// than a racy existence check. Returns the number of quests created.
func (s *QuestService) Initialize(ctx context.Context, vipID string) (int, error) {
	vip, err := s.users.GetByID(ctx, vipID)
	if err != nil {
		return 0, err
	}
	if vip == nil {
		return 0, fmt.Errorf("vip %s: %w", vipID, ErrNotFound)
	}

	index := s.health.Latest(ctx, vipID)

	type catScore struct {
		category model.Category
		score    int
	}
	pairs := make([]catScore, 0, len(model.Categories))
	for _, c := range model.Categories {
		pairs = append(pairs, catScore{category: c, score: index.Axis(c)})
	}
	// Stable sort: ties keep declaration order, so sequencing is
	// deterministic for identical scores.
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].score < pairs[j].score
	})

	quests := make([]*model.Quest, 0, len(pairs))
	for i, p := range pairs {
		quests = append(quests, &model.Quest{
			ID:         uuid.New().String(),
			VIPID:      vipID,
			AgentID:    vip.CreatedBy,
			Title:      p.category.QuestTitle(),
			Category:   p.category,
			QuestOrder: i + 1,
			IsLocked:   i != 0,
			Status:     model.QuestStatusPending,
		})
	}

	created, err := s.quests.CreateBatch(ctx, quests)
	if err != nil {
		return 0, err
	}
	if created == 0 {
		return 0, ErrAlreadyInitialized
	}

	log.Printf("[QuestService] initialized %d quests for vip %s (first: %s)", created, vipID, pairs[0].category)
	return int(created), nil
}

// List returns the VIP's quests in order, lazily initializing the sequence
// when none exist yet. status filters by "completed" or "pending".
func (s *QuestService) List(ctx context.Context, vipID, status string) ([]*model.Quest, error) {
	quests, err := s.quests.ListByVIP(ctx, vipID)
	if err != nil {
		return nil, err
	}

	if len(quests) == 0 {
		if _, err := s.Initialize(ctx, vipID); err != nil && err != ErrAlreadyInitialized {
			return nil, err
		}
		if quests, err = s.quests.ListByVIP(ctx, vipID); err != nil {
			return nil, err
		}
	}

	if status == "" {
		return quests, nil
	}
	filtered := quests[:0:0]
	for _, q := range quests {
		switch status {
		case "completed":
			if q.Status == model.QuestStatusCompleted {
				filtered = append(filtered, q)
			}
		case "pending":
			if q.Status != model.QuestStatusCompleted {
				filtered = append(filtered, q)
			}
		}
	}
	return filtered, nil
}

// Current returns the quest the VIP should be working on: unlocked, not
// completed, lowest order.
func (s *QuestService) Current(ctx context.Context, vipID string) (*model.Quest, error) {
	quest, err := s.quests.GetCurrent(ctx, vipID)
	if err != nil {
		return nil, err
	}
	if quest == nil {
		return nil, fmt.Errorf("no active quest for vip %s: %w", vipID, ErrNotFound)
	}
	return quest, nil
}

// GetByID returns a quest or ErrNotFound.
func (s *QuestService) GetByID(ctx context.Context, questID string) (*model.Quest, error) {
	quest, err := s.quests.GetByID(ctx, questID)
	if err != nil {
		return nil, err
	}
	if quest == nil {
		return nil, fmt.Errorf("quest %s: %w", questID, ErrNotFound)
	}
	return quest, nil
}

// GenerateChecklist asks the oracle for the quest's checklist and persists it
// verbatim. Regeneration overwrites the previous checklist. Locked quests are
// rejected before any oracle call.
func (s *QuestService) GenerateChecklist(ctx context.Context, questID string) (*model.Checklist, error) {
	quest, err := s.GetByID(ctx, questID)
	if err != nil {
		return nil, err
	}
	if quest.IsLocked {
		return nil, fmt.Errorf("quest %s: %w", questID, ErrLocked)
	}

	vip, err := s.users.GetByID(ctx, quest.VIPID)
	if err != nil {
		return nil, err
	}
	if vip == nil {
		return nil, fmt.Errorf("vip %s: %w", quest.VIPID, ErrNotFound)
	}

	score := s.health.Latest(ctx, quest.VIPID).Axis(quest.Category)

	checklist, err := s.oracle.GenerateChecklist(ctx, vip.Name, quest.Category, score)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}

	if err := s.quests.SaveChecklist(ctx, quest.ID, checklist); err != nil {
		return nil, err
	}
	return checklist, nil
}

// Evaluate judges the VIP's checked items. The submission and verdict are
// persisted even on a failed evaluation so retries show history; a passing
// verdict completes the quest and unlocks the next one. The oracle call
// happens before any mutation, so an oracle failure leaves the quest
// untouched and retryable.
func (s *QuestService) Evaluate(ctx context.Context, questID string, checked []int) (*model.Evaluation, error) {
	quest, err := s.GetByID(ctx, questID)
	if err != nil {
		return nil, err
	}
	if quest.IsLocked {
		return nil, fmt.Errorf("quest %s: %w", questID, ErrLocked)
	}
	if quest.Checklist == nil {
		return nil, fmt.Errorf("quest %s: %w", questID, ErrNotReady)
	}

	vip, err := s.users.GetByID(ctx, quest.VIPID)
	if err != nil {
		return nil, err
	}
	if vip == nil {
		return nil, fmt.Errorf("vip %s: %w", quest.VIPID, ErrNotFound)
	}

	eval, err := s.oracle.EvaluateChecklist(ctx, vip.Name, quest.Category, quest.Checklist, checked)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOracleUnavailable, err)
	}

	if err := s.quests.SaveEvaluation(ctx, quest.ID, checked, len(checked), eval); err != nil {
		return nil, err
	}

	if eval.Passed {
		if err := s.complete(ctx, quest, eval.Message); err != nil {
			return nil, err
		}
	}
	return eval, nil
}

// CompleteOverride is the administrative path: it completes a quest without
// an evaluation and still advances the unlock chain.
func (s *QuestService) CompleteOverride(ctx context.Context, questID string) error {
	quest, err := s.GetByID(ctx, questID)
	if err != nil {
		return err
	}
	return s.complete(ctx, quest, "Marked complete by your agent.")
}

// complete performs the pending -> completed transition and its side effects.
// The conditional update is the serialization point: concurrent attempts on
// the same quest race on it, exactly one wins, and only the winner unlocks
// the successor and emits the notification.
func (s *QuestService) complete(ctx context.Context, quest *model.Quest, message string) error {
	won, err := s.quests.CompleteIfPending(ctx, quest.ID, time.Now())
	if err != nil {
		return err
	}
	if !won {
		log.Printf("[QuestService] quest %s already completed, skipping unlock", quest.ID)
		return nil
	}

	next, err := s.quests.GetByOrder(ctx, quest.VIPID, quest.QuestOrder+1)
	if err != nil {
		return err
	}
	if next != nil {
		if err := s.quests.Unlock(ctx, next.ID); err != nil {
			return err
		}
		log.Printf("[QuestService] vip %s unlocked quest %d (%s)", quest.VIPID, next.QuestOrder, next.Category)
	} else {
		// Order 6 has no successor: the sequence is fully resolved.
		log.Printf("[QuestService] vip %s completed the full quest sequence", quest.VIPID)
	}

	notification := &model.Notification{
		VIPID:     quest.VIPID,
		Title:     fmt.Sprintf("🎉 '%s' mission complete!", quest.Title),
		Content:   message,
		Target:    "vip",
		CreatedBy: quest.AgentID,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		// The transition already happened; a lost inbox row is not worth
		// failing the evaluation over.
		log.Printf("WARN: [QuestService] notification write failed for quest %s: %v", quest.ID, err)
	} else if s.notifier != nil {
		s.notifier.NotifyQuestCompleted(quest.VIPID, notification)
	}

	return nil
}

// Notifications lists the VIP's recent inbox entries.
func (s *QuestService) Notifications(ctx context.Context, vipID string, limit int) ([]*model.Notification, error) {
	return s.notifications.ListByVIP(ctx, vipID, limit)
}
