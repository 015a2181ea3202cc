package service

import (
	"context"
	"fmt"
	"log"

	"bizbalance/internal/battery"
	"bizbalance/internal/cache"
	"bizbalance/internal/model"
	"bizbalance/internal/repository"
	"bizbalance/internal/scoring"
)

// DiagnosisService runs the survey flow: start a session, collect answers in
// the TTL cache, and on completion aggregate them into a health-index
// snapshot. Scoring anomalies never abort the flow; a diagnosis always
// completes.
type DiagnosisService struct {
	users    repository.UserRepo
	sessions cache.DiagnosisSessionCache
	health   *HealthStore
	battery  *battery.Battery
	notifier Notifier
}

func NewDiagnosisService(users repository.UserRepo, sessions cache.DiagnosisSessionCache, health *HealthStore, bat *battery.Battery) *DiagnosisService {
	return &DiagnosisService{
		users:    users,
		sessions: sessions,
		health:   health,
		battery:  bat,
	}
}

// SetNotifier injects the push channel for health updates.
func (s *DiagnosisService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Start verifies the VIP exists and opens a diagnosis session. The session id
// is the VIP id: one in-flight diagnosis per client.
func (s *DiagnosisService) Start(ctx context.Context, vipID string) (string, error) {
	vip, err := s.users.GetByID(ctx, vipID)
	if err != nil {
		return "", err
	}
	if vip == nil {
		return "", fmt.Errorf("vip %s: %w", vipID, ErrNotFound)
	}
	return vipID, nil
}

// Questions returns the fixed battery in display order.
func (s *DiagnosisService) Questions() []model.Question {
	return s.battery.Questions()
}

// SaveAnswer records one answer into the session cache. Unknown question ids
// are stored anyway; they simply never contribute to a score.
func (s *DiagnosisService) SaveAnswer(ctx context.Context, vipID, questionID string, ans model.AnswerValue) error {
	return s.sessions.SaveAnswer(ctx, vipID, questionID, ans)
}

// Complete aggregates whatever answers the session holds into a snapshot and
// upserts it. Partial or missing answers degrade to neutral scores rather
// than failing. The session is discarded only after a durable write, so a
// failed persist can be retried.
func (s *DiagnosisService) Complete(ctx context.Context, vipID string) (*model.HealthIndex, error) {
	vip, err := s.users.GetByID(ctx, vipID)
	if err != nil {
		return nil, err
	}
	if vip == nil {
		return nil, fmt.Errorf("vip %s: %w", vipID, ErrNotFound)
	}

	answers, err := s.sessions.Answers(ctx, vipID)
	if err != nil {
		// A lost session means a redo, not a crash: score what we have.
		log.Printf("WARN: [DiagnosisService] session read failed for vip %s, scoring empty: %v", vipID, err)
		answers = map[string]model.AnswerValue{}
	}

	scores, overall := scoring.Aggregate(s.battery.Questions(), answers)

	index := &model.HealthIndex{VIPID: vipID, OverallScore: overall}
	for _, c := range model.Categories {
		index.SetAxis(c, scores[c])
	}

	if err := s.health.Upsert(ctx, index); err != nil {
		return nil, err
	}

	if err := s.sessions.Clear(ctx, vipID); err != nil {
		log.Printf("WARN: [DiagnosisService] session clear failed for vip %s: %v", vipID, err)
	}

	if s.notifier != nil {
		s.notifier.NotifyHealthUpdated(vipID, index)
	}

	log.Printf("[DiagnosisService] vip %s diagnosed: overall %d", vipID, overall)
	return index, nil
}

// Health returns the VIP's current snapshot, defaulting to all-neutral.
func (s *DiagnosisService) Health(ctx context.Context, vipID string) *model.HealthIndex {
	return s.health.Latest(ctx, vipID)
}
