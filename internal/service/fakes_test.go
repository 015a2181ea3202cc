package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"bizbalance/internal/model"
)

// In-memory doubles for the repository and infra interfaces. They mirror the
// storage semantics the services rely on: (vip, category) uniqueness on quest
// insert, conditional completion, not-found as (nil, nil).

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByPhone(_ context.Context, phone string) (*model.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

type fakeQuestRepo struct {
	quests map[string]*model.Quest
}

func newFakeQuestRepo() *fakeQuestRepo {
	return &fakeQuestRepo{quests: map[string]*model.Quest{}}
}

func (r *fakeQuestRepo) CreateBatch(_ context.Context, quests []*model.Quest) (int64, error) {
	var inserted int64
	for _, q := range quests {
		conflict := false
		for _, existing := range r.quests {
			if existing.VIPID == q.VIPID && existing.Category == q.Category {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		cp := *q
		r.quests[q.ID] = &cp
		inserted++
	}
	return inserted, nil
}

func (r *fakeQuestRepo) GetByID(_ context.Context, id string) (*model.Quest, error) {
	q, ok := r.quests[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuestRepo) ListByVIP(_ context.Context, vipID string) ([]*model.Quest, error) {
	var out []*model.Quest
	for _, q := range r.quests {
		if q.VIPID == vipID {
			cp := *q
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestOrder < out[j].QuestOrder })
	return out, nil
}

func (r *fakeQuestRepo) GetByOrder(_ context.Context, vipID string, order int) (*model.Quest, error) {
	for _, q := range r.quests {
		if q.VIPID == vipID && q.QuestOrder == order {
			cp := *q
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeQuestRepo) GetCurrent(_ context.Context, vipID string) (*model.Quest, error) {
	var current *model.Quest
	for _, q := range r.quests {
		if q.VIPID != vipID || q.IsLocked || q.Status == model.QuestStatusCompleted {
			continue
		}
		if current == nil || q.QuestOrder < current.QuestOrder {
			current = q
		}
	}
	if current == nil {
		return nil, nil
	}
	cp := *current
	return &cp, nil
}

func (r *fakeQuestRepo) SaveChecklist(_ context.Context, questID string, checklist *model.Checklist) error {
	q, ok := r.quests[questID]
	if !ok {
		return errors.New("quest not found")
	}
	q.Checklist = checklist
	return nil
}

func (r *fakeQuestRepo) SaveEvaluation(_ context.Context, questID string, answers []int, checkedCount int, eval *model.Evaluation) error {
	q, ok := r.quests[questID]
	if !ok {
		return errors.New("quest not found")
	}
	q.UserAnswers = answers
	q.CheckedCount = checkedCount
	q.Evaluation = eval
	return nil
}

func (r *fakeQuestRepo) CompleteIfPending(_ context.Context, questID string, completedAt time.Time) (bool, error) {
	q, ok := r.quests[questID]
	if !ok || q.Status != model.QuestStatusPending {
		return false, nil
	}
	q.Status = model.QuestStatusCompleted
	q.CompletedAt = &completedAt
	return true, nil
}

func (r *fakeQuestRepo) Unlock(_ context.Context, questID string) error {
	q, ok := r.quests[questID]
	if !ok {
		return errors.New("quest not found")
	}
	q.IsLocked = false
	return nil
}

type fakeHealthRepo struct {
	indexes map[string]*model.HealthIndex
	failing bool
}

func newFakeHealthRepo() *fakeHealthRepo {
	return &fakeHealthRepo{indexes: map[string]*model.HealthIndex{}}
}

func (r *fakeHealthRepo) Upsert(_ context.Context, index *model.HealthIndex) error {
	if r.failing {
		return errors.New("primary store down")
	}
	cp := *index
	r.indexes[index.VIPID] = &cp
	return nil
}

func (r *fakeHealthRepo) Latest(_ context.Context, vipID string) (*model.HealthIndex, error) {
	if r.failing {
		return nil, errors.New("primary store down")
	}
	return r.indexes[vipID], nil
}

type fakeHealthArchive struct {
	indexes map[string]*model.HealthIndex
	failing bool
}

func newFakeHealthArchive() *fakeHealthArchive {
	return &fakeHealthArchive{indexes: map[string]*model.HealthIndex{}}
}

func (a *fakeHealthArchive) Upsert(_ context.Context, index *model.HealthIndex) error {
	if a.failing {
		return errors.New("archive down")
	}
	cp := *index
	a.indexes[index.VIPID] = &cp
	return nil
}

func (a *fakeHealthArchive) Latest(_ context.Context, vipID string) (*model.HealthIndex, error) {
	if a.failing {
		return nil, errors.New("archive down")
	}
	return a.indexes[vipID], nil
}

type fakeNotificationRepo struct {
	rows []*model.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *model.Notification) error {
	r.rows = append(r.rows, n)
	return nil
}

func (r *fakeNotificationRepo) ListByVIP(_ context.Context, vipID string, limit int) ([]*model.Notification, error) {
	var out []*model.Notification
	for _, n := range r.rows {
		if n.VIPID == vipID {
			out = append(out, n)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeSessionCache struct {
	answers  map[string]map[string]model.AnswerValue
	readErr  error
	saveErr  error
	clearErr error
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{answers: map[string]map[string]model.AnswerValue{}}
}

func (c *fakeSessionCache) SaveAnswer(_ context.Context, vipID, questionID string, ans model.AnswerValue) error {
	if c.saveErr != nil {
		return c.saveErr
	}
	if c.answers[vipID] == nil {
		c.answers[vipID] = map[string]model.AnswerValue{}
	}
	c.answers[vipID][questionID] = ans
	return nil
}

func (c *fakeSessionCache) Answers(_ context.Context, vipID string) (map[string]model.AnswerValue, error) {
	if c.readErr != nil {
		return nil, c.readErr
	}
	out := map[string]model.AnswerValue{}
	for k, v := range c.answers[vipID] {
		out[k] = v
	}
	return out, nil
}

func (c *fakeSessionCache) Clear(_ context.Context, vipID string) error {
	if c.clearErr != nil {
		return c.clearErr
	}
	delete(c.answers, vipID)
	return nil
}

type fakeOracle struct {
	checklist    *model.Checklist
	evaluation   *model.Evaluation
	generateErr  error
	evaluateErr  error
	generateSeen int
	evaluateSeen int
}

func (o *fakeOracle) GenerateChecklist(_ context.Context, _ string, _ model.Category, _ int) (*model.Checklist, error) {
	o.generateSeen++
	if o.generateErr != nil {
		return nil, o.generateErr
	}
	return o.checklist, nil
}

func (o *fakeOracle) EvaluateChecklist(_ context.Context, _ string, _ model.Category, _ *model.Checklist, _ []int) (*model.Evaluation, error) {
	o.evaluateSeen++
	if o.evaluateErr != nil {
		return nil, o.evaluateErr
	}
	return o.evaluation, nil
}

type fakeNotifier struct {
	completed []string
	health    []string
}

func (n *fakeNotifier) NotifyQuestCompleted(vipID string, _ *model.Notification) {
	n.completed = append(n.completed, vipID)
}

func (n *fakeNotifier) NotifyHealthUpdated(vipID string, _ *model.HealthIndex) {
	n.health = append(n.health, vipID)
}
