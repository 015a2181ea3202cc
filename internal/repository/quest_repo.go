package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bizbalance/internal/model"
)

type QuestRepo interface {
	// CreateBatch inserts quests with insert-or-ignore semantics on the
	// (vip_id, category) unique index and returns how many rows landed.
	// Duplicate initialization attempts therefore insert zero rows instead
	// of racing a read-then-write existence check.
	CreateBatch(ctx context.Context, quests []*model.Quest) (int64, error)
	GetByID(ctx context.Context, id string) (*model.Quest, error)
	ListByVIP(ctx context.Context, vipID string) ([]*model.Quest, error)
	GetByOrder(ctx context.Context, vipID string, order int) (*model.Quest, error)
	// GetCurrent returns the unlocked, not-yet-completed quest with the
	// lowest order, or nil when none exists.
	GetCurrent(ctx context.Context, vipID string) (*model.Quest, error)
	SaveChecklist(ctx context.Context, questID string, checklist *model.Checklist) error
	SaveEvaluation(ctx context.Context, questID string, answers []int, checkedCount int, eval *model.Evaluation) error
	// CompleteIfPending atomically flips status to completed only when it is
	// still pending, reporting whether this call won the transition.
	CompleteIfPending(ctx context.Context, questID string, completedAt time.Time) (bool, error)
	Unlock(ctx context.Context, questID string) error
}

type questRepo struct {
	db *gorm.DB
}

func NewQuestRepo(db *gorm.DB) QuestRepo {
	return &questRepo{db: db}
}

func (r *questRepo) CreateBatch(ctx context.Context, quests []*model.Quest) (int64, error) {
	now := time.Now()
	for _, q := range quests {
		if q.CreatedAt.IsZero() {
			q.CreatedAt = now
		}
	}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&quests)
	return tx.RowsAffected, tx.Error
}

func (r *questRepo) GetByID(ctx context.Context, id string) (*model.Quest, error) {
	var quest model.Quest
	err := r.db.WithContext(ctx).First(&quest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quest, nil
}

func (r *questRepo) ListByVIP(ctx context.Context, vipID string) ([]*model.Quest, error) {
	var quests []*model.Quest
	err := r.db.WithContext(ctx).
		Where("vip_id = ?", vipID).
		Order("quest_order asc").
		Find(&quests).Error
	return quests, err
}

func (r *questRepo) GetByOrder(ctx context.Context, vipID string, order int) (*model.Quest, error) {
	var quest model.Quest
	err := r.db.WithContext(ctx).
		First(&quest, "vip_id = ? AND quest_order = ?", vipID, order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quest, nil
}

func (r *questRepo) GetCurrent(ctx context.Context, vipID string) (*model.Quest, error) {
	var quest model.Quest
	err := r.db.WithContext(ctx).
		Where("vip_id = ? AND is_locked = ? AND status <> ?", vipID, false, model.QuestStatusCompleted).
		Order("quest_order asc").
		First(&quest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quest, nil
}

func (r *questRepo) SaveChecklist(ctx context.Context, questID string, checklist *model.Checklist) error {
	// Struct update so the JSON serializer on Checklist applies.
	return r.db.WithContext(ctx).Model(&model.Quest{}).
		Where("id = ?", questID).
		Select("checklist").
		Updates(model.Quest{Checklist: checklist}).Error
}

func (r *questRepo) SaveEvaluation(ctx context.Context, questID string, answers []int, checkedCount int, eval *model.Evaluation) error {
	return r.db.WithContext(ctx).Model(&model.Quest{}).
		Where("id = ?", questID).
		Select("user_answers", "checked_count", "evaluation").
		Updates(model.Quest{UserAnswers: answers, CheckedCount: checkedCount, Evaluation: eval}).Error
}

func (r *questRepo) CompleteIfPending(ctx context.Context, questID string, completedAt time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&model.Quest{}).
		Where("id = ? AND status = ?", questID, model.QuestStatusPending).
		Updates(map[string]interface{}{
			"status":       model.QuestStatusCompleted,
			"completed_at": completedAt,
		})
	return tx.RowsAffected > 0, tx.Error
}

func (r *questRepo) Unlock(ctx context.Context, questID string) error {
	return r.db.WithContext(ctx).Model(&model.Quest{}).
		Where("id = ?", questID).
		Update("is_locked", false).Error
}
