package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bizbalance/internal/model"
)

type HealthRepo interface {
	// Upsert replaces the single current snapshot for the VIP. Point-in-time
	// data only: prior values are overwritten, not archived.
	Upsert(ctx context.Context, index *model.HealthIndex) error
	Latest(ctx context.Context, vipID string) (*model.HealthIndex, error)
}

type healthRepo struct {
	db *gorm.DB
}

func NewHealthRepo(db *gorm.DB) HealthRepo {
	return &healthRepo{db: db}
}

func (r *healthRepo) Upsert(ctx context.Context, index *model.HealthIndex) error {
	if index.ID == "" {
		index.ID = uuid.New().String()
	}
	if index.CreatedAt.IsZero() {
		index.CreatedAt = time.Now()
	}
	index.UpdatedAt = time.Now()

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "vip_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"asset_stability", "time_independence", "physical_condition",
			"emotional_balance", "network_power", "system_leverage",
			"overall_score", "updated_at",
		}),
	}).Create(index).Error
}

func (r *healthRepo) Latest(ctx context.Context, vipID string) (*model.HealthIndex, error) {
	var index model.HealthIndex
	err := r.db.WithContext(ctx).First(&index, "vip_id = ?", vipID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &index, nil
}
