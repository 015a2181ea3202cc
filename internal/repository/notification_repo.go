package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bizbalance/internal/model"
)

type NotificationRepo interface {
	Create(ctx context.Context, n *model.Notification) error
	ListByVIP(ctx context.Context, vipID string, limit int) ([]*model.Notification, error)
}

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepo {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *model.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificationRepo) ListByVIP(ctx context.Context, vipID string, limit int) ([]*model.Notification, error) {
	var notifications []*model.Notification
	q := r.db.WithContext(ctx).
		Where("vip_id = ?", vipID).
		Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&notifications).Error
	return notifications, err
}
