package service

import "bizbalance/internal/model"

// Notifier pushes events to connected dashboards (avoids import cycle with
// the WebSocket transport). Delivery is best effort; the persisted
// notification row is the source of truth.
type Notifier interface {
	NotifyQuestCompleted(vipID string, n *model.Notification)
	NotifyHealthUpdated(vipID string, index *model.HealthIndex)
}
