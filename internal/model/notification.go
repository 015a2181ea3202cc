package model

import "time"

// Notification is an inbox entry produced when a quest completes. Delivery
// and read-state tracking belong to the notification collaborator; the core
// only records and emits.
type Notification struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	VIPID     string    `json:"vipId" gorm:"column:vip_id;index"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Target    string    `json:"target"` // audience, "vip" for quest completions
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
