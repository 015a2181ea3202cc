package model

import "time"

// UserRole separates coaches from their clients
type UserRole string

const (
	RoleAgent UserRole = "agent"
	RoleVIP   UserRole = "vip"
)

// User is an agent (coach) or a VIP (coached client). A VIP's CreatedBy
// points at the agent who onboarded them; quests inherit that relationship.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone" gorm:"index"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role" gorm:"index"`
	CreatedBy string    `json:"created_by"` // owning agent id for VIPs
	Specialty string    `json:"specialty,omitempty"`
	Intro     string    `json:"intro,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
