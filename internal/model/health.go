package model

import "time"

// NeutralScore is the default for any axis with no diagnosis data.
const NeutralScore = 50

// HealthIndex is the current six-axis snapshot for a VIP. One row per VIP,
// upsert semantics: a new diagnosis overwrites the previous snapshot.
type HealthIndex struct {
	ID                string    `json:"id" gorm:"primaryKey" bson:"_id,omitempty"`
	VIPID             string    `json:"vipId" gorm:"column:vip_id;uniqueIndex" bson:"vipId"`
	AssetStability    int       `json:"asset_stability" bson:"assetStability"`
	TimeIndependence  int       `json:"time_independence" bson:"timeIndependence"`
	PhysicalCondition int       `json:"physical_condition" bson:"physicalCondition"`
	EmotionalBalance  int       `json:"emotional_balance" bson:"emotionalBalance"`
	NetworkPower      int       `json:"network_power" bson:"networkPower"`
	SystemLeverage    int       `json:"system_leverage" bson:"systemLeverage"`
	OverallScore      int       `json:"overall_score" bson:"overallScore"`
	CreatedAt         time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updatedAt"`
}

func (HealthIndex) TableName() string { return "health_index" }

// Axis returns the score for one category.
func (h *HealthIndex) Axis(c Category) int {
	switch c {
	case CategoryAsset:
		return h.AssetStability
	case CategoryTime:
		return h.TimeIndependence
	case CategoryBody:
		return h.PhysicalCondition
	case CategoryEmotion:
		return h.EmotionalBalance
	case CategoryNetwork:
		return h.NetworkPower
	case CategorySystem:
		return h.SystemLeverage
	}
	return NeutralScore
}

// SetAxis stores the score for one category.
func (h *HealthIndex) SetAxis(c Category, score int) {
	switch c {
	case CategoryAsset:
		h.AssetStability = score
	case CategoryTime:
		h.TimeIndependence = score
	case CategoryBody:
		h.PhysicalCondition = score
	case CategoryEmotion:
		h.EmotionalBalance = score
	case CategoryNetwork:
		h.NetworkPower = score
	case CategorySystem:
		h.SystemLeverage = score
	}
}

// DefaultHealthIndex returns an all-neutral snapshot, used when a VIP has
// never completed a diagnosis so downstream sequencing always has input.
func DefaultHealthIndex(vipID string) *HealthIndex {
	h := &HealthIndex{VIPID: vipID, OverallScore: NeutralScore, CreatedAt: time.Now()}
	for _, c := range Categories {
		h.SetAxis(c, NeutralScore)
	}
	return h
}
