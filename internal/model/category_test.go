package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryAxisMapping(t *testing.T) {
	want := map[Category]string{
		CategoryAsset:   "asset_stability",
		CategoryTime:    "time_independence",
		CategoryBody:    "physical_condition",
		CategoryEmotion: "emotional_balance",
		CategoryNetwork: "network_power",
		CategorySystem:  "system_leverage",
	}
	for c, axis := range want {
		assert.Equal(t, axis, c.Axis())
	}
}

func TestCategoriesOrderIsTheTieBreakPriority(t *testing.T) {
	assert.Equal(t, []Category{
		CategoryAsset,
		CategoryTime,
		CategoryBody,
		CategoryEmotion,
		CategoryNetwork,
		CategorySystem,
	}, Categories)
	assert.Len(t, Categories, QuestCount)
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), "%s should be valid", c)
	}
	assert.False(t, Category("finance").Valid())
	assert.False(t, Category("").Valid())
}

func TestHealthIndexAxisRoundTrip(t *testing.T) {
	h := &HealthIndex{VIPID: "vip-1"}
	for i, c := range Categories {
		h.SetAxis(c, 10*i)
	}
	for i, c := range Categories {
		assert.Equal(t, 10*i, h.Axis(c))
	}
}

func TestDefaultHealthIndexIsAllNeutral(t *testing.T) {
	h := DefaultHealthIndex("vip-1")
	assert.Equal(t, "vip-1", h.VIPID)
	assert.Equal(t, NeutralScore, h.OverallScore)
	for _, c := range Categories {
		assert.Equal(t, NeutralScore, h.Axis(c))
	}
}
