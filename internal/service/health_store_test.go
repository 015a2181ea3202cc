package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizbalance/internal/model"
)

func snapshot(vipID string, overall int) *model.HealthIndex {
	index := &model.HealthIndex{VIPID: vipID, OverallScore: overall}
	for _, c := range model.Categories {
		index.SetAxis(c, overall)
	}
	return index
}

func TestHealthStoreUpsertPrimary(t *testing.T) {
	primary := newFakeHealthRepo()
	fallback := newFakeHealthArchive()
	store := NewHealthStore(primary, fallback)

	require.NoError(t, store.Upsert(context.Background(), snapshot("vip-1", 70)))

	assert.NotNil(t, primary.indexes["vip-1"])
	assert.Nil(t, fallback.indexes["vip-1"], "fallback stays untouched on a healthy primary")
}

func TestHealthStoreUpsertDegradesToFallback(t *testing.T) {
	primary := newFakeHealthRepo()
	primary.failing = true
	fallback := newFakeHealthArchive()
	store := NewHealthStore(primary, fallback)

	err := store.Upsert(context.Background(), snapshot("vip-1", 70))
	require.NoError(t, err, "a fallback-only write is degraded, not failed")
	assert.NotNil(t, fallback.indexes["vip-1"])
}

func TestHealthStoreUpsertDataLoss(t *testing.T) {
	primary := newFakeHealthRepo()
	primary.failing = true
	fallback := newFakeHealthArchive()
	fallback.failing = true
	store := NewHealthStore(primary, fallback)

	err := store.Upsert(context.Background(), snapshot("vip-1", 70))
	assert.Error(t, err, "losing both tiers must surface")
}

func TestHealthStoreUpsertNoFallbackConfigured(t *testing.T) {
	primary := newFakeHealthRepo()
	primary.failing = true
	store := NewHealthStore(primary, nil)

	err := store.Upsert(context.Background(), snapshot("vip-1", 70))
	assert.Error(t, err)
}

func TestHealthStoreLatestPrefersPrimary(t *testing.T) {
	primary := newFakeHealthRepo()
	fallback := newFakeHealthArchive()
	require.NoError(t, primary.Upsert(context.Background(), snapshot("vip-1", 80)))
	require.NoError(t, fallback.Upsert(context.Background(), snapshot("vip-1", 30)))

	store := NewHealthStore(primary, fallback)
	index := store.Latest(context.Background(), "vip-1")
	assert.Equal(t, 80, index.OverallScore)
}

func TestHealthStoreLatestFallsBack(t *testing.T) {
	primary := newFakeHealthRepo()
	primary.failing = true
	fallback := newFakeHealthArchive()
	require.NoError(t, fallback.Upsert(context.Background(), snapshot("vip-1", 30)))

	store := NewHealthStore(primary, fallback)
	index := store.Latest(context.Background(), "vip-1")
	assert.Equal(t, 30, index.OverallScore)
}

func TestHealthStoreLatestDefaultsToNeutral(t *testing.T) {
	store := NewHealthStore(newFakeHealthRepo(), newFakeHealthArchive())
	index := store.Latest(context.Background(), "vip-unseen")
	require.NotNil(t, index)
	assert.Equal(t, model.NeutralScore, index.OverallScore)
	for _, c := range model.Categories {
		assert.Equal(t, model.NeutralScore, index.Axis(c))
	}
}
