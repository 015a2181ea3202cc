package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizbalance/internal/battery"
	"bizbalance/internal/model"
)

func diagnosisFixture(t *testing.T) (*DiagnosisService, *fakeSessionCache, *fakeHealthRepo, *fakeNotifier) {
	t.Helper()

	bat, err := battery.Load("")
	require.NoError(t, err)

	sessions := newFakeSessionCache()
	healthRepo := newFakeHealthRepo()
	notifier := &fakeNotifier{}

	svc := NewDiagnosisService(newFakeUserRepo(testVIP()), sessions, NewHealthStore(healthRepo, nil), bat)
	svc.SetNotifier(notifier)
	return svc, sessions, healthRepo, notifier
}

func TestStartUnknownVIP(t *testing.T) {
	svc, _, _, _ := diagnosisFixture(t)
	_, err := svc.Start(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStartReturnsSessionID(t *testing.T) {
	svc, _, _, _ := diagnosisFixture(t)
	id, err := svc.Start(context.Background(), "vip-1")
	require.NoError(t, err)
	assert.Equal(t, "vip-1", id, "one in-flight diagnosis per vip")
}

func TestQuestionsReturnsFullBattery(t *testing.T) {
	svc, _, _, _ := diagnosisFixture(t)
	assert.Len(t, svc.Questions(), 20)
}

func TestCompleteWithNoAnswersIsAllNeutral(t *testing.T) {
	svc, _, _, _ := diagnosisFixture(t)
	ctx := context.Background()

	index, err := svc.Complete(ctx, "vip-1")
	require.NoError(t, err)

	for _, c := range model.Categories {
		assert.Equal(t, model.NeutralScore, index.Axis(c))
	}
	assert.Equal(t, model.NeutralScore, index.OverallScore)
}

func TestCompleteScoresAndPersists(t *testing.T) {
	svc, _, healthRepo, notifier := diagnosisFixture(t)
	ctx := context.Background()

	// Best radio answer for every asset question pushes that axis to 100.
	for _, q := range svc.Questions() {
		if q.Category != model.CategoryAsset || q.Type != model.AnswerTypeRadio {
			continue
		}
		best := q.Options[len(q.Options)-1]
		require.NoError(t, svc.SaveAnswer(ctx, "vip-1", q.ID, model.AnswerValue{Choice: best}))
	}

	index, err := svc.Complete(ctx, "vip-1")
	require.NoError(t, err)
	assert.Equal(t, 100, index.Axis(model.CategoryAsset))
	assert.Equal(t, model.NeutralScore, index.Axis(model.CategoryTime))

	stored, err := healthRepo.Latest(ctx, "vip-1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 100, stored.Axis(model.CategoryAsset))

	assert.Equal(t, []string{"vip-1"}, notifier.health)
}

func TestCompleteClearsSessionOnlyAfterDurableWrite(t *testing.T) {
	svc, sessions, healthRepo, _ := diagnosisFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SaveAnswer(ctx, "vip-1", "asset_1", model.AnswerValue{Choice: "x"}))

	healthRepo.failing = true
	_, err := svc.Complete(ctx, "vip-1")
	require.Error(t, err)
	assert.NotEmpty(t, sessions.answers["vip-1"], "a failed persist must keep the session for retry")

	healthRepo.failing = false
	_, err = svc.Complete(ctx, "vip-1")
	require.NoError(t, err)
	assert.Empty(t, sessions.answers["vip-1"])
}

func TestCompleteSurvivesLostSession(t *testing.T) {
	svc, sessions, _, _ := diagnosisFixture(t)
	ctx := context.Background()
	sessions.readErr = errors.New("redis down")

	index, err := svc.Complete(ctx, "vip-1")
	require.NoError(t, err, "a lost session degrades to neutral, never fails the diagnosis")
	assert.Equal(t, model.NeutralScore, index.OverallScore)
}

func TestCompleteUnknownVIP(t *testing.T) {
	svc, _, _, _ := diagnosisFixture(t)
	_, err := svc.Complete(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHealthDefaultsWhenUndiagnosed(t *testing.T) {
	svc, _, _, _ := diagnosisFixture(t)
	index := svc.Health(context.Background(), "vip-1")
	require.NotNil(t, index)
	assert.Equal(t, model.NeutralScore, index.OverallScore)
}

func TestCompleteWritesFallbackWhenPrimaryDown(t *testing.T) {
	bat, err := battery.Load("")
	require.NoError(t, err)

	healthRepo := newFakeHealthRepo()
	healthRepo.failing = true
	archive := newFakeHealthArchive()

	svc := NewDiagnosisService(newFakeUserRepo(testVIP()), newFakeSessionCache(), NewHealthStore(healthRepo, archive), bat)

	_, err = svc.Complete(context.Background(), "vip-1")
	require.NoError(t, err, "fallback tier keeps the diagnosis durable")

	stored, err := archive.Latest(context.Background(), "vip-1")
	require.NoError(t, err)
	assert.NotNil(t, stored)
}
