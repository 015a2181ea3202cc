package service

import (
	"context"
	"fmt"
	"log"

	"bizbalance/internal/docstore"
	"bizbalance/internal/model"
	"bizbalance/internal/repository"
)

// HealthStore persists the six-axis snapshot with a two-tier write path:
// the relational store is primary, the document store is the failover. A
// write that only lands in the fallback is degraded but successful; a write
// that lands nowhere is a data-loss event and fails the operation.
type HealthStore struct {
	primary  repository.HealthRepo
	fallback docstore.HealthArchive // may be nil when no fallback is configured
}

func NewHealthStore(primary repository.HealthRepo, fallback docstore.HealthArchive) *HealthStore {
	return &HealthStore{primary: primary, fallback: fallback}
}

// Upsert replaces the VIP's current snapshot.
func (s *HealthStore) Upsert(ctx context.Context, index *model.HealthIndex) error {
	err := s.primary.Upsert(ctx, index)
	if err == nil {
		return nil
	}

	if s.fallback == nil {
		log.Printf("ERROR: [HealthStore] DATA LOSS: primary write failed for vip %s and no fallback is configured: %v", index.VIPID, err)
		return fmt.Errorf("health index write lost for vip %s: %w", index.VIPID, err)
	}

	log.Printf("WARN: [HealthStore] primary write failed for vip %s, trying fallback: %v", index.VIPID, err)
	if ferr := s.fallback.Upsert(ctx, index); ferr != nil {
		log.Printf("ERROR: [HealthStore] DATA LOSS: fallback write also failed for vip %s: %v", index.VIPID, ferr)
		return fmt.Errorf("health index write lost for vip %s: %w", index.VIPID, ferr)
	}

	// Degraded but durable: report success, keep the warning in the log.
	log.Printf("WARN: [HealthStore] vip %s health index persisted in fallback tier only", index.VIPID)
	return nil
}

// Latest returns the VIP's current snapshot, falling back to the document
// tier and finally to the all-neutral default so sequencing always has input.
func (s *HealthStore) Latest(ctx context.Context, vipID string) *model.HealthIndex {
	index, err := s.primary.Latest(ctx, vipID)
	if err != nil {
		log.Printf("WARN: [HealthStore] primary read failed for vip %s: %v", vipID, err)
	}
	if index != nil {
		return index
	}

	if s.fallback != nil {
		index, err = s.fallback.Latest(ctx, vipID)
		if err != nil {
			log.Printf("WARN: [HealthStore] fallback read failed for vip %s: %v", vipID, err)
		}
		if index != nil {
			return index
		}
	}

	return model.DefaultHealthIndex(vipID)
}
