// Package docstore is the secondary persistence tier. When the relational
// store rejects a health-index write the snapshot lands here instead, so a
// completed diagnosis survives a primary outage.
package docstore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bizbalance/internal/model"
)

type HealthArchive interface {
	Upsert(ctx context.Context, index *model.HealthIndex) error
	Latest(ctx context.Context, vipID string) (*model.HealthIndex, error)
}

type healthArchive struct {
	collection *mongo.Collection
}

func NewHealthArchive(db *mongo.Database) HealthArchive {
	return &healthArchive{
		collection: db.Collection("health_index"),
	}
}

func (a *healthArchive) Upsert(ctx context.Context, index *model.HealthIndex) error {
	if index.UpdatedAt.IsZero() {
		index.UpdatedAt = time.Now()
	}

	_, err := a.collection.ReplaceOne(
		ctx,
		bson.M{"vipId": index.VIPID},
		index,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (a *healthArchive) Latest(ctx context.Context, vipID string) (*model.HealthIndex, error) {
	var index model.HealthIndex
	err := a.collection.FindOne(ctx, bson.M{"vipId": vipID}).Decode(&index)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &index, nil
}
