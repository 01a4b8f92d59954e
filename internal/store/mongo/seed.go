package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SeedStateRepository struct {
	collection *mongo.Collection
}

func NewSeedStateRepository(db *mongo.Database) *SeedStateRepository {
	return &SeedStateRepository{
		collection: db.Collection("seed_state"),
	}
}

// Claim atomically marks the catalog as seeded via an upsert on a single
// marker document. Exactly one of any number of concurrent callers gets true.
func (r *SeedStateRepository) Claim(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": "menu"}
	update := bson.M{
		"$setOnInsert": bson.M{"seeded_at": time.Now().UTC().Format(time.RFC3339Nano)},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("failed to claim seed marker: %w", err)
	}

	return result.UpsertedCount > 0, nil
}
