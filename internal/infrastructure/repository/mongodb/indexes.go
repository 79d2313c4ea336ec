package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes this backend depends on for
// correctness: the unique like triple (the primary defense against
// concurrent double-likes) and the text indexes both search text stages
// query. Safe to call on every startup; Mongo treats existing identical
// indexes as a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	// A user may like a given target at most once; enforced by the store,
	// not by a read-then-write check.
	_, err := db.Collection("likes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "target_id", Value: 1},
			{Key: "target_type", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique like index: %w", err)
	}

	_, err = db.Collection("comments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "target_id", Value: 1},
			{Key: "target_type", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create comment listing index: %w", err)
	}

	_, err = db.Collection("downloads").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "downloaded_at", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create download history index: %w", err)
	}

	textIndexes := map[string]bson.D{
		"songs": {
			{Key: "name", Value: "text"},
			{Key: "desc", Value: "text"},
			{Key: "album", Value: "text"},
			{Key: "artist", Value: "text"},
			{Key: "genre", Value: "text"},
		},
		"albums": {
			{Key: "name", Value: "text"},
			{Key: "desc", Value: "text"},
			{Key: "artist", Value: "text"},
			{Key: "genre", Value: "text"},
		},
		"playlists": {
			{Key: "name", Value: "text"},
			{Key: "description", Value: "text"},
		},
	}
	for collection, keys := range textIndexes {
		_, err := db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys})
		if err != nil {
			return fmt.Errorf("failed to create %s text index: %w", collection, err)
		}
	}

	return nil
}
