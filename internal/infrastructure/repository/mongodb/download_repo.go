package mongodb

import (
	"context"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/domain/contract"
	"github.com/melodix-app/melodix-backend/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DownloadRepository is the MongoDB implementation of IDownloadRepository.
// The downloads collection is append-only in normal operation.
type DownloadRepository struct {
	collection *mongo.Collection
}

// NewDownloadRepository creates and returns a new DownloadRepository instance.
func NewDownloadRepository(db *mongo.Database) *DownloadRepository {
	return &DownloadRepository{
		collection: db.Collection("downloads"),
	}
}

var _ contract.IDownloadRepository = (*DownloadRepository)(nil)

// Create inserts a new download record.
func (r *DownloadRepository) Create(ctx context.Context, download *entity.Download) error {
	_, err := r.collection.InsertOne(ctx, download)
	if err != nil {
		return apperror.Internal(err, "failed to record download")
	}
	return nil
}

// Delete removes a download record. Only used to compensate a failed
// counter delta.
func (r *DownloadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Internal(err, "failed to delete download")
	}
	if res.DeletedCount == 0 {
		return apperror.New(apperror.ErrNotFound, "download not found")
	}
	return nil
}

// ListByUser returns the user's download history, newest first.
func (r *DownloadRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Download, error) {
	opts := options.Find().SetSort(bson.D{{Key: "downloaded_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list downloads")
	}
	defer cursor.Close(ctx)

	var downloads []*entity.Download
	if err := cursor.All(ctx, &downloads); err != nil {
		return nil, apperror.Internal(err, "failed to decode downloads")
	}
	return downloads, nil
}
