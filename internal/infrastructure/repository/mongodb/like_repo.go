package mongodb

import (
	"context"
	"errors"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/domain/contract"
	"github.com/melodix-app/melodix-backend/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LikeRepository is the MongoDB implementation of ILikeRepository.
type LikeRepository struct {
	collection *mongo.Collection
}

// NewLikeRepository creates and returns a new LikeRepository instance.
func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{
		collection: db.Collection("likes"),
	}
}

var _ contract.ILikeRepository = (*LikeRepository)(nil)

// Create inserts the like. The unique index on
// (user_id, target_id, target_type) turns a concurrent double-submit into a
// duplicate key error, reported as apperror.ErrConflict.
func (r *LikeRepository) Create(ctx context.Context, like *entity.Like) error {
	_, err := r.collection.InsertOne(ctx, like)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.New(apperror.ErrConflict, "already liked")
		}
		return apperror.Internal(err, "failed to create like")
	}
	return nil
}

// Delete removes a like by id.
func (r *LikeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Internal(err, "failed to delete like")
	}
	if res.DeletedCount == 0 {
		return apperror.New(apperror.ErrNotFound, "like not found")
	}
	return nil
}

// DeleteByTriple removes and returns the like for the unique triple.
func (r *LikeRepository) DeleteByTriple(ctx context.Context, userID, targetID string, targetType entity.ContentType) (*entity.Like, error) {
	filter := bson.M{
		"user_id":     userID,
		"target_id":   targetID,
		"target_type": targetType,
	}

	var like entity.Like
	err := r.collection.FindOneAndDelete(ctx, filter).Decode(&like)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.New(apperror.ErrNotFound, "like not found")
		}
		return nil, apperror.Internal(err, "failed to delete like")
	}
	return &like, nil
}

// GetByTriple retrieves the like for the unique triple.
func (r *LikeRepository) GetByTriple(ctx context.Context, userID, targetID string, targetType entity.ContentType) (*entity.Like, error) {
	filter := bson.M{
		"user_id":     userID,
		"target_id":   targetID,
		"target_type": targetType,
	}

	var like entity.Like
	err := r.collection.FindOne(ctx, filter).Decode(&like)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.New(apperror.ErrNotFound, "like not found")
		}
		return nil, apperror.Internal(err, "failed to retrieve like")
	}
	return &like, nil
}

// ListByTarget returns all likes on a target, newest first.
func (r *LikeRepository) ListByTarget(ctx context.Context, targetType entity.ContentType, targetID string) ([]*entity.Like, error) {
	filter := bson.M{"target_id": targetID, "target_type": targetType}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list likes")
	}
	defer cursor.Close(ctx)

	var likes []*entity.Like
	if err := cursor.All(ctx, &likes); err != nil {
		return nil, apperror.Internal(err, "failed to decode likes")
	}
	return likes, nil
}

// ListByUser returns the user's likes of one target type, newest first.
func (r *LikeRepository) ListByUser(ctx context.Context, userID string, targetType entity.ContentType) ([]*entity.Like, error) {
	filter := bson.M{"user_id": userID, "target_type": targetType}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list likes")
	}
	defer cursor.Close(ctx)

	var likes []*entity.Like
	if err := cursor.All(ctx, &likes); err != nil {
		return nil, apperror.Internal(err, "failed to decode likes")
	}
	return likes, nil
}
