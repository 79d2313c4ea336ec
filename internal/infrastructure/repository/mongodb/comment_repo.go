package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/domain/contract"
	"github.com/melodix-app/melodix-backend/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentRepository is the MongoDB implementation of ICommentRepository.
type CommentRepository struct {
	collection *mongo.Collection
}

// NewCommentRepository creates and returns a new CommentRepository instance.
func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{
		collection: db.Collection("comments"),
	}
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

// Create inserts a new comment record.
func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	_, err := r.collection.InsertOne(ctx, comment)
	if err != nil {
		return apperror.Internal(err, "failed to create comment")
	}
	return nil
}

// GetByID retrieves a single comment by its id.
func (r *CommentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.New(apperror.ErrNotFound, "comment not found")
		}
		return nil, apperror.Internal(err, "failed to retrieve comment")
	}
	return &comment, nil
}

// UpdateContent replaces the comment body in place.
func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) error {
	update := bson.M{"$set": bson.M{
		"content":    content,
		"updated_at": time.Now(),
	}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return apperror.Internal(err, "failed to update comment")
	}
	if res.MatchedCount == 0 {
		return apperror.New(apperror.ErrNotFound, "comment not found")
	}
	return nil
}

// Delete removes a comment by id.
func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Internal(err, "failed to delete comment")
	}
	if res.DeletedCount == 0 {
		return apperror.New(apperror.ErrNotFound, "comment not found")
	}
	return nil
}

// ListByTarget returns all comments on a target, newest first.
func (r *CommentRepository) ListByTarget(ctx context.Context, targetType entity.ContentType, targetID string) ([]*entity.Comment, error) {
	filter := bson.M{"target_id": targetID, "target_type": targetType}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list comments")
	}
	defer cursor.Close(ctx)

	var comments []*entity.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, apperror.Internal(err, "failed to decode comments")
	}
	return comments, nil
}
