package mongodb

import (
	"context"
	"errors"

	"github.com/melodix-app/melodix-backend/internal/domain/apperror"
	"github.com/melodix-app/melodix-backend/internal/domain/contract"
	"github.com/melodix-app/melodix-backend/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository is a read-only MongoDB view of the users collection, used
// to join actor profiles onto engagement listings. The auth service owns
// writes to this collection.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates and returns a new UserRepository instance.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

var _ contract.IUserRepository = (*UserRepository)(nil)

// GetUserByID retrieves a single user by id.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.New(apperror.ErrNotFound, "user not found")
		}
		return nil, apperror.Internal(err, "failed to retrieve user")
	}
	return &user, nil
}

// GetUsersByIDs fetches a batch of users keyed by id. Missing ids are
// simply absent from the map.
func (r *UserRepository) GetUsersByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	users := make(map[string]*entity.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, apperror.Internal(err, "failed to fetch users")
	}
	defer cursor.Close(ctx)

	var list []*entity.User
	if err := cursor.All(ctx, &list); err != nil {
		return nil, apperror.Internal(err, "failed to decode users")
	}
	for _, u := range list {
		users[u.ID] = u
	}
	return users, nil
}
