package contract

import (
	"context"

	"github.com/melodix-app/melodix-backend/internal/domain/entity"
)

// IUserRepository is a read-only view of the user store, used to resolve
// actor profiles for engagement listings. Account management belongs to the
// auth service.
type IUserRepository interface {
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUsersByIDs fetches a batch of users keyed by id; missing ids are
	// simply absent from the map.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error)
}
