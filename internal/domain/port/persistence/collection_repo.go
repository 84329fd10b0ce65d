package persistence

import (
	"context"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
)

// DataCollectionRepository stores user data collections with their items
type DataCollectionRepository interface {
	// ListByUser returns collections without items
	ListByUser(ctx context.Context, userID uint64) ([]*entity.UserDataCollection, error)

	// Get returns a collection with its items
	//
	// Possible errors:
	// - ErrNotFound: If the collection doesn't exist or belongs to another user
	Get(ctx context.Context, userID, id uint64) (*entity.UserDataCollection, error)

	// Save upserts a collection by user and name and replaces its items
	Save(ctx context.Context, c *entity.UserDataCollection) error

	// Delete removes a collection and its items
	Delete(ctx context.Context, userID, id uint64) error
}
