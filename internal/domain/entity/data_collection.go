package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
)

// MaxCollectionItems caps the number of items stored in one collection
const MaxCollectionItems = 1000

// UserDataCollection is a named set of key/value items gathered for a user, usually by a chat tool
type UserDataCollection struct {
	ID        uint64
	UserID    uint64
	Name      string
	Source    string // session id or "manual"
	Items     []UserDataCollectionItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserDataCollectionItem is one entry in a collection
type UserDataCollectionItem struct {
	ID           uint64
	CollectionID uint64
	Key          string
	Value        string
	Position     int
}

// NewUserDataCollection validates and builds a collection with positioned items
func NewUserDataCollection(userID uint64, name, source string, items map[string]string, order []string) (*UserDataCollection, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	v := errs.NewValidationError()
	name = strings.TrimSpace(name)
	if name == "" {
		v.Add("name", "is required")
	}
	if len(items) > MaxCollectionItems {
		v.Add("items", "too many items")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	c := &UserDataCollection{UserID: userID, Name: name, Source: source}
	for i, key := range order {
		val, ok := items[key]
		if !ok {
			continue
		}
		c.Items = append(c.Items, UserDataCollectionItem{Key: key, Value: val, Position: i})
	}
	return c, nil
}
