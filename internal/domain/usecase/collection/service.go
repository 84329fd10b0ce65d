package collection

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/usecase"
)

// Service implements usecase.CollectionUseCase
type Service struct {
	repo         persistence.DataCollectionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new collection service
func NewService(repo persistence.DataCollectionRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{repo: repo, timeProvider: timeProvider, logger: logger}
}

func (s *Service) ListCollections(ctx context.Context, userID uint64) ([]*entity.UserDataCollection, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) GetCollection(ctx context.Context, userID, id uint64) (*entity.UserDataCollection, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.repo.Get(ctx, userID, id)
}

// SaveCollection stores the items under name, replacing an existing collection with the same name.
// Later duplicates of a key overwrite the value but keep the first position.
func (s *Service) SaveCollection(ctx context.Context, userID uint64, name, source string, items []usecase.CollectionItemInput) (*entity.UserDataCollection, error) {
	values := make(map[string]string, len(items))
	order := make([]string, 0, len(items))
	v := errs.NewValidationError()
	for _, item := range items {
		key := strings.TrimSpace(item.Key)
		if key == "" {
			v.Add("items", "keys must not be empty")
			continue
		}
		if _, seen := values[key]; !seen {
			order = append(order, key)
		}
		values[key] = item.Value
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}
	if source == "" {
		source = "manual"
	}

	c, err := entity.NewUserDataCollection(userID, name, source, values, order)
	if err != nil {
		return nil, err
	}
	now := s.timeProvider.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.repo.Save(ctx, c); err != nil {
		s.logger.Error("Failed to save data collection", map[string]any{
			"user_id": userID,
			"name":    c.Name,
			"error":   err.Error(),
		})
		return nil, err
	}
	s.logger.Info("Data collection saved", map[string]any{
		"user_id":       userID,
		"collection_id": c.ID,
		"items":         len(c.Items),
	})
	return c, nil
}

func (s *Service) DeleteCollection(ctx context.Context, userID, id uint64) error {
	if userID == 0 {
		return errs.ErrInvalidUserID
	}
	return s.repo.Delete(ctx, userID, id)
}
