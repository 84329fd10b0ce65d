package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// DataCollectionRepository implements DataCollectionRepository interface using GORM
type DataCollectionRepository struct {
	db     *gorm.DB
	logger coreport.Logger
	errors dbErrorHandler
}

// NewDataCollectionRepository creates a new DataCollectionRepository instance
func NewDataCollectionRepository(db *gorm.DB, logger coreport.Logger) *DataCollectionRepository {
	return &DataCollectionRepository{
		db:     db,
		logger: logger,
		errors: newDBErrorHandler(logger, errs.ErrNotFound, errs.ErrConstraintViolation),
	}
}

func collectionToEntity(m *model.DataCollection) *entity.UserDataCollection {
	c := &entity.UserDataCollection{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Source:    m.Source,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for _, item := range m.Items {
		c.Items = append(c.Items, entity.UserDataCollectionItem{
			ID:           item.ID,
			CollectionID: item.CollectionID,
			Key:          item.Key,
			Value:        item.Value,
			Position:     item.Position,
		})
	}
	return c
}

// ListByUser returns collections without items, most recently updated first
func (r *DataCollectionRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.UserDataCollection, error) {
	var rows []model.DataCollection
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("updated_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, r.errors.handle("listing collections", err, map[string]any{"user_id": userID})
	}

	result := make([]*entity.UserDataCollection, 0, len(rows))
	for i := range rows {
		result = append(result, collectionToEntity(&rows[i]))
	}
	return result, nil
}

// Get returns a collection with its items in position order
func (r *DataCollectionRepository) Get(ctx context.Context, userID, id uint64) (*entity.UserDataCollection, error) {
	var m model.DataCollection
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m).Error
	if err != nil {
		return nil, r.errors.handle("getting collection", err, map[string]any{
			"user_id":       userID,
			"collection_id": id,
		})
	}
	return collectionToEntity(&m), nil
}

// Save upserts a collection by user and name and replaces its items
func (r *DataCollectionRepository) Save(ctx context.Context, c *entity.UserDataCollection) error {
	fields := map[string]any{
		"user_id": c.UserID,
		"name":    c.Name,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.DataCollection
		err := tx.Where("user_id = ? AND name = ?", c.UserID, c.Name).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			existing = model.DataCollection{
				UserID:    c.UserID,
				Name:      c.Name,
				Source:    c.Source,
				CreatedAt: c.CreatedAt,
				UpdatedAt: c.UpdatedAt,
			}
			if err := tx.Omit("Items").Create(&existing).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			err := tx.Model(&model.DataCollection{}).
				Where("id = ?", existing.ID).
				Updates(map[string]any{
					"source":     c.Source,
					"updated_at": c.UpdatedAt,
				}).Error
			if err != nil {
				return err
			}
			if err := tx.Where("collection_id = ?", existing.ID).Delete(&model.DataCollectionItem{}).Error; err != nil {
				return err
			}
		}

		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
		if len(c.Items) == 0 {
			return nil
		}

		items := make([]model.DataCollectionItem, 0, len(c.Items))
		for _, item := range c.Items {
			items = append(items, model.DataCollectionItem{
				CollectionID: existing.ID,
				Key:          item.Key,
				Value:        item.Value,
				Position:     item.Position,
			})
		}
		if err := tx.CreateInBatches(&items, 200).Error; err != nil {
			return err
		}
		for i := range items {
			c.Items[i].ID = items[i].ID
			c.Items[i].CollectionID = existing.ID
		}
		return nil
	})
	if err != nil {
		return r.errors.handle("saving collection", err, fields)
	}

	r.logger.Debug("Collection saved", map[string]any{
		"collection_id": c.ID,
		"items":         len(c.Items),
	})
	return nil
}

// Delete removes a collection and its items
func (r *DataCollectionRepository) Delete(ctx context.Context, userID, id uint64) error {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id IN (?)",
			tx.Model(&model.DataCollection{}).Select("id").Where("id = ? AND user_id = ?", id, userID),
		).Delete(&model.DataCollectionItem{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.DataCollection{})
		deleted = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return r.errors.handle("deleting collection", err, map[string]any{"collection_id": id})
	}
	if deleted == 0 {
		return errs.ErrNotFound
	}
	return nil
}
