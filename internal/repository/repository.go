package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository is a generic gorm-backed data-access layer. Per-entity
// repositories embed it and override reads that need eager loading.
//
// Read methods return (nil, nil) when the row does not exist; the service
// layer decides whether that is an error.
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a generic repository for an entity type
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// GetByID fetches an entity by primary key
func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetAll fetches all entities
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Find fetches all entities matching a condition
func (r *Repository[T]) Find(ctx context.Context, query interface{}, args ...interface{}) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Where(query, args...).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// GetSingleOrDefault fetches the first entity matching a condition, or nil
func (r *Repository[T]) GetSingleOrDefault(ctx context.Context, query interface{}, args ...interface{}) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Add inserts an entity and populates its generated key
func (r *Repository[T]) Add(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// AddRange inserts a batch of entities
func (r *Repository[T]) AddRange(ctx context.Context, entities []T) error {
	if len(entities) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entities).Error
}

// Update saves all fields of an entity
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete removes an entity
func (r *Repository[T]) Delete(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Delete(entity).Error
}

// DeleteRange removes a batch of entities
func (r *Repository[T]) DeleteRange(ctx context.Context, entities []T) error {
	if len(entities) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&entities).Error
}

// Count counts entities, optionally matching a condition
func (r *Repository[T]) Count(ctx context.Context, query interface{}, args ...interface{}) (int64, error) {
	var entity T
	var count int64
	tx := r.db.WithContext(ctx).Model(&entity)
	if query != nil {
		tx = tx.Where(query, args...)
	}
	if err := tx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Any reports whether any entity matches a condition
func (r *Repository[T]) Any(ctx context.Context, query interface{}, args ...interface{}) (bool, error) {
	count, err := r.Count(ctx, query, args...)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DB exposes the raw gorm handle as an escape hatch for queries the
// generic surface cannot express.
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}
