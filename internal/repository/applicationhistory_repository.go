package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parttimejobs/internal/model"
)

type ApplicationHistoryRepository struct {
	*Repository[model.ApplicationHistory]
}

func NewApplicationHistoryRepository(db *gorm.DB) *ApplicationHistoryRepository {
	return &ApplicationHistoryRepository{Repository: NewRepository[model.ApplicationHistory](db)}
}

func (r *ApplicationHistoryRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.DB().WithContext(ctx).
		Preload("Application").
		Preload("Application.Student").
		Preload("Application.Job")
}

func (r *ApplicationHistoryRepository) GetByID(ctx context.Context, id uint) (*model.ApplicationHistory, error) {
	var history model.ApplicationHistory
	err := r.withDetails(ctx).First(&history, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &history, nil
}

func (r *ApplicationHistoryRepository) GetByApplication(ctx context.Context, applicationID uint) ([]model.ApplicationHistory, error) {
	var histories []model.ApplicationHistory
	err := r.withDetails(ctx).
		Where("application_id = ?", applicationID).
		Order("changed_at desc").
		Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}
