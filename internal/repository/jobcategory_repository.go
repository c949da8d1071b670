package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parttimejobs/internal/model"
)

type JobCategoryRepository struct {
	*Repository[model.JobCategory]
}

func NewJobCategoryRepository(db *gorm.DB) *JobCategoryRepository {
	return &JobCategoryRepository{Repository: NewRepository[model.JobCategory](db)}
}

func (r *JobCategoryRepository) GetAll(ctx context.Context) ([]model.JobCategory, error) {
	var categories []model.JobCategory
	if err := r.DB().WithContext(ctx).Preload("Jobs").Order("category_name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *JobCategoryRepository) GetByID(ctx context.Context, id uint) (*model.JobCategory, error) {
	var category model.JobCategory
	err := r.DB().WithContext(ctx).Preload("Jobs").First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *JobCategoryRepository) NameExists(ctx context.Context, name string) (bool, error) {
	return r.Any(ctx, "category_name = ?", name)
}
