package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"parttimejobs/internal/model"
)

type JobRepository struct {
	*Repository[model.Job]
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{Repository: NewRepository[model.Job](db)}
}

func (r *JobRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.DB().WithContext(ctx).
		Preload("Employer").
		Preload("Category").
		Preload("Applications")
}

func (r *JobRepository) GetAll(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.withDetails(ctx).Order("posted_date desc").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	err := r.withDetails(ctx).First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// GetActive returns open jobs that have not expired
func (r *JobRepository) GetActive(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	err := r.withDetails(ctx).
		Where("status = ? AND (expiration_date IS NULL OR expiration_date > ?)",
			model.JobStatusOpen, time.Now()).
		Order("posted_date desc").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) GetByEmployer(ctx context.Context, employerID uint) ([]model.Job, error) {
	var jobs []model.Job
	err := r.withDetails(ctx).
		Where("employer_id = ?", employerID).
		Order("posted_date desc").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) GetByCategory(ctx context.Context, categoryID uint) ([]model.Job, error) {
	var jobs []model.Job
	err := r.withDetails(ctx).
		Where("category_id = ?", categoryID).
		Order("posted_date desc").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
