package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parttimejobs/internal/model"
)

type ApplicationRepository struct {
	*Repository[model.Application]
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{Repository: NewRepository[model.Application](db)}
}

func (r *ApplicationRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.DB().WithContext(ctx).
		Preload("Student").
		Preload("Job").
		Preload("Job.Employer")
}

func (r *ApplicationRepository) GetAll(ctx context.Context) ([]model.Application, error) {
	var applications []model.Application
	if err := r.withDetails(ctx).Order("application_date desc").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint) (*model.Application, error) {
	var application model.Application
	err := r.withDetails(ctx).First(&application, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepository) GetByStudent(ctx context.Context, studentID uint) ([]model.Application, error) {
	var applications []model.Application
	err := r.withDetails(ctx).
		Where("student_id = ?", studentID).
		Order("application_date desc").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *ApplicationRepository) GetByJob(ctx context.Context, jobID uint) ([]model.Application, error) {
	var applications []model.Application
	err := r.withDetails(ctx).
		Where("job_id = ?", jobID).
		Order("application_date desc").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// HasStudentApplied reports whether the (student, job) pair already exists
func (r *ApplicationRepository) HasStudentApplied(ctx context.Context, studentID, jobID uint) (bool, error) {
	return r.Any(ctx, "student_id = ? AND job_id = ?", studentID, jobID)
}

// CountByJob counts applications referencing a job
func (r *ApplicationRepository) CountByJob(ctx context.Context, jobID uint) (int64, error) {
	return r.Count(ctx, "job_id = ?", jobID)
}
