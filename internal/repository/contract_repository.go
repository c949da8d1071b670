package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parttimejobs/internal/model"
)

type ContractRepository struct {
	*Repository[model.Contract]
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{Repository: NewRepository[model.Contract](db)}
}

func (r *ContractRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.DB().WithContext(ctx).
		Preload("Application").
		Preload("Application.Student").
		Preload("Application.Job").
		Preload("Application.Job.Employer").
		Preload("Payments")
}

func (r *ContractRepository) GetAll(ctx context.Context) ([]model.Contract, error) {
	var contracts []model.Contract
	if err := r.withDetails(ctx).Order("created_at desc").Find(&contracts).Error; err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id uint) (*model.Contract, error) {
	var contract model.Contract
	err := r.withDetails(ctx).First(&contract, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contract, nil
}

func (r *ContractRepository) GetByApplicationID(ctx context.Context, applicationID uint) (*model.Contract, error) {
	var contract model.Contract
	err := r.withDetails(ctx).Where("application_id = ?", applicationID).First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contract, nil
}

func (r *ContractRepository) GetActive(ctx context.Context) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.withDetails(ctx).
		Where("status = ?", model.ContractStatusActive).
		Order("created_at desc").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *ContractRepository) GetByStudent(ctx context.Context, studentID uint) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.withDetails(ctx).
		Joins("JOIN applications ON applications.id = contracts.application_id").
		Where("applications.student_id = ?", studentID).
		Order("contracts.created_at desc").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *ContractRepository) GetByEmployer(ctx context.Context, employerID uint) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.withDetails(ctx).
		Joins("JOIN applications ON applications.id = contracts.application_id").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID).
		Order("contracts.created_at desc").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

// HasContractForApplication reports whether a contract already references the application
func (r *ContractRepository) HasContractForApplication(ctx context.Context, applicationID uint) (bool, error) {
	return r.Any(ctx, "application_id = ?", applicationID)
}
