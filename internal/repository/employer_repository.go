package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parttimejobs/internal/model"
)

type EmployerRepository struct {
	*Repository[model.Employer]
}

func NewEmployerRepository(db *gorm.DB) *EmployerRepository {
	return &EmployerRepository{Repository: NewRepository[model.Employer](db)}
}

func (r *EmployerRepository) GetAll(ctx context.Context) ([]model.Employer, error) {
	var employers []model.Employer
	err := r.DB().WithContext(ctx).
		Preload("User").
		Preload("Jobs").
		Find(&employers).Error
	if err != nil {
		return nil, err
	}
	return employers, nil
}

func (r *EmployerRepository) GetByID(ctx context.Context, id uint) (*model.Employer, error) {
	var employer model.Employer
	err := r.DB().WithContext(ctx).
		Preload("User").
		Preload("Jobs").
		First(&employer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employer, nil
}

func (r *EmployerRepository) GetVerified(ctx context.Context) ([]model.Employer, error) {
	var employers []model.Employer
	err := r.DB().WithContext(ctx).
		Preload("User").
		Preload("Jobs").
		Where("is_verified = ?", true).
		Find(&employers).Error
	if err != nil {
		return nil, err
	}
	return employers, nil
}

// CreateWithUser inserts the user and the employer profile in one
// transaction, the profile keyed by the generated user id.
func (r *EmployerRepository) CreateWithUser(ctx context.Context, user *model.User, employer *model.Employer) error {
	return r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		employer.ID = user.ID
		return tx.Create(employer).Error
	})
}
