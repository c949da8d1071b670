package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parttimejobs/internal/model"
)

// UserRepository adds user-specific finders over the generic repository.
type UserRepository struct {
	*Repository[model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository: NewRepository[model.User](db)}
}

// GetAll eagerly loads the role and both possible profiles for listing.
func (r *UserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.DB().WithContext(ctx).
		Preload("Role").
		Preload("Student").
		Preload("Employer").
		Order("created_at desc").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetWithRole fetches a user with its role and profile rows
func (r *UserRepository) GetWithRole(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.DB().WithContext(ctx).
		Preload("Role").
		Preload("Student").
		Preload("Employer").
		First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail fetches a user by email with its role loaded
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB().WithContext(ctx).
		Preload("Role").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// EmailExists reports whether a user with the given email exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.Any(ctx, "email = ?", email)
}
