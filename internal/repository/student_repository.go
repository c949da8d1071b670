package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parttimejobs/internal/model"
)

type StudentRepository struct {
	*Repository[model.Student]
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{Repository: NewRepository[model.Student](db)}
}

func (r *StudentRepository) GetAll(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.DB().WithContext(ctx).
		Preload("User").
		Preload("Applications").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *StudentRepository) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	err := r.DB().WithContext(ctx).
		Preload("User").
		Preload("Applications").
		First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) GetByMajor(ctx context.Context, major string) ([]model.Student, error) {
	var students []model.Student
	err := r.DB().WithContext(ctx).
		Preload("User").
		Preload("Applications").
		Where("major = ?", major).
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}

// CreateWithUser inserts the user and the student profile in one
// transaction, the profile keyed by the generated user id.
func (r *StudentRepository) CreateWithUser(ctx context.Context, user *model.User, student *model.Student) error {
	return r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		student.ID = user.ID
		return tx.Create(student).Error
	})
}
