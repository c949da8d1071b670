package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parttimejobs/internal/model"
)

type PaymentRepository struct {
	*Repository[model.Payment]
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{Repository: NewRepository[model.Payment](db)}
}

func (r *PaymentRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.DB().WithContext(ctx).
		Preload("Contract").
		Preload("Contract.Application").
		Preload("Contract.Application.Student").
		Preload("Contract.Application.Job")
}

func (r *PaymentRepository) GetAll(ctx context.Context) ([]model.Payment, error) {
	var payments []model.Payment
	if err := r.withDetails(ctx).Order("payment_date desc").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*model.Payment, error) {
	var payment model.Payment
	err := r.withDetails(ctx).First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) GetByContract(ctx context.Context, contractID uint) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.withDetails(ctx).
		Where("contract_id = ?", contractID).
		Order("payment_date desc").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) GetByStudent(ctx context.Context, studentID uint) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.withDetails(ctx).
		Joins("JOIN contracts ON contracts.id = payments.contract_id").
		Joins("JOIN applications ON applications.id = contracts.application_id").
		Where("applications.student_id = ?", studentID).
		Order("payments.payment_date desc").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) GetByStatus(ctx context.Context, status string) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.withDetails(ctx).
		Where("status = ?", status).
		Order("payment_date desc").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
