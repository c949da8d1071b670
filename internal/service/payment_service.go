package service

import (
	"context"
	"time"

	"parttimejobs/internal/apperr"
	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

type PaymentService struct {
	payments  PaymentRepo
	contracts ContractRepo
}

func NewPaymentService(payments PaymentRepo, contracts ContractRepo) *PaymentService {
	return &PaymentService{payments: payments, contracts: contracts}
}

func (s *PaymentService) List(ctx context.Context) ([]dto.PaymentResponse, error) {
	payments, err := s.payments.GetAll(ctx)
	if err != nil {
		return nil, apperr.Internal("listing payments", err)
	}
	return toPaymentResponses(payments), nil
}

func (s *PaymentService) Get(ctx context.Context, id uint) (*dto.PaymentResponse, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching payment", err)
	}
	if payment == nil {
		return nil, apperr.NotFound("Payment not found")
	}
	resp := toPaymentResponse(payment)
	return &resp, nil
}

func (s *PaymentService) ListByContract(ctx context.Context, contractID uint) ([]dto.PaymentResponse, error) {
	payments, err := s.payments.GetByContract(ctx, contractID)
	if err != nil {
		return nil, apperr.Internal("listing payments", err)
	}
	return toPaymentResponses(payments), nil
}

func (s *PaymentService) ListByStudent(ctx context.Context, studentID uint) ([]dto.PaymentResponse, error) {
	payments, err := s.payments.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, apperr.Internal("listing payments", err)
	}
	return toPaymentResponses(payments), nil
}

func (s *PaymentService) ListByStatus(ctx context.Context, status string) ([]dto.PaymentResponse, error) {
	payments, err := s.payments.GetByStatus(ctx, status)
	if err != nil {
		return nil, apperr.Internal("listing payments", err)
	}
	return toPaymentResponses(payments), nil
}

// Create records a payment against a contract. Rows start Pending; this is
// bookkeeping only, no processing happens.
func (s *PaymentService) Create(ctx context.Context, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	contract, err := s.contracts.GetByID(ctx, req.ContractID)
	if err != nil {
		return nil, apperr.Internal("fetching contract", err)
	}
	if contract == nil {
		return nil, apperr.NotFound("Contract not found")
	}

	payment := &model.Payment{
		ContractID:    req.ContractID,
		Amount:        req.Amount,
		PaymentDate:   time.Now(),
		PaymentMethod: req.PaymentMethod,
		Status:        model.PaymentStatusPending,
		Description:   req.Description,
	}
	if err := s.payments.Add(ctx, payment); err != nil {
		return nil, apperr.Internal("creating payment", err)
	}

	payment.Contract = *contract
	resp := toPaymentResponse(payment)
	return &resp, nil
}

// Update applies the provided fields only.
func (s *PaymentService) Update(ctx context.Context, id uint, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching payment", err)
	}
	if payment == nil {
		return nil, apperr.NotFound("Payment not found")
	}

	if req.Amount != nil {
		payment.Amount = *req.Amount
	}
	if req.PaymentMethod != nil {
		payment.PaymentMethod = req.PaymentMethod
	}
	if req.Status != nil {
		payment.Status = *req.Status
	}
	if req.Description != nil {
		payment.Description = req.Description
	}

	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, apperr.Internal("updating payment", err)
	}
	resp := toPaymentResponse(payment)
	return &resp, nil
}

func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	payment, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return apperr.Internal("fetching payment", err)
	}
	if payment == nil {
		return apperr.NotFound("Payment not found")
	}
	if err := s.payments.Delete(ctx, payment); err != nil {
		return apperr.Internal("deleting payment", err)
	}
	return nil
}

func toPaymentResponses(payments []model.Payment) []dto.PaymentResponse {
	out := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, toPaymentResponse(&payments[i]))
	}
	return out
}

func toPaymentResponse(p *model.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		PaymentID:     p.ID,
		ContractID:    p.ContractID,
		StudentName:   p.Contract.Application.Student.FullName,
		JobTitle:      p.Contract.Application.Job.Title,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate,
		PaymentMethod: p.PaymentMethod,
		Status:        p.Status,
		Description:   p.Description,
	}
}
