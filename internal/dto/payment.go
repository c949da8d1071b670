package dto

import "time"

type CreatePaymentRequest struct {
	ContractID    uint    `json:"contractId" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod *string `json:"paymentMethod,omitempty" validate:"omitempty,max=50"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=250"`
}

type UpdatePaymentRequest struct {
	Amount        *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	PaymentMethod *string  `json:"paymentMethod,omitempty" validate:"omitempty,max=50"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=Pending Completed Failed Refunded"`
	Description   *string  `json:"description,omitempty" validate:"omitempty,max=250"`
}

type PaymentResponse struct {
	PaymentID     uint      `json:"paymentId"`
	ContractID    uint      `json:"contractId"`
	StudentName   string    `json:"studentName"`
	JobTitle      string    `json:"jobTitle"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"paymentDate"`
	PaymentMethod *string   `json:"paymentMethod,omitempty"`
	Status        string    `json:"status"`
	Description   *string   `json:"description,omitempty"`
}
