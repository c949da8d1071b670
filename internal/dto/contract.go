package dto

import "time"

type CreateContractRequest struct {
	ApplicationID uint       `json:"applicationId" validate:"required"`
	StartDate     time.Time  `json:"startDate" validate:"required"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	SalaryAgreed  float64    `json:"salaryAgreed" validate:"gte=0"`
	ContractFile  *string    `json:"contractFile,omitempty" validate:"omitempty,max=256"`
}

type UpdateContractRequest struct {
	EndDate      *time.Time `json:"endDate,omitempty"`
	SalaryAgreed *float64   `json:"salaryAgreed,omitempty" validate:"omitempty,gte=0"`
	ContractFile *string    `json:"contractFile,omitempty" validate:"omitempty,max=256"`
	Status       *string    `json:"status,omitempty" validate:"omitempty,oneof=Active Completed Terminated"`
}

type ContractResponse struct {
	ContractID    uint       `json:"contractId"`
	ApplicationID uint       `json:"applicationId"`
	StudentID     uint       `json:"studentId"`
	StudentName   string     `json:"studentName"`
	JobID         uint       `json:"jobId"`
	JobTitle      string     `json:"jobTitle"`
	EmployerName  string     `json:"employerName"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	SalaryAgreed  float64    `json:"salaryAgreed"`
	ContractFile  *string    `json:"contractFile,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	TotalPayments int        `json:"totalPayments"`
	TotalPaid     float64    `json:"totalPaid"`
}
