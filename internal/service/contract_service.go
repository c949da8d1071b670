package service

import (
	"context"
	"time"

	"parttimejobs/internal/apperr"
	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

type ContractService struct {
	contracts    ContractRepo
	applications ApplicationRepo
}

func NewContractService(contracts ContractRepo, applications ApplicationRepo) *ContractService {
	return &ContractService{contracts: contracts, applications: applications}
}

func (s *ContractService) List(ctx context.Context) ([]dto.ContractResponse, error) {
	contracts, err := s.contracts.GetAll(ctx)
	if err != nil {
		return nil, apperr.Internal("listing contracts", err)
	}
	return toContractResponses(contracts), nil
}

func (s *ContractService) ListActive(ctx context.Context) ([]dto.ContractResponse, error) {
	contracts, err := s.contracts.GetActive(ctx)
	if err != nil {
		return nil, apperr.Internal("listing contracts", err)
	}
	return toContractResponses(contracts), nil
}

func (s *ContractService) ListByStudent(ctx context.Context, studentID uint) ([]dto.ContractResponse, error) {
	contracts, err := s.contracts.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, apperr.Internal("listing contracts", err)
	}
	return toContractResponses(contracts), nil
}

func (s *ContractService) ListByEmployer(ctx context.Context, employerID uint) ([]dto.ContractResponse, error) {
	contracts, err := s.contracts.GetByEmployer(ctx, employerID)
	if err != nil {
		return nil, apperr.Internal("listing contracts", err)
	}
	return toContractResponses(contracts), nil
}

func (s *ContractService) Get(ctx context.Context, id uint) (*dto.ContractResponse, error) {
	contract, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching contract", err)
	}
	if contract == nil {
		return nil, apperr.NotFound("Contract not found")
	}
	resp := toContractResponse(contract)
	return &resp, nil
}

func (s *ContractService) GetByApplication(ctx context.Context, applicationID uint) (*dto.ContractResponse, error) {
	contract, err := s.contracts.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, apperr.Internal("fetching contract", err)
	}
	if contract == nil {
		return nil, apperr.NotFound("Contract not found for this application")
	}
	resp := toContractResponse(contract)
	return &resp, nil
}

// Create formalizes an application into a contract. One contract per
// application; the contract starts Active.
func (s *ContractService) Create(ctx context.Context, req *dto.CreateContractRequest) (*dto.ContractResponse, error) {
	application, err := s.applications.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, apperr.Internal("fetching application", err)
	}
	if application == nil {
		return nil, apperr.NotFound("Application not found")
	}

	exists, err := s.contracts.HasContractForApplication(ctx, req.ApplicationID)
	if err != nil {
		return nil, apperr.Internal("checking existing contract", err)
	}
	if exists {
		return nil, apperr.Conflict("A contract already exists for this application")
	}

	contract := &model.Contract{
		ApplicationID: req.ApplicationID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		SalaryAgreed:  req.SalaryAgreed,
		ContractFile:  req.ContractFile,
		Status:        model.ContractStatusActive,
		CreatedAt:     time.Now(),
	}
	if err := s.contracts.Add(ctx, contract); err != nil {
		return nil, apperr.Internal("creating contract", err)
	}

	contract.Application = *application
	resp := toContractResponse(contract)
	return &resp, nil
}

// Update applies the provided fields only; absent fields keep their value.
func (s *ContractService) Update(ctx context.Context, id uint, req *dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	contract, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching contract", err)
	}
	if contract == nil {
		return nil, apperr.NotFound("Contract not found")
	}

	if req.EndDate != nil {
		contract.EndDate = req.EndDate
	}
	if req.SalaryAgreed != nil {
		contract.SalaryAgreed = *req.SalaryAgreed
	}
	if req.ContractFile != nil {
		contract.ContractFile = req.ContractFile
	}
	if req.Status != nil {
		contract.Status = *req.Status
	}

	if err := s.contracts.Update(ctx, contract); err != nil {
		return nil, apperr.Internal("updating contract", err)
	}
	resp := toContractResponse(contract)
	return &resp, nil
}

func (s *ContractService) Delete(ctx context.Context, id uint) error {
	contract, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return apperr.Internal("fetching contract", err)
	}
	if contract == nil {
		return apperr.NotFound("Contract not found")
	}
	if err := s.contracts.Delete(ctx, contract); err != nil {
		return apperr.Internal("deleting contract", err)
	}
	return nil
}

func toContractResponses(contracts []model.Contract) []dto.ContractResponse {
	out := make([]dto.ContractResponse, 0, len(contracts))
	for i := range contracts {
		out = append(out, toContractResponse(&contracts[i]))
	}
	return out
}

func toContractResponse(c *model.Contract) dto.ContractResponse {
	var totalPaid float64
	for i := range c.Payments {
		if c.Payments[i].Status == model.PaymentStatusCompleted {
			totalPaid += c.Payments[i].Amount
		}
	}
	return dto.ContractResponse{
		ContractID:    c.ID,
		ApplicationID: c.ApplicationID,
		StudentID:     c.Application.StudentID,
		StudentName:   c.Application.Student.FullName,
		JobID:         c.Application.JobID,
		JobTitle:      c.Application.Job.Title,
		EmployerName:  c.Application.Job.Employer.CompanyName,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		SalaryAgreed:  c.SalaryAgreed,
		ContractFile:  c.ContractFile,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		TotalPayments: len(c.Payments),
		TotalPaid:     totalPaid,
	}
}
