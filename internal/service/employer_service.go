package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"parttimejobs/internal/apperr"
	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

type EmployerService struct {
	employers EmployerRepo
	users     UserRepo
}

func NewEmployerService(employers EmployerRepo, users UserRepo) *EmployerService {
	return &EmployerService{employers: employers, users: users}
}

func (s *EmployerService) List(ctx context.Context) ([]dto.EmployerResponse, error) {
	employers, err := s.employers.GetAll(ctx)
	if err != nil {
		return nil, apperr.Internal("listing employers", err)
	}
	out := make([]dto.EmployerResponse, 0, len(employers))
	for i := range employers {
		out = append(out, toEmployerResponse(&employers[i]))
	}
	return out, nil
}

func (s *EmployerService) ListVerified(ctx context.Context) ([]dto.EmployerResponse, error) {
	employers, err := s.employers.GetVerified(ctx)
	if err != nil {
		return nil, apperr.Internal("listing employers", err)
	}
	out := make([]dto.EmployerResponse, 0, len(employers))
	for i := range employers {
		out = append(out, toEmployerResponse(&employers[i]))
	}
	return out, nil
}

func (s *EmployerService) Get(ctx context.Context, id uint) (*dto.EmployerResponse, error) {
	employer, err := s.employers.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching employer", err)
	}
	if employer == nil {
		return nil, apperr.NotFound("Employer not found")
	}
	resp := toEmployerResponse(employer)
	return &resp, nil
}

// Create registers an employer account. New employers start unverified.
func (s *EmployerService) Create(ctx context.Context, req *dto.CreateEmployerRequest) (*dto.EmployerResponse, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal("checking email", err)
	}
	if exists {
		return nil, apperr.Conflict("Email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("hashing password", err)
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		RoleID:       model.RoleIDEmployer,
		IsActive:     true,
	}
	employer := &model.Employer{
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		TaxCode:     req.TaxCode,
	}
	if err := s.employers.CreateWithUser(ctx, user, employer); err != nil {
		return nil, apperr.Internal("creating employer", err)
	}

	employer.User = *user
	resp := toEmployerResponse(employer)
	return &resp, nil
}

func (s *EmployerService) Update(ctx context.Context, id uint, req *dto.UpdateEmployerRequest) (*dto.EmployerResponse, error) {
	employer, err := s.employers.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching employer", err)
	}
	if employer == nil {
		return nil, apperr.NotFound("Employer not found")
	}

	employer.CompanyName = req.CompanyName
	employer.ContactName = req.ContactName
	employer.PhoneNumber = req.PhoneNumber
	employer.Address = req.Address
	employer.TaxCode = req.TaxCode
	employer.IsVerified = req.IsVerified

	if err := s.employers.Update(ctx, employer); err != nil {
		return nil, apperr.Internal("updating employer", err)
	}
	resp := toEmployerResponse(employer)
	return &resp, nil
}

func (s *EmployerService) Delete(ctx context.Context, id uint) error {
	employer, err := s.employers.GetByID(ctx, id)
	if err != nil {
		return apperr.Internal("fetching employer", err)
	}
	if employer == nil {
		return apperr.NotFound("Employer not found")
	}
	if err := s.employers.Delete(ctx, employer); err != nil {
		return apperr.Internal("deleting employer", err)
	}
	return nil
}

func toEmployerResponse(e *model.Employer) dto.EmployerResponse {
	return dto.EmployerResponse{
		EmployerID:  e.ID,
		Email:       e.User.Email,
		CompanyName: e.CompanyName,
		ContactName: e.ContactName,
		PhoneNumber: e.PhoneNumber,
		Address:     e.Address,
		TaxCode:     e.TaxCode,
		IsVerified:  e.IsVerified,
		IsActive:    e.User.IsActive,
		CreatedAt:   e.User.CreatedAt,
		TotalJobs:   len(e.Jobs),
	}
}
