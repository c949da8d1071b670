package service

import (
	"context"
	"time"

	"parttimejobs/internal/apperr"
	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

type ApplicationService struct {
	applications ApplicationRepo
	students     StudentRepo
	jobs         JobRepo
}

func NewApplicationService(applications ApplicationRepo, students StudentRepo, jobs JobRepo) *ApplicationService {
	return &ApplicationService{applications: applications, students: students, jobs: jobs}
}

func (s *ApplicationService) List(ctx context.Context) ([]dto.ApplicationResponse, error) {
	applications, err := s.applications.GetAll(ctx)
	if err != nil {
		return nil, apperr.Internal("listing applications", err)
	}
	return toApplicationResponses(applications), nil
}

func (s *ApplicationService) Get(ctx context.Context, id uint) (*dto.ApplicationResponse, error) {
	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching application", err)
	}
	if application == nil {
		return nil, apperr.NotFound("Application not found")
	}
	resp := toApplicationResponse(application)
	return &resp, nil
}

func (s *ApplicationService) ListByStudent(ctx context.Context, studentID uint) ([]dto.ApplicationResponse, error) {
	applications, err := s.applications.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, apperr.Internal("listing applications", err)
	}
	return toApplicationResponses(applications), nil
}

func (s *ApplicationService) ListByJob(ctx context.Context, jobID uint) ([]dto.ApplicationResponse, error) {
	applications, err := s.applications.GetByJob(ctx, jobID)
	if err != nil {
		return nil, apperr.Internal("listing applications", err)
	}
	return toApplicationResponses(applications), nil
}

// Create submits an application. A student can apply to a job once.
func (s *ApplicationService) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, apperr.Internal("fetching student", err)
	}
	if student == nil {
		return nil, apperr.NotFound("Student not found")
	}

	job, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, apperr.Internal("fetching job", err)
	}
	if job == nil {
		return nil, apperr.NotFound("Job not found")
	}

	applied, err := s.applications.HasStudentApplied(ctx, req.StudentID, req.JobID)
	if err != nil {
		return nil, apperr.Internal("checking existing application", err)
	}
	if applied {
		return nil, apperr.Conflict("Student has already applied to this job")
	}

	application := &model.Application{
		StudentID:       req.StudentID,
		JobID:           req.JobID,
		ApplicationDate: time.Now(),
		CoverLetter:     req.CoverLetter,
		Status:          model.ApplicationStatusPending,
	}
	if err := s.applications.Add(ctx, application); err != nil {
		return nil, apperr.Internal("creating application", err)
	}

	created, err := s.applications.GetByID(ctx, application.ID)
	if err != nil || created == nil {
		resp := toApplicationResponse(application)
		return &resp, nil
	}
	resp := toApplicationResponse(created)
	return &resp, nil
}

// UpdateStatus sets the application status. Any allow-listed value is
// accepted regardless of the current one, and no history row is written;
// the audit table is fed only through its own create endpoint.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uint, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching application", err)
	}
	if application == nil {
		return nil, apperr.NotFound("Application not found")
	}

	application.Status = req.Status
	if err := s.applications.Update(ctx, application); err != nil {
		return nil, apperr.Internal("updating application", err)
	}
	resp := toApplicationResponse(application)
	return &resp, nil
}

func (s *ApplicationService) Delete(ctx context.Context, id uint) error {
	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return apperr.Internal("fetching application", err)
	}
	if application == nil {
		return apperr.NotFound("Application not found")
	}
	if err := s.applications.Delete(ctx, application); err != nil {
		return apperr.Internal("deleting application", err)
	}
	return nil
}

func toApplicationResponses(applications []model.Application) []dto.ApplicationResponse {
	out := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		out = append(out, toApplicationResponse(&applications[i]))
	}
	return out
}

func toApplicationResponse(a *model.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ApplicationID:   a.ID,
		StudentID:       a.StudentID,
		StudentName:     a.Student.FullName,
		JobID:           a.JobID,
		JobTitle:        a.Job.Title,
		EmployerName:    a.Job.Employer.CompanyName,
		ApplicationDate: a.ApplicationDate,
		CoverLetter:     a.CoverLetter,
		Status:          a.Status,
	}
}
