package service

import (
	"context"
	"fmt"
	"time"

	"parttimejobs/internal/apperr"
	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

type JobService struct {
	jobs         JobRepo
	employers    EmployerRepo
	categories   JobCategoryRepo
	applications ApplicationRepo
}

func NewJobService(jobs JobRepo, employers EmployerRepo, categories JobCategoryRepo, applications ApplicationRepo) *JobService {
	return &JobService{jobs: jobs, employers: employers, categories: categories, applications: applications}
}

func (s *JobService) List(ctx context.Context) ([]dto.JobResponse, error) {
	jobs, err := s.jobs.GetAll(ctx)
	if err != nil {
		return nil, apperr.Internal("listing jobs", err)
	}
	return toJobResponses(jobs), nil
}

// ListActive returns open jobs whose expiration date has not passed.
func (s *JobService) ListActive(ctx context.Context) ([]dto.JobResponse, error) {
	jobs, err := s.jobs.GetActive(ctx)
	if err != nil {
		return nil, apperr.Internal("listing jobs", err)
	}
	return toJobResponses(jobs), nil
}

func (s *JobService) ListByEmployer(ctx context.Context, employerID uint) ([]dto.JobResponse, error) {
	jobs, err := s.jobs.GetByEmployer(ctx, employerID)
	if err != nil {
		return nil, apperr.Internal("listing jobs", err)
	}
	return toJobResponses(jobs), nil
}

func (s *JobService) ListByCategory(ctx context.Context, categoryID uint) ([]dto.JobResponse, error) {
	jobs, err := s.jobs.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperr.Internal("listing jobs", err)
	}
	return toJobResponses(jobs), nil
}

func (s *JobService) Get(ctx context.Context, id uint) (*dto.JobResponse, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching job", err)
	}
	if job == nil {
		return nil, apperr.NotFound("Job not found")
	}
	resp := toJobResponse(job)
	return &resp, nil
}

// Create posts a new job. The posting starts Open regardless of input.
func (s *JobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	employer, err := s.employers.GetByID(ctx, req.EmployerID)
	if err != nil {
		return nil, apperr.Internal("fetching employer", err)
	}
	if employer == nil {
		return nil, apperr.NotFound("Employer not found")
	}

	if req.CategoryID != nil {
		category, err := s.categories.GetByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, apperr.Internal("fetching job category", err)
		}
		if category == nil {
			return nil, apperr.NotFound("Job category not found")
		}
	}

	job := &model.Job{
		EmployerID:     req.EmployerID,
		Title:          req.Title,
		Description:    req.Description,
		Salary:         req.Salary,
		Location:       req.Location,
		CategoryID:     req.CategoryID,
		PostedDate:     time.Now(),
		ExpirationDate: req.ExpirationDate,
		Status:         model.JobStatusOpen,
	}
	if err := s.jobs.Add(ctx, job); err != nil {
		return nil, apperr.Internal("creating job", err)
	}

	created, err := s.jobs.GetByID(ctx, job.ID)
	if err != nil || created == nil {
		resp := toJobResponse(job)
		return &resp, nil
	}
	resp := toJobResponse(created)
	return &resp, nil
}

func (s *JobService) Update(ctx context.Context, id uint, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching job", err)
	}
	if job == nil {
		return nil, apperr.NotFound("Job not found")
	}

	if req.CategoryID != nil {
		category, err := s.categories.GetByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, apperr.Internal("fetching job category", err)
		}
		if category == nil {
			return nil, apperr.NotFound("Job category not found")
		}
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Salary = req.Salary
	job.Location = req.Location
	job.CategoryID = req.CategoryID
	job.ExpirationDate = req.ExpirationDate
	job.Status = req.Status

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, apperr.Internal("updating job", err)
	}
	resp := toJobResponse(job)
	return &resp, nil
}

// Delete refuses while applications still reference the job.
func (s *JobService) Delete(ctx context.Context, id uint) error {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return apperr.Internal("fetching job", err)
	}
	if job == nil {
		return apperr.NotFound("Job not found")
	}

	count, err := s.applications.CountByJob(ctx, id)
	if err != nil {
		return apperr.Internal("counting applications", err)
	}
	if count > 0 {
		return apperr.Conflict(fmt.Sprintf("Cannot delete job. There are %d application(s) associated with this job.", count))
	}

	if err := s.jobs.Delete(ctx, job); err != nil {
		return apperr.Internal("deleting job", err)
	}
	return nil
}

func toJobResponses(jobs []model.Job) []dto.JobResponse {
	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobResponse(&jobs[i]))
	}
	return out
}

func toJobResponse(j *model.Job) dto.JobResponse {
	resp := dto.JobResponse{
		JobID:             j.ID,
		EmployerID:        j.EmployerID,
		EmployerName:      j.Employer.CompanyName,
		Title:             j.Title,
		Description:       j.Description,
		Salary:            j.Salary,
		Location:          j.Location,
		CategoryID:        j.CategoryID,
		PostedDate:        j.PostedDate,
		ExpirationDate:    j.ExpirationDate,
		Status:            j.Status,
		TotalApplications: len(j.Applications),
	}
	if j.Category != nil {
		resp.CategoryName = j.Category.CategoryName
	}
	return resp
}
