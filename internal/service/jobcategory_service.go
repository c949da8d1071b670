package service

import (
	"context"

	"parttimejobs/internal/apperr"
	"parttimejobs/internal/dto"
	"parttimejobs/internal/model"
)

type JobCategoryService struct {
	categories JobCategoryRepo
}

func NewJobCategoryService(categories JobCategoryRepo) *JobCategoryService {
	return &JobCategoryService{categories: categories}
}

func (s *JobCategoryService) List(ctx context.Context) ([]dto.JobCategoryResponse, error) {
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, apperr.Internal("listing job categories", err)
	}
	out := make([]dto.JobCategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, toJobCategoryResponse(&categories[i]))
	}
	return out, nil
}

func (s *JobCategoryService) Get(ctx context.Context, id uint) (*dto.JobCategoryResponse, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching job category", err)
	}
	if category == nil {
		return nil, apperr.NotFound("Job category not found")
	}
	resp := toJobCategoryResponse(category)
	return &resp, nil
}

func (s *JobCategoryService) Create(ctx context.Context, req *dto.CreateJobCategoryRequest) (*dto.JobCategoryResponse, error) {
	exists, err := s.categories.NameExists(ctx, req.CategoryName)
	if err != nil {
		return nil, apperr.Internal("checking category name", err)
	}
	if exists {
		return nil, apperr.Conflict("Category name already exists")
	}

	category := &model.JobCategory{CategoryName: req.CategoryName}
	if err := s.categories.Add(ctx, category); err != nil {
		return nil, apperr.Internal("creating job category", err)
	}
	resp := toJobCategoryResponse(category)
	return &resp, nil
}

func (s *JobCategoryService) Update(ctx context.Context, id uint, req *dto.UpdateJobCategoryRequest) (*dto.JobCategoryResponse, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("fetching job category", err)
	}
	if category == nil {
		return nil, apperr.NotFound("Job category not found")
	}

	if req.CategoryName != category.CategoryName {
		exists, err := s.categories.NameExists(ctx, req.CategoryName)
		if err != nil {
			return nil, apperr.Internal("checking category name", err)
		}
		if exists {
			return nil, apperr.Conflict("Category name already exists")
		}
	}

	category.CategoryName = req.CategoryName
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, apperr.Internal("updating job category", err)
	}
	resp := toJobCategoryResponse(category)
	return &resp, nil
}

func (s *JobCategoryService) Delete(ctx context.Context, id uint) error {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return apperr.Internal("fetching job category", err)
	}
	if category == nil {
		return apperr.NotFound("Job category not found")
	}
	if err := s.categories.Delete(ctx, category); err != nil {
		return apperr.Internal("deleting job category", err)
	}
	return nil
}

func toJobCategoryResponse(c *model.JobCategory) dto.JobCategoryResponse {
	return dto.JobCategoryResponse{
		CategoryID:   c.ID,
		CategoryName: c.CategoryName,
		TotalJobs:    len(c.Jobs),
	}
}
