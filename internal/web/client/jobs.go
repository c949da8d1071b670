package client

import (
	"context"
	"fmt"

	"parttimejobs/internal/dto"
)

type JobCategoryClient struct {
	base *Client
}

func (c *JobCategoryClient) List(ctx context.Context) ([]dto.JobCategoryResponse, error) {
	var resp []dto.JobCategoryResponse
	if err := c.base.get(ctx, "/api/jobcategories", "", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *JobCategoryClient) Create(ctx context.Context, token string, req *dto.CreateJobCategoryRequest) (*dto.JobCategoryResponse, error) {
	var resp dto.JobCategoryResponse
	if err := c.base.post(ctx, "/api/jobcategories", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type JobClient struct {
	base *Client
}

func (c *JobClient) List(ctx context.Context) ([]dto.JobResponse, error) {
	var resp []dto.JobResponse
	if err := c.base.get(ctx, "/api/jobs", "", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *JobClient) ListActive(ctx context.Context) ([]dto.JobResponse, error) {
	var resp []dto.JobResponse
	if err := c.base.get(ctx, "/api/jobs/active", "", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *JobClient) ListByEmployer(ctx context.Context, employerID uint) ([]dto.JobResponse, error) {
	var resp []dto.JobResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/jobs/employer/%d", employerID), "", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *JobClient) Get(ctx context.Context, id uint) (*dto.JobResponse, error) {
	var resp dto.JobResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/jobs/%d", id), "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *JobClient) Create(ctx context.Context, token string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	var resp dto.JobResponse
	if err := c.base.post(ctx, "/api/jobs", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *JobClient) Update(ctx context.Context, token string, id uint, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	var resp dto.JobResponse
	if err := c.base.put(ctx, fmt.Sprintf("/api/jobs/%d", id), token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *JobClient) Delete(ctx context.Context, token string, id uint) error {
	return c.base.delete(ctx, fmt.Sprintf("/api/jobs/%d", id), token)
}
