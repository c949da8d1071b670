package client

import (
	"context"
	"fmt"

	"parttimejobs/internal/dto"
)

type ApplicationClient struct {
	base *Client
}

func (c *ApplicationClient) List(ctx context.Context, token string) ([]dto.ApplicationResponse, error) {
	var resp []dto.ApplicationResponse
	if err := c.base.get(ctx, "/api/applications", token, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *ApplicationClient) Get(ctx context.Context, token string, id uint) (*dto.ApplicationResponse, error) {
	var resp dto.ApplicationResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/applications/%d", id), token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *ApplicationClient) ListByStudent(ctx context.Context, token string, studentID uint) ([]dto.ApplicationResponse, error) {
	var resp []dto.ApplicationResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/applications/student/%d", studentID), token, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *ApplicationClient) ListByJob(ctx context.Context, token string, jobID uint) ([]dto.ApplicationResponse, error) {
	var resp []dto.ApplicationResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/applications/job/%d", jobID), token, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *ApplicationClient) Create(ctx context.Context, token string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	var resp dto.ApplicationResponse
	if err := c.base.post(ctx, "/api/applications", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *ApplicationClient) UpdateStatus(ctx context.Context, token string, id uint, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	var resp dto.ApplicationResponse
	if err := c.base.patch(ctx, fmt.Sprintf("/api/applications/%d/status", id), token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *ApplicationClient) Delete(ctx context.Context, token string, id uint) error {
	return c.base.delete(ctx, fmt.Sprintf("/api/applications/%d", id), token)
}

type ApplicationHistoryClient struct {
	base *Client
}

func (c *ApplicationHistoryClient) ListByApplication(ctx context.Context, token string, applicationID uint) ([]dto.ApplicationHistoryResponse, error) {
	var resp []dto.ApplicationHistoryResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/applicationhistories/application/%d", applicationID), token, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *ApplicationHistoryClient) Create(ctx context.Context, token string, req *dto.CreateApplicationHistoryRequest) (*dto.ApplicationHistoryResponse, error) {
	var resp dto.ApplicationHistoryResponse
	if err := c.base.post(ctx, "/api/applicationhistories", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
