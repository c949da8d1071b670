package client

import (
	"context"
	"fmt"

	"parttimejobs/internal/dto"
)

type EmployerClient struct {
	base *Client
}

func (c *EmployerClient) List(ctx context.Context, token string) ([]dto.EmployerResponse, error) {
	var resp []dto.EmployerResponse
	if err := c.base.get(ctx, "/api/employers", token, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *EmployerClient) ListVerified(ctx context.Context) ([]dto.EmployerResponse, error) {
	var resp []dto.EmployerResponse
	if err := c.base.get(ctx, "/api/employers/verified", "", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *EmployerClient) Get(ctx context.Context, token string, id uint) (*dto.EmployerResponse, error) {
	var resp dto.EmployerResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/employers/%d", id), token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *EmployerClient) Update(ctx context.Context, token string, id uint, req *dto.UpdateEmployerRequest) (*dto.EmployerResponse, error) {
	var resp dto.EmployerResponse
	if err := c.base.put(ctx, fmt.Sprintf("/api/employers/%d", id), token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *EmployerClient) Delete(ctx context.Context, token string, id uint) error {
	return c.base.delete(ctx, fmt.Sprintf("/api/employers/%d", id), token)
}
