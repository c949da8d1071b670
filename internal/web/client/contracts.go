package client

import (
	"context"
	"fmt"

	"parttimejobs/internal/dto"
)

type ContractClient struct {
	base *Client
}

func (c *ContractClient) List(ctx context.Context, token string) ([]dto.ContractResponse, error) {
	var resp []dto.ContractResponse
	if err := c.base.get(ctx, "/api/contracts", token, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *ContractClient) Get(ctx context.Context, token string, id uint) (*dto.ContractResponse, error) {
	var resp dto.ContractResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/contracts/%d", id), token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *ContractClient) ListByStudent(ctx context.Context, token string, studentID uint) ([]dto.ContractResponse, error) {
	var resp []dto.ContractResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/contracts/student/%d", studentID), token, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *ContractClient) ListByEmployer(ctx context.Context, token string, employerID uint) ([]dto.ContractResponse, error) {
	var resp []dto.ContractResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/contracts/employer/%d", employerID), token, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *ContractClient) Create(ctx context.Context, token string, req *dto.CreateContractRequest) (*dto.ContractResponse, error) {
	var resp dto.ContractResponse
	if err := c.base.post(ctx, "/api/contracts", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *ContractClient) Update(ctx context.Context, token string, id uint, req *dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	var resp dto.ContractResponse
	if err := c.base.put(ctx, fmt.Sprintf("/api/contracts/%d", id), token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *ContractClient) Delete(ctx context.Context, token string, id uint) error {
	return c.base.delete(ctx, fmt.Sprintf("/api/contracts/%d", id), token)
}
