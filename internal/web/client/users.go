package client

import (
	"context"
	"fmt"

	"parttimejobs/internal/dto"
)

type UserClient struct {
	base *Client
}

func (c *UserClient) List(ctx context.Context, token string) ([]dto.UserResponse, error) {
	var resp []dto.UserResponse
	if err := c.base.get(ctx, "/api/users", token, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *UserClient) Get(ctx context.Context, token string, id uint) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/users/%d", id), token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *UserClient) Update(ctx context.Context, token string, id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	if err := c.base.put(ctx, fmt.Sprintf("/api/users/%d", id), token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *UserClient) Delete(ctx context.Context, token string, id uint) error {
	return c.base.delete(ctx, fmt.Sprintf("/api/users/%d", id), token)
}
