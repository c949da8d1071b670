package client

import (
	"context"
	"fmt"

	"parttimejobs/internal/dto"
)

type AuthClient struct {
	base *Client
}

func (c *AuthClient) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.base.post(ctx, "/api/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *AuthClient) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	var resp dto.AuthResponse
	if err := c.base.post(ctx, "/api/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *AuthClient) GetUser(ctx context.Context, token string, id uint) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/auth/user/%d", id), token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *AuthClient) ChangePassword(ctx context.Context, token string, userID uint, req *dto.ChangePasswordRequest) error {
	return c.base.post(ctx, fmt.Sprintf("/api/auth/change-password/%d", userID), token, req, nil)
}
