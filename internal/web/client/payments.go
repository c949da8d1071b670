package client

import (
	"context"
	"fmt"

	"parttimejobs/internal/dto"
)

type PaymentClient struct {
	base *Client
}

func (c *PaymentClient) ListByContract(ctx context.Context, token string, contractID uint) ([]dto.PaymentResponse, error) {
	var resp []dto.PaymentResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/payments/contract/%d", contractID), token, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *PaymentClient) ListByStudent(ctx context.Context, token string, studentID uint) ([]dto.PaymentResponse, error) {
	var resp []dto.PaymentResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/payments/student/%d", studentID), token, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *PaymentClient) Create(ctx context.Context, token string, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	var resp dto.PaymentResponse
	if err := c.base.post(ctx, "/api/payments", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *PaymentClient) Update(ctx context.Context, token string, id uint, req *dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	var resp dto.PaymentResponse
	if err := c.base.put(ctx, fmt.Sprintf("/api/payments/%d", id), token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *PaymentClient) Delete(ctx context.Context, token string, id uint) error {
	return c.base.delete(ctx, fmt.Sprintf("/api/payments/%d", id), token)
}
