package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"parttimejobs/internal/dto"
)

type StudentClient struct {
	base *Client
}

func (c *StudentClient) Get(ctx context.Context, token string, id uint) (*dto.StudentResponse, error) {
	var resp dto.StudentResponse
	if err := c.base.get(ctx, fmt.Sprintf("/api/students/%d", id), token, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *StudentClient) Update(ctx context.Context, token string, id uint, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	var resp dto.StudentResponse
	if err := c.base.put(ctx, fmt.Sprintf("/api/students/%d", id), token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadCV relays a multipart file to the API under the "file" field.
func (c *StudentClient) UploadCV(ctx context.Context, token string, id uint, filename string, file io.Reader) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copying file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/api/students/%d/upload-cv", c.base.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.base.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	return nil
}
