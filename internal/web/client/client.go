// Package client wraps the REST API with typed per-resource clients. All
// of them share one base client that does the JSON round-trips, attaches
// the caller's bearer token and surfaces the API's error messages.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"parttimejobs/pkg/config"
)

// APIError carries the status code and the message body of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an API 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// MessageOf returns the API's message for an error, or a generic fallback.
func MessageOf(err error) string {
	if apiErr, ok := err.(*APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}

// Client is the shared HTTP base for the resource clients.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg *config.WebConfig) *Client {
	return &Client{
		baseURL: cfg.APIBaseURL,
		http:    &http.Client{Timeout: cfg.ClientTimeout},
	}
}

// do performs one JSON round-trip. A nil body sends no payload; a nil out
// discards the response body. Non-2xx responses decode into APIError.
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// decodeError pulls the {"message": ...} body out of a failed response.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func (c *Client) get(ctx context.Context, path, token string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

func (c *Client) post(ctx context.Context, path, token string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, token, body, out)
}

func (c *Client) put(ctx context.Context, path, token string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, token, body, out)
}

func (c *Client) patch(ctx context.Context, path, token string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, token, body, out)
}

func (c *Client) delete(ctx context.Context, path, token string) error {
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

// API bundles the typed resource clients around one shared base.
type API struct {
	Auth         *AuthClient
	Users        *UserClient
	Students     *StudentClient
	Employers    *EmployerClient
	Categories   *JobCategoryClient
	Jobs         *JobClient
	Applications *ApplicationClient
	Histories    *ApplicationHistoryClient
	Contracts    *ContractClient
	Payments     *PaymentClient
}

func NewAPI(cfg *config.WebConfig) *API {
	base := New(cfg)
	return &API{
		Auth:         &AuthClient{base},
		Users:        &UserClient{base},
		Students:     &StudentClient{base},
		Employers:    &EmployerClient{base},
		Categories:   &JobCategoryClient{base},
		Jobs:         &JobClient{base},
		Applications: &ApplicationClient{base},
		Histories:    &ApplicationHistoryClient{base},
		Contracts:    &ContractClient{base},
		Payments:     &PaymentClient{base},
	}
}
