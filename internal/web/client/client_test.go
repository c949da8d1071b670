package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parttimejobs/internal/dto"
	"parttimejobs/pkg/config"
)

func testAPI(t *testing.T, handler http.Handler) (*API, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	api := NewAPI(&config.WebConfig{
		APIBaseURL:    server.URL,
		ClientTimeout: 5 * time.Second,
	})
	return api, server
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	api, _ := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))

	_, err := api.Users.List(context.Background(), "my-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer my-token", gotAuth)
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	api, _ := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))

	_, err := api.Jobs.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientDecodesResponse(t *testing.T) {
	api, _ := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/jobs/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jobId": 7, "title": "Cashier", "status": "Open"}`))
	}))

	job, err := api.Jobs.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), job.JobID)
	assert.Equal(t, "Cashier", job.Title)
}

func TestClientSurfacesAPIErrorMessage(t *testing.T) {
	api, _ := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message": "Student has already applied to this job"}`))
	}))

	_, err := api.Applications.Create(context.Background(), "token", &dto.CreateApplicationRequest{StudentID: 1, JobID: 2})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Student has already applied to this job", apiErr.Message)
	assert.Equal(t, "Student has already applied to this job", MessageOf(err))
}

func TestClientFallsBackToStatusText(t *testing.T) {
	api, _ := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))

	_, err := api.Jobs.Get(context.Background(), 1)
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestIsNotFound(t *testing.T) {
	api, _ := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Job not found"}`))
	}))

	_, err := api.Jobs.Get(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(nil))
}

func TestClientDeleteNoContent(t *testing.T) {
	api, _ := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, api.Jobs.Delete(context.Background(), "token", 7))
}

func TestAuthGetUser(t *testing.T) {
	api, _ := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/user/7", r.URL.Path)
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"userId": 7, "email": "admin@example.com", "role": "Admin", "isActive": true}`))
	}))

	user, err := api.Auth.GetUser(context.Background(), "my-token", 7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), user.UserID)
	assert.Equal(t, "Admin", user.Role)
}

func TestCategoryCreate(t *testing.T) {
	api, _ := testAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/jobcategories", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"categoryId": 3, "categoryName": "Tutoring"}`))
	}))

	category, err := api.Categories.Create(context.Background(), "my-token", &dto.CreateJobCategoryRequest{CategoryName: "Tutoring"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), category.CategoryID)
	assert.Equal(t, "Tutoring", category.CategoryName)
}

func TestMessageOfGenericError(t *testing.T) {
	assert.Equal(t, "Something went wrong. Please try again.", MessageOf(context.Canceled))
}
