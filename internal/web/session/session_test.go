package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parttimejobs/internal/dto"
	"parttimejobs/pkg/config"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(&config.WebConfig{
		SessionSecret: "test-session-secret",
		SessionDir:    t.TempDir(),
		SessionMaxAge: 2 * time.Hour,
	})
}

// roundTrip replays the cookies set by a previous response on a new request.
func roundTrip(rec *httptest.ResponseRecorder, path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestSignInAndCurrent(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	err := m.SignIn(rec, req, &dto.AuthResponse{
		UserID: 7,
		Email:  "anna@example.com",
		Role:   "Student",
		Token:  "jwt-token",
	})
	require.NoError(t, err)

	auth := m.Current(roundTrip(rec, "/"))
	assert.True(t, auth.LoggedIn())
	assert.Equal(t, "jwt-token", auth.Token)
	assert.Equal(t, uint(7), auth.UserID)
	assert.Equal(t, "anna@example.com", auth.Email)
	assert.Equal(t, "Student", auth.Role)
}

func TestCurrent_Anonymous(t *testing.T) {
	m := newTestManager(t)

	auth := m.Current(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, auth.LoggedIn())
	assert.Empty(t, auth.Token)
}

func TestSignOutClearsSession(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.SignIn(rec, req, &dto.AuthResponse{UserID: 7, Token: "jwt-token"}))

	signedIn := roundTrip(rec, "/logout")
	outRec := httptest.NewRecorder()
	require.NoError(t, m.SignOut(outRec, signedIn))

	auth := m.Current(roundTrip(outRec, "/"))
	assert.False(t, auth.LoggedIn())
}

func TestFlashesDrainOnce(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
	m.Flash(rec, req, "Job posted.")

	next := roundTrip(rec, "/my-jobs")
	popRec := httptest.NewRecorder()
	flashes := m.PopFlashes(popRec, next)
	require.Equal(t, []string{"Job posted."}, flashes)

	// Draining leaves nothing for the page after.
	again := m.PopFlashes(httptest.NewRecorder(), roundTrip(popRec, "/my-jobs"))
	assert.Empty(t, again)
}

func TestLoggedIn_NilAuth(t *testing.T) {
	var auth *Auth
	assert.False(t, auth.LoggedIn())
}
