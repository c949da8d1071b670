// Package session keeps the API bearer token and the signed-in user's
// identity server-side, in a gorilla FilesystemStore, so only an opaque
// session id ever reaches the browser.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"

	"parttimejobs/internal/dto"
	"parttimejobs/pkg/config"
)

const (
	sessionName = "ptj_session"

	keyToken  = "token"
	keyUserID = "user_id"
	keyEmail  = "email"
	keyRole   = "role"
	keyFlash  = "_flash"
)

// Auth is the signed-in state read from the session.
type Auth struct {
	Token  string
	UserID uint
	Email  string
	Role   string
}

func (a *Auth) LoggedIn() bool {
	return a != nil && a.Token != ""
}

// Manager wraps the session store behind a typed surface.
type Manager struct {
	store *sessions.FilesystemStore
}

func NewManager(cfg *config.WebConfig) *Manager {
	store := sessions.NewFilesystemStore(cfg.SessionDir, []byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.SessionMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	// FilesystemStore limits values to 4KB by default; tokens fit but keep
	// headroom for flashes.
	store.MaxLength(8192)
	return &Manager{store: store}
}

// Current reads the signed-in state. Returns an empty Auth when the
// session is absent or expired.
func (m *Manager) Current(r *http.Request) *Auth {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return &Auth{}
	}
	auth := &Auth{}
	if v, ok := session.Values[keyToken].(string); ok {
		auth.Token = v
	}
	if v, ok := session.Values[keyUserID].(uint); ok {
		auth.UserID = v
	}
	if v, ok := session.Values[keyEmail].(string); ok {
		auth.Email = v
	}
	if v, ok := session.Values[keyRole].(string); ok {
		auth.Role = v
	}
	return auth
}

// SignIn stores the login result in a fresh session.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, resp *dto.AuthResponse) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values[keyToken] = resp.Token
	session.Values[keyUserID] = resp.UserID
	session.Values[keyEmail] = resp.Email
	session.Values[keyRole] = resp.Role
	return session.Save(r, w)
}

// SignOut clears the session.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	session.Options.MaxAge = -1
	session.Values = map[interface{}]interface{}{}
	return session.Save(r, w)
}

// Flash queues a one-time message shown on the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, msg string) {
	session, _ := m.store.Get(r, sessionName)
	session.AddFlash(msg, keyFlash)
	_ = session.Save(r, w)
}

// PopFlashes drains the queued flash messages.
func (m *Manager) PopFlashes(w http.ResponseWriter, r *http.Request) []string {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return nil
	}
	raw := session.Flashes(keyFlash)
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save(r, w)
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
