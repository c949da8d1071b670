package controller

import (
	"net/http"

	"parttimejobs/internal/web/session"
)

// RequireAuth redirects anonymous visitors to the login page.
func RequireAuth(sm *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sm.Current(r).LoggedIn() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole sends signed-in users with the wrong role to the
// access-denied page. Must be mounted inside RequireAuth.
func RequireRole(sm *session.Manager, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := sm.Current(r)
			if !auth.LoggedIn() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			for _, role := range roles {
				if auth.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Redirect(w, r, "/access-denied", http.StatusSeeOther)
		})
	}
}
