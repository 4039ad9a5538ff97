package ui

import (
	"context"
	"net/http"

	"github.com/me/jobdesk/internal/auth"
	"github.com/me/jobdesk/pkg/jobportal"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext retrieves the signed-in user from the request context.
func UserFromContext(ctx context.Context) *jobportal.User {
	user, _ := ctx.Value(userContextKey).(*jobportal.User)
	return user
}

// RequireAuth gates a route on an authenticated session. While the
// session is still being restored it renders a neutral waiting page
// instead of redirecting, so a slow startup never bounces a signed-in
// user to the login form.
func (ui *UI) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := ui.sessions.Snapshot()

		switch sess.State() {
		case auth.StateInitializing:
			ui.render(w, "loading", map[string]any{"Title": "JobDesk"})
			return
		case auth.StateAnonymous:
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, sess.User)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole ensures the signed-in user has the given role. A
// mismatch sends the user home rather than to login: they are
// authenticated, just in the wrong area. Must run after RequireAuth.
func (ui *UI) RequireRole(role jobportal.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			if user == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			if user.Role != role {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
