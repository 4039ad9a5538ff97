package ui

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/me/jobdesk/internal/auth"
	"github.com/me/jobdesk/internal/store"
	"github.com/me/jobdesk/pkg/jobportal"
)

// portalStub serves just enough of the portal API to sign a user in.
type portalStub struct {
	mux      *http.ServeMux
	user     jobportal.User
	defaults map[string]http.HandlerFunc
}

func newPortalStub(role jobportal.Role) *portalStub {
	p := &portalStub{
		mux:  http.NewServeMux(),
		user: jobportal.User{ID: 1, Email: "a@b.com", Username: "alice", Role: role},
	}
	p.defaults = map[string]http.HandlerFunc{
		"/accounts/token/": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"access": "acc", "refresh": "ref"})
		},
		"/accounts/profile/": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, p.user)
		},
		"/accounts/employee-profiles/": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []jobportal.EmployeeProfile{})
		},
		"/accounts/company-profiles/": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []jobportal.CompanyProfile{})
		},
		"/accounts/logout/": func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"detail": "ok"})
		},
	}
	return p
}

// registerDefaults installs the stub's default handlers for every pattern a
// test has not already registered on the mux itself. Registering defaults
// last lets tests override endpoints without tripping ServeMux's duplicate
// registration panic.
func (p *portalStub) registerDefaults() {
	for pattern, fn := range p.defaults {
		if _, existing := p.mux.Handler(httptest.NewRequest(http.MethodGet, pattern, nil)); existing != pattern {
			p.mux.HandleFunc(pattern, fn)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// setupUI wires a UI over a stub portal and a fresh in-memory session.
func setupUI(t *testing.T, portal *portalStub) (*UI, *chi.Mux) {
	t.Helper()

	portal.registerDefaults()
	server := httptest.NewServer(portal.mux)
	t.Cleanup(server.Close)

	st, err := store.NewSQLiteStore(":memory:", slog.Default())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	client := jobportal.NewClient(jobportal.DefaultConfig().WithBaseURL(server.URL), nil)
	sessions := auth.NewManager(client, auth.NewTokenStore(st), slog.Default())

	ui := New(sessions, client, slog.Default(), Config{})
	router := chi.NewRouter()
	ui.RegisterRoutes(router)
	return ui, router
}

func signIn(t *testing.T, ui *UI) {
	t.Helper()
	if _, err := ui.sessions.Login(context.Background(), "a@b.com", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestRequireAuth_RendersWaitingPageWhileInitializing(t *testing.T) {
	_, router := setupUI(t, newPortalStub(jobportal.RoleEmployee))

	// No Resume has run, so the session is still restoring.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employee/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 waiting page, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "" {
		t.Errorf("must not redirect while restoring, got Location %q", loc)
	}
}

func TestRequireAuth_RedirectsAnonymousToLogin(t *testing.T) {
	ui, router := setupUI(t, newPortalStub(jobportal.RoleEmployee))
	ui.sessions.Resume(context.Background()) // no stored tokens -> anonymous

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employee/dashboard", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}
}

func TestRequireRole_WrongRoleGoesHome(t *testing.T) {
	ui, router := setupUI(t, newPortalStub(jobportal.RoleEmployee))
	signIn(t, ui)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employer/dashboard", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
}

func TestRequireRole_MatchingRolePasses(t *testing.T) {
	portal := newPortalStub(jobportal.RoleEmployee)
	portal.mux.HandleFunc("/applications/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []jobportal.Application{})
	})

	ui, router := setupUI(t, portal)
	signIn(t, ui)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/employee/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestLogout_EndsSession(t *testing.T) {
	ui, router := setupUI(t, newPortalStub(jobportal.RoleEmployee))
	signIn(t, ui)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/logout", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if got := ui.sessions.Snapshot().User; got != nil {
		t.Errorf("expected no user after logout, got %+v", got)
	}
}
