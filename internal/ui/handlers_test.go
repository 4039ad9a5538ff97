package ui

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/me/jobdesk/pkg/jobportal"
)

func postForm(router http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleLoginPost_BadCredentials(t *testing.T) {
	portal := newPortalStub(jobportal.RoleEmployee)
	portal.mux.HandleFunc("/accounts/token/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid credentials"})
	})
	_, router := setupUI(t, portal)

	rec := postForm(router, "/login", url.Values{
		"email":    {"a@b.com"},
		"password": {"wrong"},
	})

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid credentials") {
		t.Error("expected the portal message on the page")
	}
	// The typed email survives the round trip.
	if !strings.Contains(rec.Body.String(), "a@b.com") {
		t.Error("expected the email to be retained")
	}
}

func TestHandleLoginPost_Success(t *testing.T) {
	ui, router := setupUI(t, newPortalStub(jobportal.RoleEmployer))

	rec := postForm(router, "/login", url.Values{
		"email":    {"a@b.com"},
		"password": {"secret"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/employer/dashboard" {
		t.Errorf("employer must land on the employer dashboard, got %q", loc)
	}
	if ui.sessions.Snapshot().User == nil {
		t.Error("expected a signed-in session")
	}
}

func TestHandleRegisterPost_InvalidForm(t *testing.T) {
	_, router := setupUI(t, newPortalStub(jobportal.RoleEmployee))

	rec := postForm(router, "/register", url.Values{
		"email":    {"not-an-email"},
		"username": {"al"},
		"password": {"short"},
		"role":     {"EMPLOYEE"},
	})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Enter a valid email address") {
		t.Error("expected the email validation message")
	}
	if !strings.Contains(body, "Must be at least 8 characters") {
		t.Error("expected the password validation message")
	}
}

func TestHandleRegisterPost_Success(t *testing.T) {
	portal := newPortalStub(jobportal.RoleEmployee)
	portal.mux.HandleFunc("/accounts/register/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusCreated, portal.user)
	})
	ui, router := setupUI(t, portal)

	rec := postForm(router, "/register", url.Values{
		"email":    {"a@b.com"},
		"username": {"alice"},
		"password": {"supersecret"},
		"role":     {"EMPLOYEE"},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("registration must land on login, got %q", loc)
	}
	if ui.sessions.Snapshot().User != nil {
		t.Error("registration must not sign the user in")
	}
}

func TestHandleJobList_Filters(t *testing.T) {
	portal := newPortalStub(jobportal.RoleEmployee)
	portal.mux.HandleFunc("/jobs/", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("job_type"); got != "CONTRACT" {
			t.Errorf("job_type = %q, want CONTRACT", got)
		}
		if got := r.URL.Query().Get("location"); got != "Berlin" {
			t.Errorf("location = %q, want Berlin", got)
		}
		writeJSON(w, http.StatusOK, []jobportal.Job{
			{ID: 4, Title: "Platform Engineer", CompanyName: "Acme", Location: "Berlin", JobType: jobportal.JobContract},
		})
	})
	_, router := setupUI(t, portal)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs?job_type=CONTRACT&location=Berlin", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Platform Engineer") {
		t.Error("expected the job title on the page")
	}
}

func TestHandleApplyPost(t *testing.T) {
	portal := newPortalStub(jobportal.RoleEmployee)
	applied := false
	portal.mux.HandleFunc("/jobs/4/apply/", func(w http.ResponseWriter, r *http.Request) {
		applied = true
		writeJSON(w, http.StatusCreated, map[string]string{"detail": "Application submitted"})
	})
	ui, router := setupUI(t, portal)
	signIn(t, ui)

	rec := postForm(router, "/jobs/4/apply", url.Values{
		"cover_letter": {"I have shipped several production Go services and would love to join."},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/jobs/4?applied=1" {
		t.Errorf("expected confirmation redirect, got %q", loc)
	}
	if !applied {
		t.Error("expected the application to reach the portal")
	}
}

func TestHandleApplyPost_EmployerBlocked(t *testing.T) {
	ui, router := setupUI(t, newPortalStub(jobportal.RoleEmployer))
	signIn(t, ui)

	rec := postForm(router, "/jobs/4/apply", url.Values{
		"cover_letter": {"An employer should never be able to apply to a posting."},
	})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect home, got %q", loc)
	}
}

func TestHandleJobDetail_NotFound(t *testing.T) {
	portal := newPortalStub(jobportal.RoleEmployee)
	portal.mux.HandleFunc("/jobs/99/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
	})
	_, router := setupUI(t, portal)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/99", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleGoogleLoginPost(t *testing.T) {
	portal := newPortalStub(jobportal.RoleEmployee)
	portal.mux.HandleFunc("/accounts/google/login/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, jobportal.GoogleLoginResult{
			Access: "g-acc", Refresh: "g-ref", User: portal.user,
		})
	})
	ui, router := setupUI(t, portal)

	rec := postForm(router, "/login/google", url.Values{"credential": {"opaque"}})

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/employee/dashboard" {
		t.Errorf("expected redirect to the employee dashboard, got %q", loc)
	}
	if ui.sessions.Snapshot().User == nil {
		t.Error("expected a signed-in session")
	}
}

func TestTemplates_AllParse(t *testing.T) {
	for name, content := range templates {
		if _, err := template.New(name).Funcs(templateFuncs).Parse(content); err != nil {
			t.Errorf("template %s failed to parse: %v", name, err)
		}
	}
}
