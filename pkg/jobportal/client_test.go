package jobportal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(DefaultConfig().WithBaseURL(server.URL), nil)
	return client, server
}

func TestClient_Login(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/accounts/token/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not carry an Authorization header")
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["email"] != "a@b.com" || body["password"] != "secret" {
			t.Errorf("unexpected credentials %v", body)
		}

		json.NewEncoder(w).Encode(map[string]string{"access": "acc-1", "refresh": "ref-1"})
	})

	pair, err := client.Login(context.Background(), "a@b.com", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if pair.Access != "acc-1" || pair.Refresh != "ref-1" {
		t.Errorf("unexpected pair %+v", pair)
	}
}

func TestClient_BearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(User{ID: 1, Email: "a@b.com", Role: RoleEmployee})
	})

	// No token set: header must be absent.
	if _, err := client.Profile(context.Background()); err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}

	// Token set: Bearer header attached.
	client.SetToken("tok-123")
	if _, err := client.Profile(context.Background()); err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("expected Bearer tok-123, got %q", gotAuth)
	}

	// Cleared token: header absent again.
	client.SetToken("")
	if _, err := client.Profile(context.Background()); err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected cleared Authorization header, got %q", gotAuth)
	}
}

func TestClient_ErrorNormalization(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantField   string
		check       func(error) bool
	}{
		{
			name:        "detail message",
			status:      http.StatusBadRequest,
			body:        `{"detail":"Invalid credentials"}`,
			wantMessage: "Invalid credentials",
			check:       IsValidation,
		},
		{
			name:        "error message",
			status:      http.StatusForbidden,
			body:        `{"error":"Only employers can post jobs"}`,
			wantMessage: "Only employers can post jobs",
			check:       IsValidation,
		},
		{
			name:        "field errors",
			status:      http.StatusBadRequest,
			body:        `{"email":["Enter a valid email address."],"password":["This field is required."]}`,
			wantMessage: "email: Enter a valid email address.",
			wantField:   "password",
			check:       IsValidation,
		},
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"detail":"Token is invalid or expired"}`,
			wantMessage: "Token is invalid or expired",
			check:       IsUnauthorized,
		},
		{
			name:        "server fault",
			status:      http.StatusInternalServerError,
			body:        ``,
			wantMessage: "Internal Server Error",
			check:       IsServerFault,
		},
		{
			name:        "non-json body",
			status:      http.StatusBadGateway,
			body:        `<html>bad gateway</html>`,
			wantMessage: "<html>bad gateway</html>",
			check:       IsServerFault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.Profile(context.Background())
			if err == nil {
				t.Fatal("expected an error")
			}
			if !tt.check(err) {
				t.Errorf("error %v failed classification", err)
			}
			if got := ErrorMessage(err); got != tt.wantMessage {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.wantMessage)
			}
			if tt.wantField != "" {
				fields := FieldErrors(err)
				if _, ok := fields[tt.wantField]; !ok {
					t.Errorf("expected field error for %q, got %v", tt.wantField, fields)
				}
			}
		})
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Connection refused from here on.

	client := NewClient(DefaultConfig().WithBaseURL(server.URL), nil)
	_, err := client.Profile(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsNetwork(err) {
		t.Errorf("expected network classification for %v", err)
	}
	if IsUnauthorized(err) || IsValidation(err) || IsServerFault(err) {
		t.Errorf("network error misclassified: %v", err)
	}
}

func TestClient_JobsFilter(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobs/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("job_type") != "FULL_TIME" {
			t.Errorf("expected job_type filter, got %q", q.Get("job_type"))
		}
		if q.Get("location") != "Berlin" {
			t.Errorf("expected location filter, got %q", q.Get("location"))
		}
		json.NewEncoder(w).Encode([]Job{{ID: 7, Title: "Go Engineer"}})
	})

	jobs, err := client.Jobs(context.Background(), JobFilter{JobType: JobFullTime, Location: "Berlin"})
	if err != nil {
		t.Fatalf("Jobs failed: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != 7 {
		t.Errorf("unexpected jobs %+v", jobs)
	}
}

func TestClient_Apply(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobs/42/apply/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["cover_letter"] != "I would be a great fit." {
			t.Errorf("unexpected cover letter %q", body["cover_letter"])
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Application submitted successfully"})
	})

	if err := client.Apply(context.Background(), 42, "I would be a great fit."); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
}

func TestClient_UpdateEmployeeProfile_Multipart(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		if r.URL.Path != "/accounts/employee-profiles/3/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("skills"); got != "Go, SQL" {
			t.Errorf("unexpected skills %q", got)
		}
		file, header, err := r.FormFile("profile_image")
		if err != nil {
			t.Fatalf("missing profile_image part: %v", err)
		}
		defer file.Close()
		if header.Filename != "p.png" {
			t.Errorf("unexpected filename %q", header.Filename)
		}

		img := "/media/employee_profiles/p.png"
		json.NewEncoder(w).Encode(EmployeeProfile{ID: 3, Skills: "Go, SQL", ProfileImage: &img})
	})

	profile, err := client.UpdateEmployeeProfile(context.Background(), 3,
		map[string]string{"skills": "Go, SQL"},
		[]Upload{{Field: "profile_image", Filename: "p.png", Content: strings.NewReader("png-bytes")}},
	)
	if err != nil {
		t.Fatalf("UpdateEmployeeProfile failed: %v", err)
	}
	if profile.ProfileImage == nil || *profile.ProfileImage != "/media/employee_profiles/p.png" {
		t.Errorf("unexpected profile image %v", profile.ProfileImage)
	}
}

func TestApplicationStatus_CanWithdraw(t *testing.T) {
	tests := []struct {
		status ApplicationStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusReviewing, true},
		{StatusAccepted, false},
		{StatusRejected, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.CanWithdraw(); got != tt.want {
				t.Errorf("CanWithdraw() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenPair_IsZero(t *testing.T) {
	tests := []struct {
		name string
		pair TokenPair
		want bool
	}{
		{"both present", TokenPair{Access: "a", Refresh: "r"}, false},
		{"missing refresh", TokenPair{Access: "a"}, true},
		{"missing access", TokenPair{Refresh: "r"}, true},
		{"empty", TokenPair{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pair.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}
