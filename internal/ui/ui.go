// Package ui is the server-rendered web front end: login and
// registration, the public job board, and the role-specific employer
// and employee dashboards. All domain data comes from the portal API
// through pkg/jobportal; the only local state is the session.
package ui

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/me/jobdesk/internal/auth"
	"github.com/me/jobdesk/pkg/jobportal"
)

// UI handles the web user interface.
type UI struct {
	sessions  *auth.Manager
	client    *jobportal.Client
	logger    *slog.Logger
	validate  *validator.Validate
	startTime time.Time

	googleClientID string // Empty hides the Google sign-in button.
}

// Config holds UI configuration.
type Config struct {
	GoogleClientID string
}

// New creates a new UI handler.
func New(sessions *auth.Manager, client *jobportal.Client, logger *slog.Logger, cfg Config) *UI {
	return &UI{
		sessions:       sessions,
		client:         client,
		logger:         logger.With("component", "ui"),
		validate:       validator.New(),
		startTime:      time.Now(),
		googleClientID: cfg.GoogleClientID,
	}
}

func (ui *UI) render(w http.ResponseWriter, template string, data map[string]any) {
	ui.renderStatus(w, http.StatusOK, template, data)
}

func (ui *UI) renderStatus(w http.ResponseWriter, status int, template string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := renderTemplate(&buf, template, data); err != nil {
		ui.logger.Error("template render failed", "template", template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (ui *UI) renderError(w http.ResponseWriter, message string, err error) {
	ui.logger.Error(message, "error", err)
	ui.renderStatus(w, http.StatusInternalServerError, "error", map[string]any{
		"Title":   "Error - JobDesk",
		"Message": message,
		"Detail":  jobportal.ErrorMessage(err),
	})
}

func (ui *UI) renderNotFound(w http.ResponseWriter, message string) {
	ui.renderStatus(w, http.StatusNotFound, "error", map[string]any{
		"Title":   "Not Found - JobDesk",
		"Message": message,
	})
}

// pageData seeds the template data every page shares.
func (ui *UI) pageData(title string) map[string]any {
	sess := ui.sessions.Snapshot()
	return map[string]any{
		"Title":          title,
		"User":           sess.User,
		"GoogleClientID": ui.googleClientID,
	}
}
