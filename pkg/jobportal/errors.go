package jobportal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Sentinel errors for common failure scenarios.
var (
	// ErrNotAuthenticated indicates no access token is configured.
	ErrNotAuthenticated = errors.New("not authenticated: no access token")
)

// Error is the normalized failure shape for every client operation.
// Transport failures, auth rejections, validation errors and server
// faults all surface as *Error; raw transport errors never escape.
type Error struct {
	// Op is the operation that failed, e.g. "login" or "jobs.list".
	Op string

	// Status is the HTTP status code. Zero means the request never
	// produced a response (network failure, timeout, cancellation).
	Status int

	// Message is a human-readable description extracted from the
	// server's structured error payload when one was present.
	Message string

	// Fields maps field names to validation messages for 4xx
	// responses carrying a field-error payload.
	Fields map[string][]string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Status == 0 && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: HTTP %d: %s", e.Op, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s: HTTP %d", e.Op, e.Status)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNetwork reports whether the error is a transport-level failure
// that produced no server response.
func IsNetwork(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == 0
}

// IsUnauthorized reports whether the server rejected the credentials
// or token (HTTP 401).
func IsUnauthorized(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Status == http.StatusUnauthorized
	}
	return errors.Is(err, ErrNotAuthenticated)
}

// IsNotFound reports whether the requested resource does not exist
// (HTTP 404).
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == http.StatusNotFound
}

// IsValidation reports whether the error is a 4xx response other than
// 401, typically carrying field errors or a rejection message.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) &&
		e.Status >= 400 && e.Status < 500 && e.Status != http.StatusUnauthorized
}

// IsServerFault reports whether the server itself failed (HTTP 5xx).
func IsServerFault(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Status >= 500
}

// ErrorMessage extracts a display message from any client error.
// Falls back to err.Error() for errors that are not *Error.
func ErrorMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Status == 0 {
		return "could not reach the server"
	}
	return fmt.Sprintf("request failed (HTTP %d)", e.Status)
}

// FieldErrors returns the field-error map from a validation error,
// or nil when the error carries none.
func FieldErrors(err error) map[string][]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// wrapError wraps a transport-level error with operation context.
func wrapError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}

// parseErrorBody converts a non-2xx response body into an *Error.
//
// The portal answers with one of three shapes: {"detail": "..."} for
// auth rejections, {"error": "..."} for business-rule rejections, or
// a {field: ["msg", ...]} map for serializer validation failures.
func parseErrorBody(op string, status int, body []byte) *Error {
	apiErr := &Error{Op: op, Status: status}
	if len(body) == 0 {
		apiErr.Message = http.StatusText(status)
		return apiErr
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		// Not JSON (proxy error page, plain text). Keep a trimmed copy.
		apiErr.Message = strings.TrimSpace(truncateBody(string(body)))
		return apiErr
	}

	for _, key := range []string{"detail", "error", "message"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var msg string
		if json.Unmarshal(raw, &msg) == nil && msg != "" {
			apiErr.Message = msg
			return apiErr
		}
	}

	// Field-error map: every value is a list of messages.
	fields := make(map[string][]string, len(payload))
	for field, raw := range payload {
		var msgs []string
		if json.Unmarshal(raw, &msgs) == nil && len(msgs) > 0 {
			fields[field] = msgs
			continue
		}
		var msg string
		if json.Unmarshal(raw, &msg) == nil && msg != "" {
			fields[field] = []string{msg}
		}
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
		apiErr.Message = firstFieldMessage(fields)
		return apiErr
	}

	apiErr.Message = http.StatusText(status)
	return apiErr
}

// firstFieldMessage picks a deterministic summary line from a field map.
func firstFieldMessage(fields map[string][]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	name := names[0]
	return fmt.Sprintf("%s: %s", name, fields[name][0])
}

func truncateBody(s string) string {
	const limit = 200
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
