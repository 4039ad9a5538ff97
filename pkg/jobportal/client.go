package jobportal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Client provides methods to interact with the job-portal REST API.
//
// The client attaches the configured bearer token to every request and
// normalizes all failures into *Error. It never retries and never
// refreshes tokens on 401; callers own that policy. (The portal's
// refresh endpoint exists, but an automatic refresh-and-retry
// interceptor is a known gap inherited from the original client.)
type Client struct {
	httpClient *http.Client
	config     Config
	logger     *slog.Logger

	mu    sync.RWMutex
	token string
}

// NewClient creates a new job-portal API client with the given configuration.
func NewClient(config Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
		logger: logger.With("component", "jobportal-client"),
		token:  config.Token,
	}
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Token returns the current access token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken updates the access token used on subsequent requests.
// An empty string reverts the client to unauthenticated requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// requestID generates a unique outbound request identifier.
func requestID() string {
	return "req_" + uuid.New().String()[:8]
}

// do performs a single JSON request. body may be nil; out may be nil
// for endpoints with empty or ignored responses.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return wrapError(op, fmt.Errorf("marshal request: %w", err))
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, bodyReader)
	if err != nil {
		return wrapError(op, fmt.Errorf("create request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(op, req, out)
}

// doMultipart performs a multipart/form-data request for endpoints that
// accept file uploads alongside plain fields.
func (c *Client) doMultipart(ctx context.Context, op, method, path string, fields map[string]string, files []Upload, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return wrapError(op, fmt.Errorf("write field %s: %w", name, err))
		}
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return wrapError(op, fmt.Errorf("create file part %s: %w", f.Field, err))
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return wrapError(op, fmt.Errorf("copy file %s: %w", f.Field, err))
		}
	}
	if err := mw.Close(); err != nil {
		return wrapError(op, fmt.Errorf("finalize multipart body: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, &buf)
	if err != nil {
		return wrapError(op, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.send(op, req, out)
}

// Upload is one file part of a multipart request.
type Upload struct {
	Field    string
	Filename string
	Content  io.Reader
}

// send executes the request, attaches auth, and decodes the response.
func (c *Client) send(op string, req *http.Request, out any) error {
	reqID := requestID()
	req.Header.Set("X-Request-ID", reqID)
	req.Header.Set("Accept", "application/json")

	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger := c.logger.With("op", op, "method", req.Method, "path", req.URL.Path, "request_id", reqID)
	logger.Debug("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("request failed", "error", err)
		return wrapError(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return wrapError(op, fmt.Errorf("read response: %w", err))
	}

	logger.Debug("response received", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorBody(op, resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return wrapError(op, fmt.Errorf("unmarshal response: %w", err))
	}
	return nil
}

// get performs a GET with optional query parameters.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		path += sep + query.Encode()
	}
	return c.do(ctx, op, http.MethodGet, path, nil, out)
}
