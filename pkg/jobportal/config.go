// Package jobportal provides a Go client for the job-portal REST API
// (accounts, jobs, applications, employee and company profiles).
package jobportal

import "time"

// DefaultBaseURL points at a locally running portal backend.
const DefaultBaseURL = "http://localhost:8000/api"

// DefaultTimeout bounds each HTTP request made by the client.
const DefaultTimeout = 30 * time.Second

// Config holds all configuration for the job-portal API client.
type Config struct {
	// BaseURL is the API root, e.g. "https://portal.example.com/api".
	// Endpoint paths like "/accounts/token/" are appended to it.
	BaseURL string

	// Token is the bearer access token. Empty means unauthenticated.
	Token string

	// Timeout is the HTTP client timeout for each request.
	Timeout time.Duration
}

// DefaultConfig returns a Config with default settings.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// WithBaseURL returns a copy of the config with the specified base URL.
func (c Config) WithBaseURL(baseURL string) Config {
	c.BaseURL = baseURL
	return c
}

// WithToken returns a copy of the config with the specified access token.
func (c Config) WithToken(token string) Config {
	c.Token = token
	return c
}

// WithTimeout returns a copy of the config with the specified timeout.
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}
