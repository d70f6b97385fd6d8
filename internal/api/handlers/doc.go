// Package handlers implements the HTTP handlers of the flower-finder API.
// Business endpoints are huma operations; /healthz and /readyz stay plain Echo
// handlers.
package handlers

import (
	"github.com/danielgtaylor/huma/v2"
)

// Client-facing error messages. Internal error details are logged, never
// returned.
const (
	msgFlowerNotFound = "Flower not found"
	msgLookupFailed   = "An error occurred"
	msgNameRequired   = "Flowername is required"
	msgShoppingFailed = "Naver Shopping API error"
)

// ErrorResponse is the error body of every endpoint: {"error": "..."}.
type ErrorResponse struct {
	status  int
	Message string `json:"error" example:"Flower not found" doc:"Error message"`
}

// Error implements error.
func (e *ErrorResponse) Error() string { return e.Message }

// GetStatus implements huma.StatusError.
func (e *ErrorResponse) GetStatus() int { return e.status }

var _ huma.StatusError = (*ErrorResponse)(nil)

// newError replaces huma's problem+json errors, including its own request
// validation failures.
func newError(status int, msg string, _ ...error) huma.StatusError {
	return &ErrorResponse{status: status, Message: msg}
}

func init() {
	huma.NewError = newError
}

// NewAPIConfig returns the huma configuration of the flower-finder API. The
// OpenAPI document is served at /openapi.json and /openapi.yaml, the
// reference docs at /docs.
func NewAPIConfig(version string) huma.Config {
	cfg := huma.DefaultConfig("Flower Finder API", version)
	cfg.Info.Description = "Flower reference lookups and aggregated Naver Shopping listings."
	// Drop the $schema link hook so bodies carry only documented fields.
	cfg.CreateHooks = nil
	return cfg
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
