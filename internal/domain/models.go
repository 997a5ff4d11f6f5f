package domain

import "net/http"

// Response represents an HTTP response
type Response struct {
	StatusCode  int
	Body        []byte
	Headers     http.Header
	ContentType string
	URL         string
}

// Input roles used in FileNotFoundError
const (
	RoleChecks = "checks"
	RoleHTML   = "html"
)
