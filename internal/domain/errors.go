package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrFileNotFound indicates a checks file or markup file does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrTransport indicates the remote markup could not be fetched
	ErrTransport = errors.New("transport error")

	// ErrRateLimited indicates rate limiting was encountered
	ErrRateLimited = errors.New("rate limited")

	// ErrTimeout indicates a timeout occurred
	ErrTimeout = errors.New("timeout")

	// ErrInvalidURL indicates an invalid URL was provided
	ErrInvalidURL = errors.New("invalid URL")

	// ErrInvalidSelector indicates a check is not a valid selector expression
	ErrInvalidSelector = errors.New("invalid selector")
)

// FileNotFoundError reports a missing input file. Role names the input
// ("checks" or "html") and is informational only.
type FileNotFoundError struct {
	Path string
	Role string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Path)
}

func (e *FileNotFoundError) Unwrap() error {
	return ErrFileNotFound
}

// NewFileNotFoundError creates a new FileNotFoundError
func NewFileNotFoundError(path, role string) *FileNotFoundError {
	return &FileNotFoundError{Path: path, Role: role}
}

// FetchError represents an error during fetching
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes every FetchError match ErrTransport.
func (e *FetchError) Is(target error) bool {
	return target == ErrTransport
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, statusCode int, err error) *FetchError {
	return &FetchError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// RetryableError indicates an error that can be retried
type RetryableError struct {
	Err        error
	RetryAfter int // Seconds to wait before retry, 0 if unknown
}

func (e *RetryableError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("retryable error (retry after %ds): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("retryable error: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// IsRetryable checks if an error should be retried
func IsRetryable(err error) bool {
	var retryable *RetryableError
	if errors.As(err, &retryable) {
		return true
	}

	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		switch fetchErr.StatusCode {
		case 429, 502, 503, 504:
			return true
		}
	}

	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrTimeout)
}

// InvalidSelectorError reports a check that the selector engine cannot compile
type InvalidSelectorError struct {
	Selector string
	Err      error
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q: %v", e.Selector, e.Err)
}

func (e *InvalidSelectorError) Unwrap() error {
	return e.Err
}

// Is makes every InvalidSelectorError match ErrInvalidSelector.
func (e *InvalidSelectorError) Is(target error) bool {
	return target == ErrInvalidSelector
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
