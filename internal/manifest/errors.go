package manifest

import (
	"errors"

	"github.com/quantmind-br/grader-go/internal/domain"
)

// Sentinel errors for the manifest package
var (
	// ErrInvalidFormat indicates the manifest is not an array of selector strings
	ErrInvalidFormat = errors.New("checks manifest must be an array of strings")

	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = domain.ErrFileNotFound
)
