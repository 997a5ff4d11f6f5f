// Package source supplies raw markup from a local file or a remote URL.
package source

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/quantmind-br/grader-go/internal/domain"
)

// Source produces raw markup
type Source interface {
	// Load returns the raw markup and, when known, its Content-Type
	Load(ctx context.Context) (*Markup, error)
	// String describes the source for diagnostics
	String() string
}

// Markup is raw markup text plus its declared content type
type Markup struct {
	Body        []byte
	ContentType string
}

// FileSource reads markup from disk
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for path
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load reads the whole file
func (s *FileSource) Load(_ context.Context) (*Markup, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.NewFileNotFoundError(s.Path, domain.RoleHTML)
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	return &Markup{Body: data}, nil
}

func (s *FileSource) String() string {
	return s.Path
}

// URLSource fetches markup with a single GET
type URLSource struct {
	URL     string
	Fetcher domain.Fetcher
}

// NewURLSource creates a URLSource fetching url through fetcher
func NewURLSource(url string, fetcher domain.Fetcher) *URLSource {
	return &URLSource{URL: url, Fetcher: fetcher}
}

// Load fetches the URL. Every failure is reported as a *domain.FetchError.
func (s *URLSource) Load(ctx context.Context) (*Markup, error) {
	resp, err := s.Fetcher.Get(ctx, s.URL)
	if err != nil {
		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) {
			return nil, err
		}
		return nil, domain.NewFetchError(s.URL, 0, err)
	}
	return &Markup{Body: resp.Body, ContentType: resp.ContentType}, nil
}

func (s *URLSource) String() string {
	return s.URL
}
