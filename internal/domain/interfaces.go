package domain

//go:generate mockgen -source=interfaces.go -destination=../mocks/domain.go -package=mocks

import (
	"context"
)

// Fetcher defines the interface for retrieving remote markup
type Fetcher interface {
	// Get issues a single GET for url
	Get(ctx context.Context, url string) (*Response, error)
	// Close releases resources
	Close() error
}

// Queryer is anything that can answer "does at least one node match selector"
type Queryer interface {
	Has(selector string) bool
}
