package service

import (
	"context"
	"database/sql"

	"github.com/mwhite7112/woodpantry-household/internal/category"
	"github.com/mwhite7112/woodpantry-household/internal/db"
)

// PageFetcher downloads a recipe page. *scrape.Client satisfies it.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Service holds all dependencies for the household service layer.
type Service struct {
	q           db.Querier
	sqlDB       *sql.DB
	threshold   float64
	categorizer category.Categorizer
	fetcher     PageFetcher
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithCategorizer sets the categorizer used for newly created ingredients.
func WithCategorizer(c category.Categorizer) Option {
	return func(s *Service) { s.categorizer = c }
}

// WithFetcher sets the fetcher used by ImportFromURL.
func WithFetcher(f PageFetcher) Option {
	return func(s *Service) { s.fetcher = f }
}

// New creates a new Service. A threshold of 1.0 or more resolves ingredient
// names by exact name or alias only.
func New(q db.Querier, sqlDB *sql.DB, threshold float64, opts ...Option) *Service {
	s := &Service{q: q, sqlDB: sqlDB, threshold: threshold}
	for _, opt := range opts {
		opt(s)
	}
	if s.categorizer == nil {
		s.categorizer = category.Default()
	}
	return s
}

// Queries exposes the underlying db.Querier for direct use by handlers that
// don't require service-layer logic.
func (s *Service) Queries() db.Querier {
	return s.q
}

// Categorize guesses the category of an ingredient name.
func (s *Service) Categorize(name string) string {
	return s.categorizer.Categorize(name)
}
