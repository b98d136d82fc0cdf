// Package store bundles the per-entity repositories over a single storage
// backend and owns the bootstrap seeding. Components receive the Store (or
// one of its repositories) explicitly; there is no ambient singleton.
package store

import (
	"context"

	"inkwell/internal/repositories/articles"
	"inkwell/internal/repositories/users"
	"inkwell/internal/storage"
)

type Store struct {
	backend  storage.Backend
	users    *users.JSONRepository
	articles *articles.JSONRepository
}

// New constructs a Store over the given backend. Call Init before first use
// to seed empty collections.
func New(backend storage.Backend) *Store {
	return &Store{
		backend:  backend,
		users:    users.NewJSONRepository(backend),
		articles: articles.NewJSONRepository(backend),
	}
}

// Users returns the user repository.
func (s *Store) Users() users.Repository { return s.users }

// Articles returns the article repository.
func (s *Store) Articles() articles.Repository { return s.articles }

// Init seeds each empty collection with the sample data. Collections that
// already hold documents are left untouched, so calling Init repeatedly
// never duplicates seed records.
func (s *Store) Init(ctx context.Context) error {
	return s.seed(ctx)
}
