// Package articles implements the article collection of the record store.
package articles

import (
	"context"

	"inkwell/internal/models"
)

// Repository describes lookup and mutation operations for Article documents.
type Repository interface {
	// ByAuthor returns the author's articles in insertion order, drafts
	// included. An unknown author yields an empty slice, not an error.
	ByAuthor(ctx context.Context, authorID string) ([]models.Article, error)

	// Published returns all articles with published == true, in insertion
	// order.
	Published(ctx context.Context) ([]models.Article, error)

	// ByID returns the article with the given id, or common.ErrorNotFound.
	ByID(ctx context.Context, id string) (*models.Article, error)

	// Create assigns a fresh id and sets createdAt and updatedAt to the
	// current time, appends the article, and persists it. An article
	// created already published gets publishedAt stamped as well.
	Create(ctx context.Context, article *models.Article) (*models.Article, error)

	// Update merges the patch into the article with the given id and
	// persists the collection. updatedAt is bumped on every successful
	// update, whether or not any field changed. The first transition to
	// published stamps publishedAt; it is never cleared afterwards.
	// Returns common.ErrorNotFound (no side effects) if the id is absent.
	Update(ctx context.Context, id string, patch models.ArticlePatch) (*models.Article, error)

	// Delete removes the article with the given id and reports whether a
	// removal occurred.
	Delete(ctx context.Context, id string) (bool, error)
}
