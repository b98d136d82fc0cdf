// Package users implements the user collection of the record store.
package users

import (
	"context"

	"inkwell/internal/models"
)

// Repository describes lookup and mutation operations for User documents.
type Repository interface {
	// FindByEmail returns the user with the exact (case-sensitive) email,
	// or common.ErrorNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByUsername returns the user with the exact username,
	// or common.ErrorNotFound.
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// Create assigns a fresh id and creation timestamp, appends the user to
	// the collection, and persists it. Email and username uniqueness is
	// checked atomically with the insert; a collision on either returns
	// common.ErrorAlreadyExists without side effects.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// Update merges the patch into the user with the given id and persists
	// the collection. Fields not named in the patch are unchanged. Returns
	// common.ErrorNotFound (with no side effects) if the id is absent.
	// Users carry no updatedAt timestamp.
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
}
