// Package store persists the catalog and user profiles.
package store

import (
	"context"
	"errors"

	"github.com/melisa48/entertainment-agent/internal/model"
)

// ErrNotFound is returned by loads when nothing has been saved yet.
var ErrNotFound = errors.New("no saved data")

// Store defines the persistence interface.
type Store interface {
	// LoadCatalog reads the whole catalog. The result is a fresh catalog;
	// on error the caller's catalog is left alone.
	LoadCatalog(ctx context.Context) (*model.Catalog, error)

	// SaveCatalog overwrites the stored catalog.
	SaveCatalog(ctx context.Context, c *model.Catalog) error

	// LoadProfiles reads every stored profile in saved order.
	LoadProfiles(ctx context.Context) ([]*model.Profile, error)

	// SaveProfiles overwrites the stored profiles.
	SaveProfiles(ctx context.Context, profiles []*model.Profile) error

	// Close closes the store.
	Close() error
}
