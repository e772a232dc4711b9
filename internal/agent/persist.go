package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/melisa48/entertainment-agent/internal/store"
)

// Load reads the catalog and profiles from the store. Both halves are
// attempted and their failures returned joined.
func (a *Agent) Load(ctx context.Context) error {
	return errors.Join(a.LoadCatalog(ctx), a.LoadProfiles(ctx))
}

// LoadCatalog replaces the catalog with the stored one. On failure the
// in-memory catalog is left as it was.
func (a *Agent) LoadCatalog(ctx context.Context) error {
	if a.store == nil {
		return fmt.Errorf("%w: no store configured", ErrPersistence)
	}
	c, err := a.store.LoadCatalog(ctx)
	if err != nil {
		a.logLoadErr(err, "catalog")
		return fmt.Errorf("%w: load catalog: %w", ErrPersistence, err)
	}
	a.setCatalog(c)
	a.log.Debug().Int("items", c.Total()).Msg("catalog loaded")
	return nil
}

// LoadProfiles merges the stored profiles into the existing ones by user id.
// On failure no profile is changed.
func (a *Agent) LoadProfiles(ctx context.Context) error {
	if a.store == nil {
		return fmt.Errorf("%w: no store configured", ErrPersistence)
	}
	profiles, err := a.store.LoadProfiles(ctx)
	if err != nil {
		a.logLoadErr(err, "profiles")
		return fmt.Errorf("%w: load profiles: %w", ErrPersistence, err)
	}
	for _, p := range profiles {
		a.putProfile(p)
	}
	a.log.Debug().Int("profiles", len(profiles)).Msg("profiles loaded")
	return nil
}

func (a *Agent) logLoadErr(err error, what string) {
	if errors.Is(err, store.ErrNotFound) {
		a.log.Debug().Err(err).Str("target", what).Msg("nothing saved yet")
		return
	}
	a.log.Warn().Err(err).Str("target", what).Msg("load failed")
}

// Save overwrites the stored catalog and profiles.
func (a *Agent) Save(ctx context.Context) error {
	return errors.Join(a.SaveCatalog(ctx), a.SaveProfiles(ctx))
}

// SaveCatalog overwrites the stored catalog.
func (a *Agent) SaveCatalog(ctx context.Context) error {
	if a.store == nil {
		return fmt.Errorf("%w: no store configured", ErrPersistence)
	}
	if err := a.store.SaveCatalog(ctx, a.catalog); err != nil {
		a.log.Error().Err(err).Msg("save catalog")
		return fmt.Errorf("%w: save catalog: %w", ErrPersistence, err)
	}
	a.log.Debug().Int("items", a.catalog.Total()).Msg("catalog saved")
	return nil
}

// SaveProfiles overwrites the stored profiles.
func (a *Agent) SaveProfiles(ctx context.Context) error {
	if a.store == nil {
		return fmt.Errorf("%w: no store configured", ErrPersistence)
	}
	if err := a.store.SaveProfiles(ctx, a.Users()); err != nil {
		a.log.Error().Err(err).Msg("save profiles")
		return fmt.Errorf("%w: save profiles: %w", ErrPersistence, err)
	}
	a.log.Debug().Int("profiles", len(a.order)).Msg("profiles saved")
	return nil
}

// OnlyNotFound reports whether every failure joined in err, as returned by
// Load, is a "nothing saved yet" failure, as on a first run.
func OnlyNotFound(err error) bool {
	if err == nil {
		return false
	}
	parts := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		parts = joined.Unwrap()
	}
	for _, e := range parts {
		if !errors.Is(e, store.ErrNotFound) {
			return false
		}
	}
	return true
}
