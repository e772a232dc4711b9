package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/melisa48/entertainment-agent/internal/model"
)

// JSONStore keeps the catalog and profiles in two JSON files.
type JSONStore struct {
	catalogPath  string
	profilesPath string
}

// NewJSONStore returns a store over the given files. The files need not exist.
func NewJSONStore(catalogPath, profilesPath string) *JSONStore {
	return &JSONStore{catalogPath: catalogPath, profilesPath: profilesPath}
}

func (s *JSONStore) LoadCatalog(ctx context.Context) (*model.Catalog, error) {
	data, err := readFile(s.catalogPath)
	if err != nil {
		return nil, err
	}
	c, err := DecodeCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.catalogPath, err)
	}
	return c, nil
}

func (s *JSONStore) SaveCatalog(ctx context.Context, c *model.Catalog) error {
	data, err := EncodeCatalog(c)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return writeFile(s.catalogPath, data)
}

func (s *JSONStore) LoadProfiles(ctx context.Context) ([]*model.Profile, error) {
	data, err := readFile(s.profilesPath)
	if err != nil {
		return nil, err
	}
	profiles, err := DecodeProfiles(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.profilesPath, err)
	}
	return profiles, nil
}

func (s *JSONStore) SaveProfiles(ctx context.Context, profiles []*model.Profile) error {
	data, err := EncodeProfiles(profiles)
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	return writeFile(s.profilesPath, data)
}

func (s *JSONStore) Close() error {
	return nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// writeFile replaces path via a temp file and rename.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
