package db

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/charliez07/mini-market/domain"
)

// FileItemStore keeps the collection as one JSON array in a single file.
// A missing file reads as an empty collection; writes go through a temp
// file in the same directory and are renamed into place.
type FileItemStore struct {
	path string
}

func NewFileItemStore(path string) *FileItemStore {
	return &FileItemStore{path: path}
}

func (s *FileItemStore) LoadAll(_ context.Context) ([]domain.Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Item{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read items file: %s", s.path)
	}

	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrapf(err, "failed to parse items file: %s", s.path)
	}
	if items == nil {
		items = []domain.Item{}
	}

	return items, nil
}

func (s *FileItemStore) SaveAll(_ context.Context, items []domain.Item) error {
	if items == nil {
		items = []domain.Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode items")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create data directory: %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".items-*.json")
	if err != nil {
		return errors.Wrap(err, "failed to create temp items file")
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "failed to write items")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp items file")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrapf(err, "failed to replace items file: %s", s.path)
	}

	return nil
}
