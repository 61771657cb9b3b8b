package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"potluck/domain"
)

type FileBackend struct {
	path string
	log  *slog.Logger
}

func NewFileBackend(path string, log *slog.Logger) FileBackend {
	return FileBackend{path: path, log: log}
}

// LoadAll reads the whole JSON array from disk. A missing file is the
// first-run case and counts as an empty list.
func (f FileBackend) LoadAll(ctx context.Context) ([]domain.Item, error) {
	bytes, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			f.log.Info("no data file yet, starting empty", "path", f.path)
			return nil, f.Flush(ctx, nil)
		}
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	var items []domain.Item
	if err := json.Unmarshal(bytes, &items); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f.path, err)
	}
	return items, nil
}

// Flush serializes the full item set and atomically replaces the data file,
// so a crash mid-write never leaves a truncated array behind.
func (f FileBackend) Flush(_ context.Context, items []domain.Item) error {
	if items == nil {
		items = []domain.Item{}
	}
	bytes, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, bytes, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
