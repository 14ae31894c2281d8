package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store persists the sync watermark across process restarts. A watermark of 0
// means "never synced"; callers apply their own default lower bound.
type Store interface {
	// Load returns the persisted watermark in epoch milliseconds, or 0 when
	// no watermark has been saved yet.
	Load(ctx context.Context) (int64, error)
	// Save durably persists the watermark.
	Save(ctx context.Context, watermark int64) error
}

// snapshot is the serialized form of the watermark.
type snapshot struct {
	WatermarkMillis int64     `json:"watermark_ms"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// fileStore persists the watermark as a JSON file on local disk.
type fileStore struct {
	path string
}

// NewFileStore creates a file-backed watermark store.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Load(ctx context.Context) (int64, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("state: read watermark file: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return 0, fmt.Errorf("state: parse watermark file: %w", err)
	}

	return snap.WatermarkMillis, nil
}

func (s *fileStore) Save(ctx context.Context, watermark int64) error {
	data, err := json.Marshal(snapshot{
		WatermarkMillis: watermark,
		UpdatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("state: encode watermark: %w", err)
	}

	// Write to a temp file in the same directory and rename, so a crash
	// mid-write never leaves a truncated watermark behind.
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".watermark-*")
	if err != nil {
		return fmt.Errorf("state: create temp watermark file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("state: write watermark: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("state: close watermark file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("state: replace watermark file: %w", err)
	}

	return nil
}
