// Package store implements flat JSON-file persistence. Each store owns one
// file holding a single JSON array and performs whole-file read-modify-write
// on every operation, serialized by a per-store mutex. The file is the sole
// source of truth; nothing is cached between calls.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates the record already exists
	ErrConflict = errors.New("already exists")
)

// Stores holds all file-backed stores
type Stores struct {
	Posts       *PostStore
	Subscribers *SubscriberStore
}

// New creates all stores rooted at the given directory
func New(dataDir string) (*Stores, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Stores{
		Posts:       NewPostStore(filepath.Join(dataDir, "blogs.json")),
		Subscribers: NewSubscriberStore(filepath.Join(dataDir, "subscribers.json")),
	}, nil
}

// readFile decodes the JSON array at path into out. A missing file is treated
// as an empty store.
func readFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// writeFile encodes in as indented JSON and replaces the file at path
func writeFile(path string, in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
