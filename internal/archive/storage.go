// Package archive orchestrates the hosted scoring pipeline: synthesis,
// scoring, and persistence of system and result blobs.
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for systems and score results.
type StorageClient interface {
	PutSystem(ctx context.Context, projectID, systemID string, data []byte) error
	GetSystem(ctx context.Context, projectID, systemID string) ([]byte, error)
	PutResult(ctx context.Context, projectID, resultID string, data []byte) error
	GetResult(ctx context.Context, projectID, resultID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(projectID, kind, id string) string {
	return filepath.Join(s.BaseDir, projectID, kind, id+".json")
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PutSystem stores a system blob.
func (s *LocalStorage) PutSystem(ctx context.Context, projectID, systemID string, data []byte) error {
	return s.put(s.path(projectID, "systems", systemID), data)
}

// GetSystem retrieves a system blob.
func (s *LocalStorage) GetSystem(ctx context.Context, projectID, systemID string) ([]byte, error) {
	return os.ReadFile(s.path(projectID, "systems", systemID))
}

// PutResult stores a score result blob.
func (s *LocalStorage) PutResult(ctx context.Context, projectID, resultID string, data []byte) error {
	return s.put(s.path(projectID, "results", resultID), data)
}

// GetResult retrieves a score result blob.
func (s *LocalStorage) GetResult(ctx context.Context, projectID, resultID string) ([]byte, error) {
	return os.ReadFile(s.path(projectID, "results", resultID))
}
