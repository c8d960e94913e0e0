package system

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveSystem writes a system to disk as JSON.
func SaveSystem(path string, sys *System) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for system: %w", err)
	}

	data, err := json.MarshalIndent(sys, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling system: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing system: %w", err)
	}

	return nil
}

// LoadSystem reads a system from disk.
func LoadSystem(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading system: %w", err)
	}

	var sys System
	if err := json.Unmarshal(data, &sys); err != nil {
		return nil, fmt.Errorf("unmarshaling system: %w", err)
	}

	return &sys, nil
}
