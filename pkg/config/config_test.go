package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Synthesis.Seed != 42 {
		t.Errorf("expected default seed 42, got %d", cfg.Synthesis.Seed)
	}
	if cfg.Synthesis.Length != 1000 {
		t.Errorf("expected default length 1000, got %d", cfg.Synthesis.Length)
	}
	if cfg.Scoring.Epsilon != 1e-15 {
		t.Errorf("expected default epsilon 1e-15, got %g", cfg.Scoring.Epsilon)
	}
	if cfg.Scoring.Weights == nil {
		t.Error("expected Weights map to be initialized, got nil")
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "non-existent file returns defaults",
			yaml: "", // signal: don't create a file
			check: func(t *testing.T, cfg *Config) {
				if cfg.Synthesis.Seed != 42 {
					t.Errorf("expected default seed 42, got %d", cfg.Synthesis.Seed)
				}
				if cfg.Synthesis.Length != 1000 {
					t.Errorf("expected default length 1000, got %d", cfg.Synthesis.Length)
				}
			},
		},
		{
			name: "valid YAML overrides defaults",
			yaml: `
synthesis:
  seed: 7
  length: 250
scoring:
  weights:
    stability: 2.0
    coherence: 0.5
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Synthesis.Seed != 7 {
					t.Errorf("seed = %d, want 7", cfg.Synthesis.Seed)
				}
				if cfg.Synthesis.Length != 250 {
					t.Errorf("length = %d, want 250", cfg.Synthesis.Length)
				}
				if cfg.Scoring.Weights["stability"] != 2.0 {
					t.Errorf("stability weight = %g, want 2.0", cfg.Scoring.Weights["stability"])
				}
				if cfg.Scoring.Epsilon != 1e-15 {
					t.Errorf("epsilon should keep default, got %g", cfg.Scoring.Epsilon)
				}
			},
		},
		{
			name:    "invalid YAML returns error",
			yaml:    "synthesis: [not a map",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.yaml == "" {
				path = filepath.Join(t.TempDir(), "missing.yaml")
			} else {
				if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
					t.Fatalf("writing config: %v", err)
				}
			}

			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfgDir := filepath.Join(root, ".iels")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfgPath := filepath.Join(cfgDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("synthesis:\n  seed: 1\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	// Found from a nested directory by walking parents.
	if got := FindConfigFile(nested); got != cfgPath {
		t.Errorf("FindConfigFile(%s) = %q, want %q", nested, got, cfgPath)
	}

	// Not found from an unrelated tree.
	if got := FindConfigFile(t.TempDir()); got != "" {
		t.Errorf("FindConfigFile = %q, want empty", got)
	}
}

func TestCacheDirLayout(t *testing.T) {
	dir := CacheDir("/home/user/projects/myproject")
	if filepath.Base(dir) != "projects_myproject" {
		t.Errorf("cache slug = %q, want projects_myproject", filepath.Base(dir))
	}

	if filepath.Base(SystemDir("/x/y")) != "systems" {
		t.Error("SystemDir should end in systems")
	}
	if filepath.Base(ScoreDir("/x/y")) != "scores" {
		t.Error("ScoreDir should end in scores")
	}
}
