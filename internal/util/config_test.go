package util

import (
	"os"
	"path/filepath"
	"testing"

	"moss/internal/evaluator"
)

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()

	if cfg.LogLevel != "error" {
		t.Fatalf("default LogLevel wrong. expected=%q, got=%q", "error", cfg.LogLevel)
	}
	if cfg.MaxEvalDepth != evaluator.DefaultMaxDepth {
		t.Fatalf("default MaxEvalDepth wrong. expected=%d, got=%d",
			evaluator.DefaultMaxDepth, cfg.MaxEvalDepth)
	}
	if cfg.Prompt != ">> " {
		t.Fatalf("default Prompt wrong. expected=%q, got=%q", ">> ", cfg.Prompt)
	}
}

func TestLoadConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moss.toml")
	content := `
log_level = "debug"
max_eval_depth = 100
prompt = "moss> "
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel wrong. expected=%q, got=%q", "debug", cfg.LogLevel)
	}
	if cfg.MaxEvalDepth != 100 {
		t.Fatalf("MaxEvalDepth wrong. expected=%d, got=%d", 100, cfg.MaxEvalDepth)
	}
	if cfg.Prompt != "moss> " {
		t.Fatalf("Prompt wrong. expected=%q, got=%q", "moss> ", cfg.Prompt)
	}
	// Keys absent from the file keep their defaults.
	if cfg.LogFile != "" {
		t.Fatalf("LogFile should default empty, got=%q", cfg.LogFile)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatalf("expected error for missing file, got none")
	}
}
