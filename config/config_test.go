package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.IndentSize != 2 {
		t.Fatalf("IndentSize = %d, want default 2", cfg.Output.IndentSize)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	contents := "output:\n  pretty: true\n  indent_size: 4\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Output.Pretty || cfg.Output.IndentSize != 4 {
		t.Fatalf("cfg = %+v", cfg)
	}
}
