package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	if err := os.WriteFile(filepath.Join(dir, ".meditary.yaml"), []byte("path: "+data+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MEDITARY_CONFIG_PATH", dir)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != data {
		t.Fatalf("expected %s, got %s", data, cfg.BasePath())
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "env")
	t.Setenv("MEDITARY_CONFIG_PATH", t.TempDir())
	t.Setenv("MEDITARY_PATH", want)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != want {
		t.Fatalf("expected %s, got %s", want, cfg.BasePath())
	}
}
