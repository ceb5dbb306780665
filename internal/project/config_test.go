package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"interlit/internal/project"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := project.Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "pretty" || cfg.Limits.MaxDiagnostics != 100 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := `
[output]
format = "json"
color = "never"

[limits]
max_diagnostics = 25

[cache]
enabled = true
dir = "/tmp/interlit-cache"
`
	if err := os.WriteFile(filepath.Join(dir, project.ManifestName), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := project.Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Format != "json" || cfg.Output.Color != "never" {
		t.Errorf("output section lost: %+v", cfg.Output)
	}
	if cfg.Limits.MaxDiagnostics != 25 {
		t.Errorf("limits section lost: %+v", cfg.Limits)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Dir != "/tmp/interlit-cache" {
		t.Errorf("cache section lost: %+v", cfg.Cache)
	}
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, project.ManifestName), []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	path, ok, err := project.FindManifest(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected to find the manifest in an ancestor directory")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %s, expected it under %s", path, root)
	}
}
