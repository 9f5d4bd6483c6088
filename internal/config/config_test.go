package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pomelo/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := writeConfig(t, `
[paths]
input_dirs = ["~/camera"]
output_dir = "~/pictures/library"
`)

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatal("expected the explicit config file to be found")
	}
	if cfg.Paths.OutputDir != filepath.Join(tempHome, "pictures", "library") {
		t.Fatalf("output dir not expanded: %q", cfg.Paths.OutputDir)
	}
	if len(cfg.Paths.InputDirs) != 1 || cfg.Paths.InputDirs[0] != filepath.Join(tempHome, "camera") {
		t.Fatalf("input dirs not expanded: %v", cfg.Paths.InputDirs)
	}
	if cfg.Paths.LogDir != filepath.Join(tempHome, ".local", "share", "pomelo", "logs") {
		t.Fatalf("log dir default wrong: %q", cfg.Paths.LogDir)
	}
	if cfg.Import.SortPolicy != "root" {
		t.Fatalf("sort policy default wrong: %q", cfg.Import.SortPolicy)
	}
	if !cfg.Import.History {
		t.Fatal("history should default to enabled")
	}
	if len(cfg.Import.Extensions) == 0 {
		t.Fatal("extension defaults missing")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("logging defaults wrong: %+v", cfg.Logging)
	}
}

func TestLoadNormalizesExtensionsAndPolicy(t *testing.T) {
	path := writeConfig(t, `
[paths]
input_dirs = ["/in"]
output_dir = "/out"

[import]
extensions = [".JPG", "jpg", " png ", ""]
sort_policy = "Date"
`)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if strings.Join(cfg.Import.Extensions, ",") != "jpg,png" {
		t.Fatalf("extensions not normalized: %v", cfg.Import.Extensions)
	}
	if cfg.Import.SortPolicy != "date" {
		t.Fatalf("policy not lowercased: %q", cfg.Import.SortPolicy)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"missing output": `
[paths]
input_dirs = ["/in"]
`,
		"missing inputs": `
[paths]
output_dir = "/out"
`,
		"bad policy": `
[paths]
input_dirs = ["/in"]
output_dir = "/out"

[import]
sort_policy = "alphabetical"
`,
		"bad log level": `
[paths]
input_dirs = ["/in"]
output_dir = "/out"

[logging]
level = "verbose"
`,
		"bad log format": `
[paths]
input_dirs = ["/in"]
output_dir = "/out"

[logging]
format = "xml"
`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, content)
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := config.ExpandPath("~/photos")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(tempHome, "photos") {
		t.Fatalf("ExpandPath: got %q", got)
	}

	empty, err := config.ExpandPath("  ")
	if err != nil || empty != "" {
		t.Fatalf("blank path should stay empty, got %q, %v", empty, err)
	}
}

func TestNormalizeExtensionsDeduplicates(t *testing.T) {
	got := config.NormalizeExtensions([]string{"JPG", ".jpg", "png", "PNG", ""})
	if strings.Join(got, ",") != "jpg,png" {
		t.Fatalf("NormalizeExtensions: %v", got)
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	target := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, _, err := config.Load(target); err != nil {
		t.Fatalf("sample config must load cleanly: %v", err)
	}
}
