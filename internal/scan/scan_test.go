package scan_test

import (
	"path/filepath"
	"testing"

	"pomelo/internal/logging"
	"pomelo/internal/scan"
	"pomelo/internal/testsupport"
)

func TestScanFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFileContent(t, filepath.Join(dir, "keep.jpg"), "a")
	testsupport.WriteFileContent(t, filepath.Join(dir, "KEEP2.JPG"), "b")
	testsupport.WriteFileContent(t, filepath.Join(dir, "skip.txt"), "c")
	testsupport.WriteFileContent(t, filepath.Join(dir, "noextension"), "d")
	testsupport.WriteFileContent(t, filepath.Join(dir, "sub", "nested.jpg"), "e")

	got, err := scan.Scan([]string{dir}, []string{"jpg"}, logging.NewNop())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := map[string]bool{
		filepath.Join(dir, "KEEP2.JPG"): true,
		filepath.Join(dir, "keep.jpg"):  true,
	}
	if len(got) != len(want) {
		t.Fatalf("captured %d files, want %d: %v", len(got), len(want), got)
	}
	for _, path := range got {
		if !want[path] {
			t.Fatalf("unexpected capture %s", path)
		}
	}
}

func TestScanAcceptsDottedExtensions(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFileContent(t, filepath.Join(dir, "photo.png"), "a")

	got, err := scan.Scan([]string{dir}, []string{".PNG"}, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("dotted uppercase extension must match, got %v", got)
	}
}

func TestScanMultipleDirectories(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	testsupport.WriteFileContent(t, filepath.Join(first, "a.jpg"), "a")
	testsupport.WriteFileContent(t, filepath.Join(second, "b.jpg"), "b")

	got, err := scan.Scan([]string{first, second}, []string{"jpg"}, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected one capture per directory, got %v", got)
	}
}

func TestScanUsesConfiguredExtensions(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithExtensions("gif"))
	input := cfg.Paths.InputDirs[0]
	testsupport.WriteFileContent(t, filepath.Join(input, "anim.gif"), "a")
	testsupport.WriteFileContent(t, filepath.Join(input, "photo.jpg"), "b")

	got, err := scan.Scan(cfg.Paths.InputDirs, cfg.Import.Extensions, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || filepath.Base(got[0]) != "anim.gif" {
		t.Fatalf("only configured extensions may be captured: %v", got)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	if _, err := scan.Scan([]string{missing}, []string{"jpg"}, logging.NewNop()); err == nil {
		t.Fatal("expected error for missing input directory")
	}
}
