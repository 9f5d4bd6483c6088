package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFileContent creates path (and its parent directories) holding exactly
// the provided bytes. Distinct content strings give distinct hashes.
func WriteFileContent(t testing.TB, path string, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
