package library

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestHashFileDeterministic(t *testing.T) {
	dir := t.TempDir()
	a := writeTempFile(t, dir, "a.jpg", "identical content")
	b := writeTempFile(t, dir, "b.jpg", "identical content")
	c := writeTempFile(t, dir, "c.jpg", "different content")

	hashA1, err := HashFile(a)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	hashA2, err := HashFile(a)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if hashA1 != hashA2 {
		t.Fatal("hashing the same file twice gave different digests")
	}

	hashB, err := HashFile(b)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if hashA1 != hashB {
		t.Fatal("identical content in differently named files must hash equal")
	}

	hashC, err := HashFile(c)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if hashA1 == hashC {
		t.Fatal("different content hashed equal")
	}
}

func TestHashFileMissing(t *testing.T) {
	_, err := HashFile(filepath.Join(t.TempDir(), "nope.jpg"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestHashEncode(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "x.jpg", "x")

	hash, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	encoded := hash.Encode()
	if len(encoded) != EncodedHashLength {
		t.Fatalf("encoded length: got %d want %d", len(encoded), EncodedHashLength)
	}
	if encoded != strings.ToLower(encoded) {
		t.Fatalf("encoding not lowercase: %q", encoded)
	}
}

func TestDecodeHashRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "x.jpg", "round trip subject")

	hash, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	decoded, err := DecodeHash(hash.Encode())
	if err != nil {
		t.Fatalf("DecodeHash: %v", err)
	}
	if decoded != hash {
		t.Fatalf("round trip mismatch: got %s want %s", decoded, hash)
	}
}

func TestDecodeHashRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"empty":     "",
		"too short": strings.Repeat("ab", 31),
		"too long":  strings.Repeat("ab", 33),
		"non-hex":   strings.Repeat("a", 63) + "z",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeHash(input); !errors.Is(err, ErrFormat) {
				t.Fatalf("expected ErrFormat for %q, got %v", input, err)
			}
		})
	}
}
