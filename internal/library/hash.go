package library

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// HashSize is the digest length in bytes.
const HashSize = sha256.Size

// EncodedHashLength is the length of the canonical hex encoding.
const EncodedHashLength = HashSize * 2

// Hash is the SHA-256 digest of a file's full byte content. It identifies the
// content independently of file name or location. The zero value is not a
// valid hash of anything interesting but is safe to compare.
type Hash [HashSize]byte

// HashFile streams the file at path through SHA-256 and returns its digest.
func HashFile(path string) (Hash, error) {
	var h Hash

	f, err := os.Open(path)
	if err != nil {
		return h, Wrap(ErrIO, "hash file", path, err)
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return h, Wrap(ErrIO, "hash file", path, err)
	}
	copy(h[:], hasher.Sum(nil))
	return h, nil
}

// Encode returns the canonical lowercase-hex representation, always exactly
// EncodedHashLength characters.
func (h Hash) Encode() string {
	return hex.EncodeToString(h[:])
}

// String implements fmt.Stringer with the canonical encoding.
func (h Hash) String() string {
	return h.Encode()
}

// DecodeHash parses the canonical hex representation produced by Encode.
func DecodeHash(text string) (Hash, error) {
	var h Hash
	if len(text) != EncodedHashLength {
		return h, Wrap(ErrFormat, "decode hash", fmt.Sprintf("expected %d characters, got %d", EncodedHashLength, len(text)), nil)
	}
	raw, err := hex.DecodeString(text)
	if err != nil {
		return h, Wrap(ErrFormat, "decode hash", text, err)
	}
	copy(h[:], raw)
	return h, nil
}
