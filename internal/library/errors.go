package library

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIO marks file open/read/write/rename failures.
	ErrIO = errors.New("io error")
	// ErrFormat marks hash text of the wrong length or with non-hex characters.
	ErrFormat = errors.New("format error")
	// ErrCorruptIndex marks a persisted index that fails strict parsing: a
	// missing sentinel, an unparsable version line, or a malformed entry.
	ErrCorruptIndex = errors.New("corrupt index")
	// ErrUnsupportedVersion marks an index written by a newer format revision
	// than this build understands.
	ErrUnsupportedVersion = errors.New("unsupported index version")
	// ErrMetadata marks a filesystem that does not expose the timestamps a
	// sort policy requires.
	ErrMetadata = errors.New("metadata error")
	// ErrLocked marks a library whose session lock is held by another process.
	ErrLocked = errors.New("library locked")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, operation, detail string, err error) error {
	message := buildDetail(operation, detail)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, message, err)
	}
	return fmt.Errorf("%w: %s", marker, message)
}

func buildDetail(operation, detail string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if detail = strings.TrimSpace(detail); detail != "" {
		parts = append(parts, detail)
	}
	if len(parts) == 0 {
		return "library failure"
	}
	return strings.Join(parts, ": ")
}
