package library

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"pomelo/internal/fileutil"
)

// SortPolicy selects where an accepted file lands in the output tree.
type SortPolicy int

const (
	// PolicyRoot flattens files into the output root under their base name.
	PolicyRoot SortPolicy = iota
	// PolicyDate nests files under year/month/day derived from the file's
	// creation timestamp.
	PolicyDate
)

// ParsePolicy maps configuration/flag text onto a SortPolicy.
func ParsePolicy(text string) (SortPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "root", "":
		return PolicyRoot, nil
	case "date":
		return PolicyDate, nil
	default:
		return PolicyRoot, fmt.Errorf("unknown sort policy %q (expected \"root\" or \"date\")", text)
	}
}

func (p SortPolicy) String() string {
	switch p {
	case PolicyDate:
		return "date"
	default:
		return "root"
	}
}

// creationTime resolves a source file's birth timestamp. Overridable in tests
// where the filesystem's birth-time support cannot be assumed.
var creationTime = fileutil.BirthTime

// SetCreationTimeForTests swaps the creation-time lookup and returns a
// function restoring the previous one.
func SetCreationTimeForTests(fn func(string) (time.Time, error)) func() {
	prev := creationTime
	creationTime = fn
	return func() { creationTime = prev }
}

// relativePath computes the destination path, relative to the output root,
// for the file at src under this policy.
func (p SortPolicy) relativePath(src string) (string, error) {
	base := filepath.Base(src)
	switch p {
	case PolicyDate:
		created, err := creationTime(src)
		if err != nil {
			return "", Wrap(ErrMetadata, "creation time", src, err)
		}
		local := created.Local()
		// Decimal components without zero padding: 2024-03-05 -> 2024/3/5.
		return filepath.Join(
			strconv.Itoa(local.Year()),
			strconv.Itoa(int(local.Month())),
			strconv.Itoa(local.Day()),
			base,
		), nil
	default:
		return base, nil
	}
}
