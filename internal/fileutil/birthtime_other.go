//go:build !linux && !darwin

package fileutil

import (
	"fmt"
	"time"
)

// BirthTime is unavailable on platforms without a creation-time syscall.
func BirthTime(path string) (time.Time, error) {
	return time.Time{}, fmt.Errorf("birth time not supported on this platform (%s)", path)
}
