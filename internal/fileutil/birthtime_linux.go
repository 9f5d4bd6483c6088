//go:build linux

package fileutil

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// BirthTime returns the creation timestamp of the file at path via statx.
// Filesystems that do not record a birth time yield an error rather than an
// approximation.
func BirthTime(path string) (time.Time, error) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}, &os.PathError{Op: "statx", Path: path, Err: err}
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, fmt.Errorf("filesystem reports no birth time for %s", path)
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), nil
}
