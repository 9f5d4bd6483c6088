//go:build darwin

package fileutil

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// BirthTime returns the creation timestamp of the file at path. Darwin
// records it in the stat structure directly.
func BirthTime(path string) (time.Time, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec), nil
}
