//go:build unix

package fsutil

import "golang.org/x/sys/unix"

// IsFileExecutable reports whether the calling process may execute file.
func IsFileExecutable(file string) bool {
	return unix.Access(file, unix.X_OK) == nil
}
