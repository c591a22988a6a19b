//go:build !unix

package fsutil

import "os"

// IsFileExecutable reports whether file is a regular file with any execute
// bit set.
func IsFileExecutable(file string) bool {
	fi, err := os.Stat(file)
	return err == nil && fi.Mode().IsRegular() && fi.Mode().Perm()&0o111 != 0
}
