// Package fsutil wraps the filesystem calls the rest of the module needs.
// Fallible operations return rop results and never panic.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ib-77/ropsync/pkg/rop"
	"github.com/kballard/go-shellquote"
)

// IsCommandExecutable reports whether the program named by the first word of
// command is an executable file. Quoting follows POSIX shell rules.
func IsCommandExecutable(command string) bool {
	words, err := shellquote.Split(command)
	if err != nil || len(words) == 0 {
		return false
	}
	return IsFileExecutable(words[0])
}

func DoesFileExist(file string) bool {
	_, err := os.Lstat(file)
	return err == nil
}

// DeleteFile removes file and reports whether it is gone afterwards. A file
// that never existed counts as deleted.
func DeleteFile(file string) bool {
	err := os.Remove(file)
	return err == nil || errors.Is(err, fs.ErrNotExist)
}

// IsOfType reports whether file's extension, without the dot, equals typ.
func IsOfType(file, typ string) bool {
	i := strings.LastIndexByte(file, '.')
	if i < 0 {
		return false
	}
	return file[i+1:] == typ
}

// GetFilename returns the last path element without its extension.
func GetFilename(path string) string {
	name := path
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		name = path[i+1:]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// RemoveFilename returns the directory part of path including the trailing
// slash, or "./" when path has no directory part.
func RemoveFilename(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return "./"
	}
	return path[:i+1]
}

// GetExeDir returns the directory of the running executable with a trailing
// slash, or "" when it cannot be determined.
func GetExeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe) + "/"
}

// CreateDirectory creates path with mode 0775. An existing path is success.
func CreateDirectory(path string) rop.VoidResult {
	err := os.Mkdir(path, 0o775)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return rop.Ok()
	}
	return rop.FailVoid(fmt.Errorf("creating directory failed: %w", err))
}

// GetFilesInDirectory lists the entries of path sorted by name. Directories
// carry a trailing slash.
func GetFilesInDirectory(path string) rop.Result[[]string] {
	entries, err := os.ReadDir(path)
	if err != nil {
		return rop.Fail[[]string](fmt.Errorf("listing directory %q: %w", path, err))
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	return rop.Success(names)
}

func GetFileContents(path string) rop.Result[string] {
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return rop.Fail[string](fmt.Errorf("file %q does not exist: %w", path, err))
	case err != nil:
		return rop.Fail[string](fmt.Errorf("can't read the file %q: %w", path, err))
	}
	return rop.Success(string(b))
}

// SetFileContents truncates or creates path and writes value to it.
func SetFileContents(path, value string) rop.VoidResult {
	if err := os.WriteFile(path, []byte(value), 0o644); err != nil {
		return rop.FailVoid(fmt.Errorf("can't write the file %q: %w", path, err))
	}
	return rop.Ok()
}
