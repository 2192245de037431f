package platform

import (
	"os"
	"runtime"

	"github.com/spf13/afero"
)

// DefaultFileMode is applied when a source file's mode cannot be determined.
const DefaultFileMode os.FileMode = 0644

// SupportsPermissions reports whether the current platform has POSIX
// permission bits.
func SupportsPermissions() bool {
	return runtime.GOOS != "windows"
}

// SourceMode returns the permission bits recorded in info. ok is false when
// info is nil or the platform has no permission bits, in which case
// DefaultFileMode is returned.
func SourceMode(info os.FileInfo) (mode os.FileMode, ok bool) {
	if info == nil || !SupportsPermissions() {
		return DefaultFileMode, false
	}
	return info.Mode().Perm(), true
}

// Chmod sets file permissions on fsys. On Windows this is a no-op because
// Windows does not support Unix-style permission bits.
func Chmod(fsys afero.Fs, path string, mode os.FileMode) error {
	if !SupportsPermissions() {
		return nil
	}
	return fsys.Chmod(path, mode)
}
