package platform

import (
	"os"
	"runtime"
)

// Permission sets for the config directory and the files inside it.
// Credential files get owner-only access; everything else is world-readable.
const (
	DirPermNormal  os.FileMode = 0755
	DirPermSecure  os.FileMode = 0700
	FilePermNormal os.FileMode = 0644
	FilePermSecure os.FileMode = 0600
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
