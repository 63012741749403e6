package platform

import (
	"os"
	"runtime"
)

// Chmod applies the exact permission bits to path. Creation calls such as
// Mkdir and OpenFile are subject to the process umask, so scaffolded entries
// get their configured mode applied explicitly afterwards. On Windows this
// is a no-op because Windows does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
