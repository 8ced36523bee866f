//go:build !windows

package fileutil

import "os"

// ClearAttributes restores the owner write bit so a later delete is not
// refused on a read-only entry. Hidden and system markers have no unix
// equivalent. Failures are ignored.
func ClearAttributes(path string) {
	info, err := os.Lstat(path)
	if err != nil {
		return
	}
	// chmod would follow the link and touch its destination
	if info.Mode()&os.ModeSymlink != 0 {
		return
	}
	_ = os.Chmod(path, info.Mode().Perm()|0o200)
}
