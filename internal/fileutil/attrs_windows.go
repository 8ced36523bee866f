//go:build windows

package fileutil

import "golang.org/x/sys/windows"

const protectiveAttrs = windows.FILE_ATTRIBUTE_READONLY |
	windows.FILE_ATTRIBUTE_HIDDEN |
	windows.FILE_ATTRIBUTE_SYSTEM

// ClearAttributes strips the read-only, hidden and system attributes so a
// later delete is not refused. Failures are ignored.
func ClearAttributes(path string) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil || attrs&protectiveAttrs == 0 {
		return
	}
	cleared := attrs &^ uint32(protectiveAttrs)
	if cleared == 0 {
		cleared = windows.FILE_ATTRIBUTE_NORMAL
	}
	_ = windows.SetFileAttributes(p, cleared)
}
