package fileutil

import (
	"io/fs"
	"path/filepath"
)

// ClearTreeAttributes clears protective attributes from root and from every
// file and directory beneath it at all depths. Failures on individual
// entries are ignored so the walk always completes.
func ClearTreeAttributes(root string) {
	_ = filepath.WalkDir(root, func(path string, _ fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		ClearAttributes(path)
		return nil
	})
}
