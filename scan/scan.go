// SPDX-License-Identifier: EPL-2.0

package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// Files walks root depth-first in lexical order and calls fn once per
// regular file.
//
// Symbolic links are never followed, so link cycles under root cannot make
// the walk loop. Directories and other non-regular entries are skipped
// silently. The first failure — an unreadable directory, a failed stat, or
// an error returned by fn — aborts the walk and is returned to the caller.
func Files(root string, fn func(path string, info fs.FileInfo) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("read directory entry %s: %w", path, walkErr)
		}

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("read directory entry %s: %w", path, err)
		}

		return fn(path, info)
	})
}
