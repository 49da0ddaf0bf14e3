// seeker.go - Recursive file search by extension
package seeker

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// SanitizeExtension strips any leading dots from a user-supplied
// extension, so ".go" and "go" search for the same files
func SanitizeExtension(extension string) string {
	return strings.TrimLeft(extension, ".")
}

// Search walks root recursively and calls report for every file whose
// name ends in .extension, streaming results as they are found. The
// 1-based index of each match is passed along. Unreadable directories
// are skipped, not fatal. Returns the number of matches.
func Search(root, extension string, report func(index int, path string)) (int, error) {
	suffix := "." + extension
	count := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable entry, keep walking
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		count++
		report(count, path)
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("searching %s: %w", root, err)
	}
	return count, nil
}
