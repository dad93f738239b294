package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Profile file extensions (lowercase, with leading dot).
var profileExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
}

// Discover walks dir, collects release profiles, prunes hidden directories
// (".git", ".cache", ...), and returns the paths sorted lexicographically for
// deterministic processing order.
func Discover(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if profileExtensions[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
