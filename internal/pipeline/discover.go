package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Supported record file extensions (lowercase, with leading dot).
var recordExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// Discover walks recordsDir, collects files with record extensions, prunes
// hidden directories, and returns the paths sorted lexicographically for
// deterministic processing order.
func Discover(recordsDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(recordsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != recordsDir {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if recordExtensions[ext] {
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
