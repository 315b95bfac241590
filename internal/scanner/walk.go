package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Dependency and version-control directories are never scanned.
var skipDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
	"testdata":     true,
	"venv":         true,
}

// sourceFiles returns every .go file under the scan root in walk order.
// Unreadable directory entries are logged and skipped; the walk continues.
func (s *Scanner) sourceFiles() []string {
	var files []string
	err := filepath.WalkDir(s.cfg.ScanRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.log.Warnf("Error reading %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".go") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		s.log.Errorf("Error walking %s: %v", s.cfg.ScanRoot, err)
	}
	return files
}
