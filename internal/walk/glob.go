package walk

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ignoredDirs are directories never descended into during discovery.
var ignoredDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"vendor":       true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
	".idea":        true,
	".vscode":      true,
	"target":       true,
	"dist":         true,
	"build":        true,
	".cache":       true,
}

// HasMeta reports whether the argument contains glob metacharacters.
func HasMeta(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

// loadGitignore loads .gitignore from root if present.
func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}

// Tree walks the directory tree under root and returns every regular file,
// skipping the built-in ignore list and anything matched by root's
// .gitignore. Results are sorted for deterministic scan order.
func Tree(root string) ([]string, error) {
	gi := loadGitignore(root)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if ignoredDirs[d.Name()] || (gi != nil && rel != "." && gi.MatchesPath(rel)) {
				return filepath.SkipDir
			}
			return nil
		}
		if gi != nil && gi.MatchesPath(rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Pattern expands a doublestar glob like "src/**/*.cc" into matching
// files, filtered through the same ignore rules as Tree.
func Pattern(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	gi := loadGitignore(".")

	files := matches[:0]
	for _, m := range matches {
		if ignoredPath(m) {
			continue
		}
		if gi != nil && gi.MatchesPath(m) {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)
	return files, nil
}

// ignoredPath reports whether any path segment is on the built-in ignore
// list.
func ignoredPath(path string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(path), "/") {
		if ignoredDirs[seg] {
			return true
		}
	}
	return false
}
