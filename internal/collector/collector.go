// Package collector locates API definition files under a root path, parses
// each one, and hands the discovery pass a sequence of (namespace-root path,
// parsed tree) pairs. Collection is all-or-nothing: the first unreadable or
// unparsable file fails the whole call with no partial file list.
package collector

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/markerscan/markerscan/internal/discovery"
	"github.com/markerscan/markerscan/internal/errors"
	"github.com/markerscan/markerscan/internal/syntax"
)

// DefExtension is the file extension of API definition files
const DefExtension = ".api"

// skipDirs are directories that never contain definition sources
var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	".svn":         true,
	".hg":          true,
	"testdata":     true,
	"build":        true,
	"dist":         true,
	"target":       true,
}

// Collector reads and parses definition files for the discovery pass
type Collector struct {
	// Recursive controls whether subdirectories of the root are scanned.
	// File order is lexical either way, so runs are deterministic.
	Recursive bool
}

// New creates a collector that scans recursively
func New() *Collector {
	return &Collector{Recursive: true}
}

// Collect parses every definition file under root. rootName becomes the first
// segment of every file's namespace path.
func (c *Collector) Collect(root, rootName string) ([]discovery.SourceFile, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(errors.CollectionErrorCode, err, "cannot read root path %s", root)
	}

	var paths []string
	switch {
	case !info.IsDir():
		paths = []string{root}
		root = filepath.Dir(root)
	case c.Recursive:
		paths, err = c.walk(root)
	default:
		paths, err = c.list(root)
	}
	if err != nil {
		return nil, err
	}

	files := make([]discovery.SourceFile, 0, len(paths))
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(errors.CollectionErrorCode, err, "cannot read file %s", path)
		}
		tree, err := syntax.ParseFile(path, src)
		if err != nil {
			return nil, errors.Wrapf(errors.CollectionErrorCode, err, "cannot parse file %s", path).
				WithSuggestion("fix the definition file and re-run; discovery has no partial-result mode")
		}
		files = append(files, discovery.SourceFile{
			File:      path,
			Namespace: namespaceForFile(root, rootName, path),
			Tree:      tree,
		})
	}
	return files, nil
}

// walk returns every definition file under root in lexical order
func (c *Collector) walk(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (skipDirs[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(name, DefExtension) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(errors.CollectionErrorCode, err, "cannot scan root path %s", root)
	}
	return paths, nil
}

// list returns the definition files directly inside root, without recursing
func (c *Collector) list(root string) ([]string, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(errors.CollectionErrorCode, err, "cannot scan root path %s", root)
	}
	var paths []string
	for _, entry := range dirEntries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), DefExtension) {
			paths = append(paths, filepath.Join(root, entry.Name()))
		}
	}
	return paths, nil
}

// namespaceForFile maps a file's location to its namespace-root path: the
// root name, one segment per directory below the root, and the file stem.
// The stems "mod", "lib" and "main" name their enclosing namespace rather
// than adding a segment of their own.
func namespaceForFile(root, rootName, path string) syntax.Path {
	segments := []string{rootName}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = filepath.ToSlash(rel)

	if dir := filepath.ToSlash(filepath.Dir(rel)); dir != "." {
		segments = append(segments, strings.Split(dir, "/")...)
	}

	stem := strings.TrimSuffix(filepath.Base(rel), DefExtension)
	switch stem {
	case "mod", "lib", "main":
		// namespace is the directory itself
	default:
		segments = append(segments, stem)
	}
	return syntax.NewPath(segments...)
}
