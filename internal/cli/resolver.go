package cli

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// RootNameResolver resolves the namespace-root name used as the first segment
// of every discovered path. An explicit name wins; otherwise the nearest
// go.mod's module path contributes its final element; otherwise the scanned
// directory's own name is used.
type RootNameResolver struct{}

// NewRootNameResolver creates a new root name resolver
func NewRootNameResolver() *RootNameResolver {
	return &RootNameResolver{}
}

// Resolve returns the namespace-root name for a scan rooted at scanDir
func (r *RootNameResolver) Resolve(custom, scanDir string) string {
	if custom != "" {
		return custom
	}
	if modPath := r.findModulePath(scanDir); modPath != "" {
		return sanitizeIdent(path.Base(modPath))
	}
	abs, err := filepath.Abs(scanDir)
	if err != nil {
		abs = scanDir
	}
	return sanitizeIdent(filepath.Base(abs))
}

// findModulePath walks up from dir looking for a go.mod and returns its
// module path, or "" if none is found.
func (r *RootNameResolver) findModulePath(dir string) string {
	current, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		data, err := os.ReadFile(filepath.Join(current, "go.mod"))
		if err == nil {
			return modfile.ModulePath(data)
		}
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}

// sanitizeIdent turns a name into a valid namespace identifier
func sanitizeIdent(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
