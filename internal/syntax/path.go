package syntax

import (
	"encoding/json"
	"strings"
)

// Path is an ordered namespace path, root-first. Paths are treated as
// immutable: Child returns a freshly allocated copy, so recursive walks can
// extend a path without aliasing the caller's slice.
type Path []string

// NewPath creates a path from the given segments
func NewPath(segments ...string) Path {
	p := make(Path, len(segments))
	copy(p, segments)
	return p
}

// Child returns a new path with name appended as the final segment
func (p Path) Child(name string) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, name)
}

// String renders the path in reference form, e.g. "api::handlers::get_user"
func (p Path) String() string {
	return strings.Join(p, "::")
}

// MarshalYAML serializes the path in reference form
func (p Path) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// MarshalJSON serializes the path in reference form
func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}
