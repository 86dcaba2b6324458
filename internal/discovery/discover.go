// Package discovery implements the namespace-aware discovery pass: it walks
// parsed API definition trees, matches marker annotations against the
// configured marker names, and reports every qualifying declaration as a
// fully-qualified reference path for the documentation generator.
//
// The pass is a pure, single-threaded tree fold. It performs no I/O, keeps no
// state between runs, and either returns the complete result or fails with no
// partial output.
package discovery

import (
	stderrors "errors"

	"github.com/markerscan/markerscan/internal/annotations"
	"github.com/markerscan/markerscan/internal/errors"
	"github.com/markerscan/markerscan/internal/syntax"
)

// SourceFile pairs one parsed definition file with the namespace-root path
// its declarations live under.
type SourceFile struct {
	File      string      // disk path, for provenance only
	Namespace syntax.Path // namespace-root path for this file
	Tree      *syntax.File
}

// Discover walks every file and returns the aggregated result. File order is
// preserved as given; the first malformed annotation aborts the whole run.
func Discover(files []SourceFile, params Parameters) (Result, error) {
	var entries []Entry
	for _, f := range files {
		found, err := walkDecls(f.Namespace, f.Tree.Decls, params)
		if err != nil {
			return Result{}, err
		}
		entries = append(entries, found...)
	}
	return aggregate(entries), nil
}

// walkDecls collects entries from a declaration list and, recursively, from
// any nested namespaces. Only namespaces, functions, data types and
// capability-implementation blocks are considered; every other declaration
// shape yields nothing. Results keep declaration order.
func walkDecls(modulePath syntax.Path, decls []*syntax.Decl, params Parameters) ([]Entry, error) {
	var out []Entry
	for _, d := range decls {
		switch {
		case d.Mod != nil:
			// "mod name;" keeps its content in another file; nothing to
			// discover from here.
			if d.Mod.Body == nil {
				continue
			}
			nested, err := walkDecls(modulePath.Child(d.Mod.Name), d.Mod.Body.Decls, params)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		case d.Fn != nil:
			out = append(out, classifyFunction(d.Fn, d.Attrs, modulePath, params)...)
		case d.Struct != nil:
			found, err := classifyType(d.Attrs, modulePath.Child(d.Struct.Name), d.Struct.Generics, params)
			if err != nil {
				return nil, err
			}
			out = append(out, found...)
		case d.Enum != nil:
			found, err := classifyType(d.Attrs, modulePath.Child(d.Enum.Name), d.Enum.Generics, params)
			if err != nil {
				return nil, err
			}
			out = append(out, found...)
		case d.Impl != nil:
			out = append(out, classifyImpl(d.Impl, modulePath, params)...)
		}
	}
	return out, nil
}

// classifyFunction reports a function as an operation once per annotation
// whose name contains the configured function marker as a segment. A function
// tagged twice is reported twice; callers that want one registration per
// function must not tag it more than once. Functions without annotations, and
// functions carrying the ignore marker, are skipped entirely.
func classifyFunction(fn *syntax.FnDecl, attrs []*syntax.Attribute, modulePath syntax.Path, params Parameters) []Entry {
	if len(attrs) == 0 || isIgnored(attrs) {
		return nil
	}
	var out []Entry
	for _, attr := range attrs {
		if attr.HasSegment(params.FunctionMarker) {
			out = append(out, Entry{Kind: KindOperation, Path: modulePath.Child(fn.Name)})
		}
	}
	return out
}

// classifyType scans a data type's annotations for model and response
// markers. Types with generic parameters are never reported: without their
// arguments they cannot be referenced as a complete schema. An ignore marker
// anywhere in the attribute list discards the type, including entries already
// matched by earlier attributes.
//
// Inside a composite marker list, the fixed two-segment built-in names are
// checked first, then the configured single names; both checks run per nested
// marker, so one type can be reported as both model and response.
func classifyType(attrs []*syntax.Attribute, name syntax.Path, generics []string, params Parameters) ([]Entry, error) {
	if len(generics) > 0 {
		return nil, nil
	}
	var out []Entry
	for _, attr := range attrs {
		if attr.IsIdent(IgnoreMarker) {
			return nil, nil
		}
		if !attr.IsIdent(compositeMarker) {
			continue
		}
		markers, err := annotations.ParseMarkerList(attr.Args)
		if err != nil {
			return nil, locate(err, attr)
		}
		for _, m := range markers {
			if len(m.Segments) == 2 && m.Segments[0] == builtinNamespace {
				switch m.Segments[1] {
				case builtinSchemaMarker:
					out = append(out, Entry{Kind: KindModel, Path: name})
				case builtinResponseMarker:
					out = append(out, Entry{Kind: KindResponse, Path: name})
				}
			} else {
				if m.IsIdent(params.ModelMarker) {
					out = append(out, Entry{Kind: KindModel, Path: name})
				}
				if m.IsIdent(params.ResponseMarker) {
					out = append(out, Entry{Kind: KindResponse, Path: name})
				}
			}
		}
	}
	return out, nil
}

// classifyImpl reports a capability-implementation block when the final
// segment of the implemented capability name equals a configured marker.
// Inherent blocks and unrecognized capabilities contribute nothing.
func classifyImpl(im *syntax.ImplDecl, modulePath syntax.Path, params Parameters) []Entry {
	trait, ok := im.TraitName()
	if !ok {
		return nil
	}
	switch trait {
	case params.ModelMarker:
		return []Entry{{Kind: KindCustomModelImpl, Path: modulePath.Child(*im.Target)}}
	case params.ResponseMarker:
		return []Entry{{Kind: KindCustomResponseImpl, Path: modulePath.Child(*im.Target)}}
	}
	return nil
}

// locate attaches the attribute's source position to a syntax failure
func locate(err error, attr *syntax.Attribute) error {
	var base *errors.BaseError
	if stderrors.As(err, &base) {
		return base.WithLocation(attr.Location())
	}
	return err
}

// isIgnored reports whether any attribute is the bare ignore marker
func isIgnored(attrs []*syntax.Attribute) bool {
	for _, attr := range attrs {
		if attr.IsIdent(IgnoreMarker) {
			return true
		}
	}
	return false
}
