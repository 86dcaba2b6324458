// Package annotations parses the marker lists carried by composite
// annotations. A composite annotation is the "auto-implement these
// capabilities" form: a single annotation whose arguments are a
// comma-separated list of marker names, each either a bare identifier or a
// dotted two-segment name.
package annotations

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/markerscan/markerscan/internal/errors"
)

// MarkerRef is one marker name from a composite marker list
type MarkerRef struct {
	Segments []string `parser:"@Ident ( '::' @Ident )*"`
}

// IsIdent reports whether the marker is a bare single-segment name equal to
// name. Dotted markers never match a configured single name.
func (m MarkerRef) IsIdent(name string) bool {
	return len(m.Segments) == 1 && m.Segments[0] == name
}

// Last returns the final segment of the marker name
func (m MarkerRef) Last() string {
	if len(m.Segments) == 0 {
		return ""
	}
	return m.Segments[len(m.Segments)-1]
}

// markerList is the comma-separated list grammar. A trailing comma is legal.
type markerList struct {
	Markers []MarkerRef `parser:"@@ ( ',' @@ )* ','?"`
}

var markerLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "PathSep", Pattern: `::`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var markerParser = participle.MustBuild[markerList](
	participle.Lexer(markerLexer),
	participle.Elide("Whitespace"),
)

// ParseMarkerList parses the raw argument text of a composite annotation into
// its nested marker names. Empty input is a valid empty list. Any input that
// is not a well-formed marker list is a fatal annotation syntax failure.
func ParseMarkerList(raw string) ([]MarkerRef, error) {
	if raw == "" {
		return nil, nil
	}
	list, err := markerParser.ParseString("", raw)
	if err != nil {
		return nil, errors.Wrapf(errors.SyntaxErrorCode, err,
			"malformed marker list %q", raw).
			WithSuggestion("composite annotations take comma-separated marker names, e.g. derive(openapi::ToSchema, Clone)")
	}
	return list.Markers, nil
}
