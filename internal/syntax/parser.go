package syntax

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// defLexer tokenizes API definition files. Order matters: "::" and "->" must
// win over the single-character punctuation rule.
var defLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*(?s:.*?)\*/`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "PathSep", Pattern: `::`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "Punct", Pattern: `[#\[\]{}()<>,;:=&*!?'|.+\-/%^~@]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var fileParser = participle.MustBuild[File](
	participle.Lexer(defLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// ParseFile parses one API definition file into its declaration tree.
// filename is used for token positions only.
func ParseFile(filename string, src []byte) (*File, error) {
	return fileParser.ParseBytes(filename, src)
}

// ParseString is a convenience wrapper around ParseFile for tests and callers
// holding in-memory sources.
func ParseString(filename, src string) (*File, error) {
	return ParseFile(filename, []byte(src))
}
