package syntax

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/markerscan/markerscan/internal/errors"
)

// File represents one parsed API definition file
type File struct {
	Decls []*Decl `parser:"@@*"`
}

// Decl is a single top-level or namespace-level declaration. Exactly one of
// the variant fields is set. Use and Const exist only so that files containing
// them still parse; discovery ignores both shapes.
type Decl struct {
	Attrs  []*Attribute `parser:"@@*"`
	Mod    *ModDecl     `parser:"( @@"`
	Fn     *FnDecl      `parser:"| @@"`
	Struct *StructDecl  `parser:"| @@"`
	Enum   *EnumDecl    `parser:"| @@"`
	Impl   *ImplDecl    `parser:"| @@"`
	Use    *UseDecl     `parser:"| @@"`
	Const  *ConstDecl   `parser:"| @@ )"`
}

// Attribute is a marker annotation attached to a declaration, e.g.
// #[openapi::path] or #[derive(openapi::ToSchema, Clone)]. Dotted names are
// split into Path segments. Parenthesized arguments are kept raw and only
// parsed when a classifier needs them.
type Attribute struct {
	Pos  lexer.Position
	Path []string `parser:"'#' '[' @Ident ( '::' @Ident )*"`
	Args string   `parser:"( '(' @( !')' )* ')' )? ']'"`
}

// IsIdent reports whether the attribute is a bare single-segment name equal
// to name. Dotted attributes never match.
func (a *Attribute) IsIdent(name string) bool {
	return len(a.Path) == 1 && a.Path[0] == name
}

// HasSegment reports whether any segment of the attribute name equals name
func (a *Attribute) HasSegment(name string) bool {
	for _, seg := range a.Path {
		if seg == name {
			return true
		}
	}
	return false
}

// Location returns the attribute's source position for error reporting
func (a *Attribute) Location() errors.SourceLocation {
	return errors.SourceLocation{
		File:   a.Pos.Filename,
		Line:   a.Pos.Line,
		Column: a.Pos.Column,
	}
}

// ModDecl is a namespace declaration. Body is nil for the external-content
// form "mod name;" and non-nil (possibly empty) for the inline form
// "mod name { ... }".
type ModDecl struct {
	Name string   `parser:"'mod' @Ident"`
	Body *ModBody `parser:"( '{' @@ '}' | ';' )"`
}

// ModBody holds the inline declarations of a namespace
type ModBody struct {
	Decls []*Decl `parser:"@@*"`
}

// FnDecl is a function declaration
type FnDecl struct {
	Name     string   `parser:"'fn' @Ident"`
	Generics []string `parser:"( '<' @Ident ( ',' @Ident )* '>' )?"`
	Params   string   `parser:"'(' @( !')' )* ')'"`
	Return   string   `parser:"( '->' @( !( '{' | ';' ) )* )?"`
	Body     *Block   `parser:"( @@ | ';' )"`
}

// StructDecl is a record data-type declaration
type StructDecl struct {
	Name     string   `parser:"'struct' @Ident"`
	Generics []string `parser:"( '<' @Ident ( ',' @Ident )* '>' )?"`
	Body     *Block   `parser:"( @@ | ';' )"`
}

// EnumDecl is a variant data-type declaration
type EnumDecl struct {
	Name     string   `parser:"'enum' @Ident"`
	Generics []string `parser:"( '<' @Ident ( ',' @Ident )* '>' )?"`
	Body     *Block   `parser:"( @@ | ';' )"`
}

// ImplDecl is a capability-implementation block. For the capability form
// "impl Capability for Target { ... }", Trait holds the capability name and
// Target the type name. For an inherent block "impl Target { ... }", Target
// is nil and Trait holds the type name instead.
type ImplDecl struct {
	Trait  []string `parser:"'impl' ( '<' Ident ( ',' Ident )* '>' )? @Ident ( '::' @Ident )*"`
	Target *string  `parser:"( 'for' @Ident ( '<' ( !'>' )* '>' )? )?"`
	Body   *Block   `parser:"@@"`
}

// TraitName returns the final segment of the implemented capability name.
// ok is false for inherent blocks, which name no capability.
func (d *ImplDecl) TraitName() (name string, ok bool) {
	if d.Target == nil || len(d.Trait) == 0 {
		return "", false
	}
	return d.Trait[len(d.Trait)-1], true
}

// UseDecl is an import declaration; discovery ignores it
type UseDecl struct {
	Path []string `parser:"'use' @Ident ( '::' @Ident )* ';'"`
}

// ConstDecl is a constant declaration; discovery ignores it
type ConstDecl struct {
	Name string `parser:"'const' @Ident ( !';' )* ';'"`
}

// Block is a brace-delimited body. Contents are consumed but not modeled:
// discovery only needs declaration heads.
type Block struct {
	Elems []*BlockElem `parser:"'{' @@* '}'"`
}

// BlockElem is either a nested block or any single non-brace token
type BlockElem struct {
	Block *Block  `parser:"@@"`
	Token *string `parser:"| @( !( '{' | '}' ) )"`
}
