package discovery

import "github.com/markerscan/markerscan/internal/syntax"

// EntryKind classifies a discovered declaration
type EntryKind int

const (
	KindOperation EntryKind = iota
	KindModel
	KindResponse
	KindCustomModelImpl
	KindCustomResponseImpl
)

// String returns the string representation of the entry kind
func (k EntryKind) String() string {
	switch k {
	case KindOperation:
		return "operation"
	case KindModel:
		return "model"
	case KindResponse:
		return "response"
	case KindCustomModelImpl:
		return "custom_model_impl"
	case KindCustomResponseImpl:
		return "custom_response_impl"
	default:
		return "unknown"
	}
}

// Entry is one discovered declaration: a kind plus the fully-qualified
// reference path of the declaration.
type Entry struct {
	Kind EntryKind
	Path syntax.Path
}

// Result is the final output of a discovery run. Each collection preserves
// declaration order within files and file order across files; duplicates are
// not collapsed.
type Result struct {
	Operations []syntax.Path `yaml:"operations" json:"operations"`
	Models     []syntax.Path `yaml:"models" json:"models"`
	Responses  []syntax.Path `yaml:"responses" json:"responses"`
}

// aggregate partitions entries by kind into the three output collections.
// Models collect both annotated models and custom capability impls; likewise
// for responses. A single linear fold, no re-sorting, no deduplication.
func aggregate(entries []Entry) Result {
	// non-nil collections so an empty run serializes as [] rather than null
	result := Result{
		Operations: []syntax.Path{},
		Models:     []syntax.Path{},
		Responses:  []syntax.Path{},
	}
	for _, e := range entries {
		switch e.Kind {
		case KindOperation:
			result.Operations = append(result.Operations, e.Path)
		case KindModel, KindCustomModelImpl:
			result.Models = append(result.Models, e.Path)
		case KindResponse, KindCustomResponseImpl:
			result.Responses = append(result.Responses, e.Path)
		}
	}
	return result
}
