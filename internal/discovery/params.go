package discovery

// Reserved marker names. These are fixed; only the three Parameters fields
// are caller-configurable.
const (
	// IgnoreMarker unconditionally excludes its declaration from all outputs
	IgnoreMarker = "openapi_ignore"

	// compositeMarker is the annotation whose arguments form a marker list
	compositeMarker = "derive"

	// builtinNamespace qualifies the two built-in capability markers
	builtinNamespace      = "openapi"
	builtinSchemaMarker   = "ToSchema"
	builtinResponseMarker = "ToResponse"
)

// Parameters holds the configured marker names. It is immutable and passed
// by value through every recursive step; no defaults are assumed here — the
// caller resolves them before invocation.
type Parameters struct {
	FunctionMarker string // marks functions as operations
	ModelMarker    string // marks data types as schema models
	ResponseMarker string // marks data types as response models
}

// Default returns the marker names used when the caller configures nothing
func Default() Parameters {
	return Parameters{
		FunctionMarker: builtinNamespace,
		ModelMarker:    builtinSchemaMarker,
		ResponseMarker: builtinResponseMarker,
	}
}
