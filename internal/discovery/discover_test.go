package discovery

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markerscan/markerscan/internal/errors"
	"github.com/markerscan/markerscan/internal/syntax"
)

// parseSource builds a SourceFile rooted at "api" from inline source
func parseSource(t *testing.T, src string) SourceFile {
	t.Helper()
	tree, err := syntax.ParseString("test.api", src)
	require.NoError(t, err)
	return SourceFile{File: "test.api", Namespace: syntax.NewPath("api"), Tree: tree}
}

func discoverOne(t *testing.T, src string, params Parameters) Result {
	t.Helper()
	result, err := Discover([]SourceFile{parseSource(t, src)}, params)
	require.NoError(t, err)
	return result
}

func paths(ps []syntax.Path) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

func TestDiscoverAnnotatedFunction(t *testing.T) {
	src := `
mod handlers {
    #[op]
    fn get_user() {}
}
`
	result := discoverOne(t, src, Parameters{FunctionMarker: "op", ModelMarker: "ToSchema", ResponseMarker: "ToResponse"})
	assert.Equal(t, []string{"api::handlers::get_user"}, paths(result.Operations))
	assert.Empty(t, result.Models)
	assert.Empty(t, result.Responses)
}

func TestDiscoverFunctionMarkerMatchesDottedSegment(t *testing.T) {
	src := `
mod handlers {
    #[openapi::path(get, path = "/users")]
    fn get_user() {}
}
`
	result := discoverOne(t, src, Default())
	assert.Equal(t, []string{"api::handlers::get_user"}, paths(result.Operations))
}

func TestDiscoverFunctionWithoutAnnotations(t *testing.T) {
	result := discoverOne(t, `fn plain() {}`, Default())
	assert.Empty(t, result.Operations)
}

func TestDiscoverIgnoredFunction(t *testing.T) {
	// ignore wins even when a matching marker is also present
	src := `
#[openapi]
#[openapi_ignore]
fn hidden() {}
`
	result := discoverOne(t, src, Default())
	assert.Empty(t, result.Operations)
}

func TestDiscoverDuplicateMarkerEmitsTwice(t *testing.T) {
	// one entry per matching annotation occurrence; duplicates are not
	// collapsed
	src := `
mod handlers {
    #[openapi::path]
    #[openapi]
    fn get_user() {}
}
`
	result := discoverOne(t, src, Default())
	assert.Equal(t,
		[]string{"api::handlers::get_user", "api::handlers::get_user"},
		paths(result.Operations))
}

func TestDiscoverBuiltinSchemaMarker(t *testing.T) {
	src := `
mod handlers {
    #[derive(openapi::ToSchema)]
    struct User {
        id: u64,
    }
}
`
	result := discoverOne(t, src, Default())
	assert.Equal(t, []string{"api::handlers::User"}, paths(result.Models))
	assert.Empty(t, result.Responses)
}

func TestDiscoverGenericTypeExcluded(t *testing.T) {
	src := `
mod handlers {
    #[derive(openapi::ToSchema)]
    struct User<T> {
        value: T,
    }
}
`
	result := discoverOne(t, src, Default())
	assert.Empty(t, result.Models)
}

func TestDiscoverEnumWithResponseMarker(t *testing.T) {
	src := `
#[derive(openapi::ToResponse)]
enum Outcome {
    Ok,
    Failed,
}
`
	result := discoverOne(t, src, Default())
	assert.Equal(t, []string{"api::Outcome"}, paths(result.Responses))
}

func TestDiscoverConfiguredMarkerNames(t *testing.T) {
	src := `
#[derive(Schema, Reply)]
struct Payload {
    body: String,
}
`
	params := Parameters{FunctionMarker: "openapi", ModelMarker: "Schema", ResponseMarker: "Reply"}
	result := discoverOne(t, src, params)
	assert.Equal(t, []string{"api::Payload"}, paths(result.Models))
	assert.Equal(t, []string{"api::Payload"}, paths(result.Responses))
}

func TestDiscoverTypeMatchesBothTiers(t *testing.T) {
	// built-in and configured checks both run per nested marker
	src := `
#[derive(openapi::ToSchema, openapi::ToResponse, Schema)]
struct Dual {
    id: u64,
}
`
	params := Parameters{FunctionMarker: "openapi", ModelMarker: "Schema", ResponseMarker: "ToResponse"}
	result := discoverOne(t, src, params)
	assert.Equal(t, []string{"api::Dual", "api::Dual"}, paths(result.Models))
	assert.Equal(t, []string{"api::Dual"}, paths(result.Responses))
}

func TestDiscoverIgnoredTypeDiscardsEarlierMatches(t *testing.T) {
	src := `
#[derive(openapi::ToSchema)]
#[openapi_ignore]
struct Hidden {
    id: u64,
}
`
	result := discoverOne(t, src, Default())
	assert.Empty(t, result.Models)
}

func TestDiscoverCustomModelImpl(t *testing.T) {
	src := `
mod shapes {
    impl ModelMarkerCapability for Widget {
        fn schema() {}
    }
}
`
	params := Parameters{FunctionMarker: "openapi", ModelMarker: "ModelMarkerCapability", ResponseMarker: "ToResponse"}
	result := discoverOne(t, src, params)
	assert.Equal(t, []string{"api::shapes::Widget"}, paths(result.Models))
}

func TestDiscoverCustomResponseImplMatchesFinalSegment(t *testing.T) {
	src := `
impl openapi::ToResponse for Health {}
`
	result := discoverOne(t, src, Default())
	assert.Equal(t, []string{"api::Health"}, paths(result.Responses))
}

func TestDiscoverImplIgnored(t *testing.T) {
	src := `
impl Display for Widget {}

impl Widget {
    fn helper() {}
}
`
	result := discoverOne(t, src, Default())
	assert.Empty(t, result.Models)
	assert.Empty(t, result.Responses)
}

func TestDiscoverNestedNamespacePath(t *testing.T) {
	src := `
mod a {
    mod b {
        mod c {
            #[openapi]
            fn deep() {}
        }
    }
}
`
	result := discoverOne(t, src, Default())
	assert.Equal(t, []string{"api::a::b::c::deep"}, paths(result.Operations))
}

func TestDiscoverExternalAndEmptyNamespaces(t *testing.T) {
	src := `
mod elsewhere;
mod empty {}
`
	result := discoverOne(t, src, Default())
	assert.Empty(t, result.Operations)
	assert.Empty(t, result.Models)
	assert.Empty(t, result.Responses)
}

func TestDiscoverPreservesDeclarationAndFileOrder(t *testing.T) {
	first, err := syntax.ParseString("first.api", `
#[openapi]
fn alpha() {}

mod inner {
    #[openapi]
    fn beta() {}
}
`)
	require.NoError(t, err)
	second, err := syntax.ParseString("second.api", `
#[openapi]
fn gamma() {}
`)
	require.NoError(t, err)

	result, err := Discover([]SourceFile{
		{File: "first.api", Namespace: syntax.NewPath("api"), Tree: first},
		{File: "second.api", Namespace: syntax.NewPath("api", "extra"), Tree: second},
	}, Default())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"api::alpha",
		"api::inner::beta",
		"api::extra::gamma",
	}, paths(result.Operations))
}

func TestDiscoverMalformedMarkerListFailsRun(t *testing.T) {
	src := `
#[openapi]
fn listed() {}

#[derive(123)]
struct Broken {
    id: u64,
}
`
	_, err := Discover([]SourceFile{parseSource(t, src)}, Default())
	require.Error(t, err)

	var base *errors.BaseError
	require.True(t, stderrors.As(err, &base))
	assert.Equal(t, errors.SyntaxErrorCode, base.ErrorCode())
	assert.Equal(t, "test.api", base.Location().File)
}

func TestEntryKindString(t *testing.T) {
	assert.Equal(t, "operation", KindOperation.String())
	assert.Equal(t, "model", KindModel.String())
	assert.Equal(t, "response", KindResponse.String())
	assert.Equal(t, "custom_model_impl", KindCustomModelImpl.String())
	assert.Equal(t, "custom_response_impl", KindCustomResponseImpl.String())
}
