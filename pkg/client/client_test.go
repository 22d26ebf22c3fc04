package client_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	. "github.com/tvmeta/go-tvmaze/pkg/client"
	"github.com/tvmeta/go-tvmaze/pkg/request"
)

type testStruct struct {
	Foo string `json:"foo"`
}

type testError struct {
	ErrorMsg string `json:"error"`
}

func (e testError) Error() string {
	return e.ErrorMsg
}

func TestNew(t *testing.T) {
	t.Parallel()
	c := New()
	assert.NotNil(t, c)
}

func TestRequest(t *testing.T) {
	t.Parallel()

	// Mocked response
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", `https://example.com`, httpmock.NewStringResponder(200, "test"))

	ctx := context.Background()
	c := New().WithTransport(transport)
	_, _, err := request.NewHTTPRequest(c).WithGet("https://example.com").Send(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, transport.GetCallCountInfo()["GET https://example.com"])
}

func TestBytesResult(t *testing.T) {
	t.Parallel()

	// Mocked response
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", "https://example.com", httpmock.NewJsonResponderOrPanic(200, map[string]any{"foo": "bar"}))

	ctx := context.Background()
	c := New().WithTransport(transport)
	var resultDef []byte
	_, result, err := request.NewHTTPRequest(c).WithGet("https://example.com").WithResult(&resultDef).Send(ctx)
	assert.NoError(t, err)
	assert.Same(t, &resultDef, result)
	assert.Equal(t, []byte(`{"foo":"bar"}`), resultDef)
}

func TestStringResult(t *testing.T) {
	t.Parallel()

	// Mocked response
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", "https://example.com", httpmock.NewJsonResponderOrPanic(200, map[string]any{"foo": "bar"}))

	ctx := context.Background()
	c := New().WithTransport(transport)
	var resultDef string
	_, result, err := request.NewHTTPRequest(c).WithGet("https://example.com").WithResult(&resultDef).Send(ctx)
	assert.NoError(t, err)
	assert.Same(t, &resultDef, result)
	assert.Equal(t, `{"foo":"bar"}`, resultDef)
}

func TestJsonMapResult(t *testing.T) {
	t.Parallel()

	// Mocked response
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", `https://example.com`, httpmock.NewJsonResponderOrPanic(200, map[string]any{"foo": "bar"}))

	ctx := context.Background()
	c := New().WithTransport(transport)
	resultDef := make(map[string]any)
	_, result, err := request.NewHTTPRequest(c).WithGet("https://example.com").WithResult(&resultDef).Send(ctx)
	assert.NoError(t, err)
	assert.Same(t, &resultDef, result)
	assert.Equal(t, &map[string]any{"foo": "bar"}, result, spew.Sdump(result))
}

func TestJsonStructResult(t *testing.T) {
	t.Parallel()

	// Mocked response
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", `https://example.com`, httpmock.NewJsonResponderOrPanic(200, map[string]any{"foo": "bar"}))

	ctx := context.Background()
	c := New().WithTransport(transport)
	resultDef := &testStruct{}
	_, result, err := request.NewHTTPRequest(c).WithGet("https://example.com").WithResult(resultDef).Send(ctx)
	assert.NoError(t, err)
	assert.Same(t, resultDef, result)
	assert.Equal(t, &testStruct{Foo: "bar"}, result)
}

func TestJsonErrorResult(t *testing.T) {
	t.Parallel()

	// Mocked response
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", `https://example.com`, httpmock.NewJsonResponderOrPanic(400, map[string]any{"error": "error message"}))

	ctx := context.Background()
	c := New().WithTransport(transport)
	errDef := &testError{}
	_, result, err := request.NewHTTPRequest(c).WithGet("https://example.com").WithError(errDef).Send(ctx)
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Same(t, errDef, err)
	assert.Equal(t, "error message", err.Error())
}

func TestGenericHTTPError(t *testing.T) {
	t.Parallel()

	// Mocked response, no JSON content type, no registered error type
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", `https://example.com`, httpmock.NewStringResponder(503, "Service Unavailable"))

	ctx := context.Background()
	c := New().WithTransport(transport)
	_, _, err := request.NewHTTPRequest(c).WithGet("https://example.com").Send(ctx)
	assert.Error(t, err)
	assert.Equal(t, `request GET "https://example.com" failed: 503 Service Unavailable`, err.Error())
}

func TestNetworkError(t *testing.T) {
	t.Parallel()

	// Mocked network error
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", `https://example.com`, httpmock.NewErrorResponder(assert.AnError))

	ctx := context.Background()
	c := New().WithTransport(transport)
	_, _, err := request.NewHTTPRequest(c).WithGet("https://example.com").Send(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `request GET "https://example.com" failed`)
	assert.Contains(t, err.Error(), assert.AnError.Error())
}

func TestDefaultHeaders(t *testing.T) {
	t.Parallel()

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", `https://example.com`, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, UserAgent, req.Header.Get("User-Agent"))
		assert.Equal(t, "gzip, br", req.Header.Get("Accept-Encoding"))
		return httpmock.NewStringResponse(200, "test"), nil
	})

	ctx := context.Background()
	c := New().WithTransport(transport)
	_, _, err := request.NewHTTPRequest(c).WithGet("https://example.com").Send(ctx)
	assert.NoError(t, err)
}

func TestHeaderOverride(t *testing.T) {
	t.Parallel()

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", `https://example.com`, func(req *http.Request) (*http.Response, error) {
		// Request header overrides the same-named client default, other defaults are kept
		assert.Equal(t, "my-agent/1.0", req.Header.Get("User-Agent"))
		assert.Equal(t, "gzip, br", req.Header.Get("Accept-Encoding"))
		return httpmock.NewStringResponse(200, "test"), nil
	})

	ctx := context.Background()
	c := New().WithTransport(transport)
	_, _, err := request.NewHTTPRequest(c).
		WithGet("https://example.com").
		AndHeader("User-Agent", "my-agent/1.0").
		Send(ctx)
	assert.NoError(t, err)
}

func TestPathAndQueryParams(t *testing.T) {
	t.Parallel()

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", `=~^https://example.com/shows/396/episodebynumber`, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "number=1&season=1", req.URL.RawQuery)
		return httpmock.NewStringResponse(200, "test"), nil
	})

	ctx := context.Background()
	c := New().WithTransport(transport).WithBaseURL("https://example.com")
	_, _, err := request.NewHTTPRequest(c).
		WithGet("shows/{id}/episodebynumber").
		AndPathParam("id", "396").
		AndQueryParam("season", "1").
		AndQueryParam("number", "1").
		Send(ctx)
	assert.NoError(t, err)
}

func TestQueryParamSequence(t *testing.T) {
	t.Parallel()

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", `=~^https://example.com/`, func(req *http.Request) (*http.Response, error) {
		// Repeated values keep the insertion order
		assert.Equal(t, "embed%5B%5D=episodes&embed%5B%5D=cast", req.URL.RawQuery)
		return httpmock.NewStringResponse(200, "test"), nil
	})

	ctx := context.Background()
	c := New().WithTransport(transport).WithBaseURL("https://example.com")
	_, _, err := request.NewHTTPRequest(c).
		WithGet("shows/1").
		AndQueryParamValues("embed[]", "episodes", "cast").
		Send(ctx)
	assert.NoError(t, err)
}

func TestNoQueryParams(t *testing.T) {
	t.Parallel()

	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", `=~^https://example.com/`, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "", req.URL.RawQuery)
		assert.False(t, strings.Contains(req.URL.String(), "?"))
		return httpmock.NewStringResponse(200, "test"), nil
	})

	ctx := context.Background()
	c := New().WithTransport(transport).WithBaseURL("https://example.com")
	_, _, err := request.NewHTTPRequest(c).WithGet("shows").Send(ctx)
	assert.NoError(t, err)
}
