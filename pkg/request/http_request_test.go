package request_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tvmeta/go-tvmaze/pkg/client"
	"github.com/tvmeta/go-tvmaze/pkg/request"
)

type result1 struct{}

type result2 struct{}

func TestHttpRequest_Immutability(t *testing.T) {
	t.Parallel()
	var a, b request.HTTPRequest
	c := client.New()
	a = request.NewHTTPRequest(c)

	// WithGet
	a = a.WithGet("/foo1")
	b = a.WithGet("/foo2")
	assert.Equal(t, http.MethodGet, a.Method())
	assert.Equal(t, "/foo1", a.URL())
	assert.Equal(t, http.MethodGet, b.Method())
	assert.Equal(t, "/foo2", b.URL())

	// WithMethod
	a = a.WithMethod(http.MethodGet)
	b = a.WithMethod(http.MethodHead)
	assert.Equal(t, http.MethodGet, a.Method())
	assert.Equal(t, http.MethodHead, b.Method())

	// WithBaseURL
	a = a.WithBaseURL("/base1")
	b = a.WithBaseURL("/base2")
	assert.Equal(t, "/base1/foo1", a.URL())
	assert.Equal(t, "/base2/foo1", b.URL())

	// WithURL
	a = a.WithURL("/url1")
	b = a.WithURL("/url2")
	assert.Equal(t, "/base1/url1", a.URL())
	assert.Equal(t, "/base1/url2", b.URL())

	// AndHeader
	a = a.AndHeader("key1", "value1")
	b = a.AndHeader("key2", "value2")
	assert.Equal(t, http.Header{"Key1": []string{"value1"}}, a.RequestHeader())
	assert.Equal(t, http.Header{"Key1": []string{"value1"}, "Key2": []string{"value2"}}, b.RequestHeader())

	// AndQueryParam
	a = a.AndQueryParam("key1", "value1")
	b = a.AndQueryParam("key2", "value2")
	assert.Equal(t, url.Values{"key1": []string{"value1"}}, a.QueryParams())
	assert.Equal(t, url.Values{"key1": []string{"value1"}, "key2": []string{"value2"}}, b.QueryParams())

	// AndQueryParamValues
	a = a.AndQueryParamValues("seq", "a", "b")
	b = a.AndQueryParamValues("seq", "c")
	assert.Equal(t, url.Values{"key1": []string{"value1"}, "seq": []string{"a", "b"}}, a.QueryParams())
	assert.Equal(t, url.Values{"key1": []string{"value1"}, "seq": []string{"c"}}, b.QueryParams())

	// WithQueryParams
	a = a.WithQueryParams(map[string]string{"foo1": "bar1"})
	b = a.WithQueryParams(map[string]string{"foo2": "bar2"})
	assert.Equal(t, url.Values{"foo1": []string{"bar1"}}, a.QueryParams())
	assert.Equal(t, url.Values{"foo2": []string{"bar2"}}, b.QueryParams())

	// AndPathParam
	a = a.AndPathParam("key1", "value1")
	b = a.AndPathParam("key2", "value2")
	assert.Equal(t, map[string]string{"key1": "value1"}, a.PathParams())
	assert.Equal(t, map[string]string{"key1": "value1", "key2": "value2"}, b.PathParams())

	// WithPathParams
	a = a.WithPathParams(map[string]string{"foo1": "bar1"})
	b = a.WithPathParams(map[string]string{"foo2": "bar2"})
	assert.Equal(t, map[string]string{"foo1": "bar1"}, a.PathParams())
	assert.Equal(t, map[string]string{"foo2": "bar2"}, b.PathParams())

	// WithResult
	a = a.WithResult(&result1{})
	b = a.WithResult(&result2{})
	assert.Equal(t, &result1{}, a.ResultDef())
	assert.Equal(t, &result2{}, b.ResultDef())
}

func TestHttpRequest_QuerySequenceOrder(t *testing.T) {
	t.Parallel()
	c := client.New()
	r := request.NewHTTPRequest(c).
		WithGet("foo").
		AndQueryParam("q", "star vs the forces of evil").
		AndQueryParamValues("embed[]", "episodes", "cast")
	assert.Equal(t, "embed%5B%5D=episodes&embed%5B%5D=cast&q=star+vs+the+forces+of+evil", r.QueryParams().Encode())
}
