package request_test

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/tvmeta/go-tvmaze/pkg/client"
	"github.com/tvmeta/go-tvmaze/pkg/request"
)

func TestAPIRequest_WithBefore(t *testing.T) {
	t.Parallel()
	c, transport := client.NewMockedClient()
	c = c.WithBaseURL("https://example.com")
	transport.RegisterResponder("GET", `=~^https://example.com/`, httpmock.NewStringResponder(200, "OK"))

	var order []string
	result := &result1{}
	out, err := request.
		NewAPIRequest(result, request.NewHTTPRequest(c).WithGet("foo")).
		WithBefore(func(ctx context.Context) error {
			order = append(order, "before1")
			return nil
		}).
		WithBefore(func(ctx context.Context) error {
			order = append(order, "before2")
			return nil
		}).
		WithOnSuccess(func(ctx context.Context, result *result1) error {
			order = append(order, "success")
			return nil
		}).
		Send(context.Background())
	assert.NoError(t, err)
	assert.Same(t, result, out)
	assert.Equal(t, []string{"before1", "before2", "success"}, order)
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestAPIRequest_WithBefore_Abort(t *testing.T) {
	t.Parallel()
	c, transport := client.NewMockedClient()
	c = c.WithBaseURL("https://example.com")
	transport.RegisterResponder("GET", `=~^https://example.com/`, httpmock.NewStringResponder(200, "OK"))

	_, err := request.
		NewAPIRequest(&result1{}, request.NewHTTPRequest(c).WithGet("foo")).
		WithBefore(func(ctx context.Context) error {
			return assert.AnError
		}).
		Send(context.Background())
	assert.ErrorIs(t, err, assert.AnError)

	// The before listener failed, no request has been sent
	assert.Equal(t, 0, transport.GetTotalCallCount())
}

func TestParallel(t *testing.T) {
	t.Parallel()
	c, transport := client.NewMockedClient()
	c = c.WithBaseURL("https://example.com")
	transport.RegisterResponder("GET", `=~^https://example.com/`, httpmock.NewStringResponder(200, "OK"))

	requests := request.Parallel(
		request.NewHTTPRequest(c).WithGet("foo1"),
		request.NewHTTPRequest(c).WithGet("foo2"),
		request.NewHTTPRequest(c).WithGet("foo3"),
	)
	assert.NoError(t, requests.SendOrErr(context.Background()))
	assert.Equal(t, 3, transport.GetTotalCallCount())
}

func TestParallel_HandleError(t *testing.T) {
	t.Parallel()
	c, transport := client.NewMockedClient()
	c = c.WithBaseURL("https://example.com")
	transport.RegisterResponder("GET", `https://example.com/ok`, httpmock.NewStringResponder(200, "OK"))
	transport.RegisterResponder("GET", `https://example.com/err`, httpmock.NewStringResponder(500, "Internal Server Error"))

	requests := request.Parallel(
		request.NewHTTPRequest(c).WithGet("ok"),
		request.NewHTTPRequest(c).WithGet("err"),
	)
	err := requests.SendOrErr(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `request GET "https://example.com/err" failed: 500 Internal Server Error`)
	assert.Equal(t, 2, transport.GetTotalCallCount())
}

func TestNoOperationAPIRequest(t *testing.T) {
	t.Parallel()
	_, transport := client.NewMockedClient()

	result := &result1{}
	out, err := request.NewNoOperationAPIRequest(result).Send(context.Background())
	assert.NoError(t, err)
	assert.Same(t, result, out)

	// No HTTP request is sent
	assert.Equal(t, 0, transport.GetTotalCallCount())
}
