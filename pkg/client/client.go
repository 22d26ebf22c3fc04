// Package client provides support for defining an HTTP client for an API.
//
// Use request.HTTPRequest interface to define immutable HTTP requests, see request.NewHTTPRequest function.
// Requests are sent using the request.Sender interface.
//
// Client is a default implementation of the Sender interface.
// Client is based on the standard net/http package and contains tracing support.
// It is easy to implement your custom HTTP client, by implementing the Sender interface.
//
// The Client issues exactly one attempt per request: no retry, no caching,
// and no status-code interpretation beyond mapping error responses.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptrace"
	"net/url"
	"strings"
	"time"

	"github.com/tvmeta/go-tvmaze/pkg/client/decode"
	"github.com/tvmeta/go-tvmaze/pkg/request"
)

// Client is a default and configurable implementation of the request.Sender interface by Go native http.Client.
type Client struct {
	transport    http.RoundTripper
	baseURL      *url.URL
	header       http.Header
	traceFactory TraceFactory
}

// New creates new HTTP Client.
func New() Client {
	c := Client{transport: DefaultTransport(), header: make(http.Header)}
	c.header.Set("User-Agent", UserAgent)
	c.header.Set("Accept-Encoding", "gzip, br")
	return c
}

// WithBaseURL returns a clone of the Client with base url set.
func (c Client) WithBaseURL(baseURLStr string) Client {
	baseURL, err := url.Parse(baseURLStr)
	if err != nil {
		panic(fmt.Errorf(`base url "%s" is not valid: %w`, baseURLStr, err))
	}
	c.baseURL = baseURL
	return c
}

// WithUserAgent returns a clone of the Client with user agent set.
func (c Client) WithUserAgent(v string) Client {
	c.header = c.header.Clone()
	c.header.Set("User-Agent", v)
	return c
}

// WithHeader returns a clone of the Client with common header set.
func (c Client) WithHeader(key, value string) Client {
	c.header = c.header.Clone()
	c.header.Set(key, value)
	return c
}

// WithHeaders returns a clone of the Client with common headers set.
func (c Client) WithHeaders(headers map[string]string) Client {
	c.header = c.header.Clone()
	for k, v := range headers {
		c.header.Set(k, v)
	}
	return c
}

// WithTransport returns a clone of the Client with a HTTP transport set.
func (c Client) WithTransport(transport http.RoundTripper) Client {
	if transport == nil || transport == http.RoundTripper(nil) {
		panic(fmt.Errorf("transport cannot be nil"))
	}
	c.transport = transport
	return c
}

// WithTrace returns a clone of the Client with Trace hooks set.
func (c Client) WithTrace(fn TraceFactory) Client {
	c.traceFactory = fn
	return c
}

// Send method sends HTTP request and returns HTTP response, it implements the request.Sender interface.
func (c Client) Send(ctx context.Context, reqDef request.HTTPRequest) (res *http.Response, result any, err error) {
	// Method cannot be called on an empty value
	if c.transport == nil {
		panic(fmt.Errorf("client value is not initialized"))
	}

	// If method or url is not set, panic occurs. So we get these values first.
	method := reqDef.Method()
	reqURLStr := reqDef.URL()

	// Init trace
	var trace *Trace
	if c.traceFactory != nil {
		trace = c.traceFactory()
		if trace != nil {
			ctx = httptrace.WithClientTrace(ctx, &trace.ClientTrace)
		}
	}

	// Trace got request
	if trace != nil && trace.GotRequest != nil {
		trace.GotRequest(reqDef)
	}

	// Replace path parameters
	for k, v := range reqDef.PathParams() {
		reqURLStr = strings.ReplaceAll(reqURLStr, url.PathEscape("{"+k+"}"), url.PathEscape(v))
	}

	// Convert to absolute url
	var reqURL *url.URL
	if c.baseURL == nil {
		reqURL, err = url.Parse(reqURLStr)
	} else {
		reqURL, err = c.baseURL.Parse(reqURLStr)
	}
	if err != nil {
		return nil, nil, err
	}

	// Set query parameters
	reqURL.RawQuery = reqDef.QueryParams().Encode()

	// Create request
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return nil, nil, err
	}

	// Global headers
	for k, values := range c.header {
		for _, v := range values {
			req.Header.Set(k, v)
		}
	}

	// Request headers
	for k, values := range reqDef.RequestHeader() {
		req.Header.Del(k) // clear global values
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	// Setup native client, the timeout policy is left to the transport
	nativeClient := http.Client{
		Transport: roundTripper{trace: trace, wrapped: c.transport}, // wrapped transport for trace
	}

	// Send request, exactly one attempt
	startedAt := time.Now()
	res, err = nativeClient.Do(req)

	// Trace request processed
	if trace != nil && trace.RequestProcessed != nil {
		defer func() {
			trace.RequestProcessed(result, err)
		}()
	}

	// Handle send error
	if err != nil {
		return nil, nil, handleSendError(startedAt, req, err)
	}

	// Process body
	if r, e, unexpectedErr := handleResponseBody(res, reqDef.ResultDef(), reqDef.ErrorDef()); unexpectedErr == nil {
		// No unexpected error, set result/error result
		result, err = r, e
	} else {
		// Unexpected error
		err = fmt.Errorf(`cannot process request %s "%s": %w`, req.Method, req.URL.String(), unexpectedErr)
	}

	// Generic HTTP error
	if err == nil && res.StatusCode > 399 {
		return res, nil, fmt.Errorf(`request %s "%s" failed: %d %s`, req.Method, req.URL.String(), res.StatusCode, http.StatusText(res.StatusCode))
	}

	return res, result, err
}

func handleResponseBody(r *http.Response, resultDef any, errDef error) (result any, err error, unexpectedErr error) {
	defer r.Body.Close()

	if r.StatusCode == http.StatusNoContent {
		return nil, nil, nil
	}

	// Process content encoding
	if body, err := decode.Decode(r.Body, r.Header.Get("Content-Encoding")); err == nil {
		r.Body = body
	} else {
		return nil, nil, err
	}

	// Process content type
	contentType := r.Header.Get("Content-Type")
	if v, ok := resultDef.(*[]byte); ok {
		// Load response body as []byte
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, nil, fmt.Errorf(`cannot read response body: %w`, err)
		}
		*v = bodyBytes
		return v, nil, nil

	} else if v, ok := resultDef.(*string); ok {
		// Load response body as string
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, nil, fmt.Errorf(`cannot read response body: %w`, err)
		}
		*v = string(bodyBytes)
		return v, nil, nil

	} else if v, ok := resultDef.(io.Writer); ok {
		// Stream response to io.Writer
		if _, err := io.Copy(v, r.Body); err != nil {
			return nil, nil, fmt.Errorf(`cannot read response body: %w`, err)
		}
	} else if isJSONContentType(contentType) {
		// Map JSON response
		if r.StatusCode > 199 && r.StatusCode < 300 && resultDef != nil {
			// Map JSON response to defined result
			if err := json.NewDecoder(r.Body).Decode(resultDef); err != nil {
				return nil, nil, fmt.Errorf(`cannot decode JSON result: %w`, err)
			}
			return resultDef, nil, nil

		} else if r.StatusCode > 399 && errDef != nil {
			// Map JSON response to defined error
			if err := json.NewDecoder(r.Body).Decode(errDef); err != nil {
				return nil, nil, fmt.Errorf(`cannot decode JSON error: %w`, err)
			}
			// Set HTTP request
			if v, ok := errDef.(errorWithRequest); ok {
				v.SetRequest(r.Request)
			}
			// Set HTTP response
			if v, ok := errDef.(errorWithResponse); ok {
				v.SetResponse(r)
			}
			return nil, errDef, nil
		}
	}
	return nil, nil, nil
}

func handleSendError(startedAt time.Time, req *http.Request, err error) error {
	// Timeout
	var netErr net.Error
	if deadline, ok := req.Context().Deadline(); ok && errors.Is(err, context.DeadlineExceeded) {
		err = urlError(req, fmt.Errorf("timeout after %s", deadline.Sub(startedAt)))
	} else if errors.Is(err, context.Canceled) {
		err = urlError(req, fmt.Errorf("canceled after %s", time.Since(startedAt)))
	} else if errors.As(err, &netErr) && netErr.Timeout() {
		err = urlError(req, fmt.Errorf("timeout after %s", time.Since(startedAt)))
	}

	// Url error
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = fmt.Errorf(`request %s "%s" failed: %w`, strings.ToUpper(urlErr.Op), urlErr.URL, urlErr.Err)
	}

	return err
}

// roundTripper wraps a http.RoundTripper and adds trace functionality.
type roundTripper struct {
	trace   *Trace
	wrapped http.RoundTripper
}

func (rt roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// Trace request start
	if rt.trace != nil && rt.trace.HTTPRequestStart != nil {
		rt.trace.HTTPRequestStart(req)
	}

	// Send
	res, err := rt.wrapped.RoundTrip(req)

	// Trace request done
	if rt.trace != nil && rt.trace.HTTPRequestDone != nil {
		rt.trace.HTTPRequestDone(res, err)
	}

	return res, err
}

type errorWithRequest interface {
	error
	SetRequest(request *http.Request)
}

type errorWithResponse interface {
	error
	SetResponse(response *http.Response)
}

func urlError(req *http.Request, err error) *url.Error {
	return &url.Error{Op: req.Method, URL: req.URL.String(), Err: err}
}
