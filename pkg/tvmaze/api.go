// Package tvmaze contains request definitions for the TVMaze public API,
// see https://www.tvmaze.com/api.
//
// Requests can be sent by any HTTP client that implements the request.Sender interface.
// The API needs no authentication.
//
// By default, requests are sent to http://api.tvmaze.com,
// use the WithHTTPS option to switch the scheme.
package tvmaze

import (
	"github.com/tvmeta/go-tvmaze/pkg/client"
	"github.com/tvmeta/go-tvmaze/pkg/request"
)

// DefaultHost of the TVMaze API.
const DefaultHost = "api.tvmaze.com"

// API is a facade for all TVMaze API endpoints.
// The zero value is not usable, use the New function.
// API is a value, derived configurations are cheap copies.
type API struct {
	sender request.Sender
}

type apiConfig struct {
	client  *client.Client
	baseURL string
	https   bool
}

// Option configures the API created by the New function.
type Option func(c *apiConfig)

// WithClient sets a custom HTTP client, for example with custom headers or a mocked transport.
func WithClient(cl *client.Client) Option {
	return func(c *apiConfig) {
		c.client = cl
	}
}

// WithHTTPS switches requests to the https scheme, the default is http.
func WithHTTPS() Option {
	return func(c *apiConfig) {
		c.https = true
	}
}

// WithBaseURL replaces the whole base URL, it is intended for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *apiConfig) {
		c.baseURL = baseURL
	}
}

// New creates a TVMaze API facade.
func New(opts ...Option) API {
	config := apiConfig{}
	for _, opt := range opts {
		opt(&config)
	}

	var c client.Client
	if config.client != nil {
		c = *config.client
	} else {
		c = client.New()
	}

	baseURL := config.baseURL
	if baseURL == "" {
		scheme := "http"
		if config.https {
			scheme = "https"
		}
		baseURL = scheme + "://" + DefaultHost
	}

	return API{sender: c.WithBaseURL(baseURL)}
}

// Sender returns the underlying HTTP client.
func (a API) Sender() request.Sender {
	return a.sender
}

// newRequest creates a request and sets the default error type.
func (a API) newRequest() request.HTTPRequest {
	return request.NewHTTPRequest(a.sender).WithError(&Error{})
}
