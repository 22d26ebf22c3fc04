package tvmaze

import (
	"github.com/tvmeta/go-tvmaze/pkg/request"
)

// ShowUpdatesRequest returns the last modification timestamp of every show in the database,
// https://www.tvmaze.com/api#show-updates.
func (a API) ShowUpdatesRequest() request.APIRequest[*Updates] {
	result := make(Updates)
	req := a.newRequest().
		WithResult(&result).
		WithGet(ShowUpdatesEndpoint)
	return request.NewAPIRequest(&result, req)
}
