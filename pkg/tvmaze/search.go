package tvmaze

import (
	"fmt"

	"github.com/tvmeta/go-tvmaze/pkg/request"
)

// SearchShowsRequest searches shows by their name - https://www.tvmaze.com/api#show-search.
// Results are ordered by relevancy score, best match first.
func (a API) SearchShowsRequest(query string) request.APIRequest[*[]ShowSearchResult] {
	result := make([]ShowSearchResult, 0)
	if query == "" {
		return request.NewAPIRequest(&result, request.NewReqDefinitionError(fmt.Errorf("search query cannot be empty")))
	}
	req := a.newRequest().
		WithResult(&result).
		WithGet(SearchShowsEndpoint).
		AndQueryParam("q", query)
	return request.NewAPIRequest(&result, req)
}

// SingleSearchShowRequest returns the single best match of the query - https://www.tvmaze.com/api#show-single-search.
func (a API) SingleSearchShowRequest(query string, embed ...Embed) request.APIRequest[*Show] {
	result := &Show{}
	if query == "" {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("search query cannot be empty")))
	}
	req := a.newRequest().
		WithResult(result).
		WithGet(SingleSearchShowEndpoint).
		AndQueryParam("q", query)
	if len(embed) > 0 {
		req = req.AndQueryParamValues("embed[]", embedQueryValues(embed)...)
	}
	return request.NewAPIRequest(result, req)
}

// SearchPeopleRequest searches people by their name - https://www.tvmaze.com/api#people-search.
func (a API) SearchPeopleRequest(query string) request.APIRequest[*[]PersonSearchResult] {
	result := make([]PersonSearchResult, 0)
	if query == "" {
		return request.NewAPIRequest(&result, request.NewReqDefinitionError(fmt.Errorf("search query cannot be empty")))
	}
	req := a.newRequest().
		WithResult(&result).
		WithGet(SearchPeopleEndpoint).
		AndQueryParam("q", query)
	return request.NewAPIRequest(&result, req)
}

// embedQueryValues converts the embed list to "embed[]" query values, preserving order.
func embedQueryValues(embed []Embed) []string {
	out := make([]string, 0, len(embed))
	for _, v := range embed {
		out = append(out, v.String())
	}
	return out
}
