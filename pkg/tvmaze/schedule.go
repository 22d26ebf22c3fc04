package tvmaze

import (
	"github.com/tvmeta/go-tvmaze/pkg/request"
)

// ScheduleRequest returns episodes airing in a country on a date - https://www.tvmaze.com/api#schedule.
// The country code (ISO 3166-1, e.g. "US") and the date (ISO 8601, e.g. "2014-12-01")
// are passed through unvalidated; an empty value omits the parameter
// and the API falls back to its defaults (US, today).
func (a API) ScheduleRequest(countryCode, date string) request.APIRequest[*[]Episode] {
	result := make([]Episode, 0)
	req := a.newRequest().
		WithResult(&result).
		WithGet(ScheduleEndpoint)
	if countryCode != "" {
		req = req.AndQueryParam("countrycode", countryCode)
	}
	if date != "" {
		req = req.AndQueryParam("date", date)
	}
	return request.NewAPIRequest(&result, req)
}

// FullScheduleRequest returns all future episodes known to the API - https://www.tvmaze.com/api#full-schedule.
// The response is very large, tens of megabytes.
func (a API) FullScheduleRequest() request.APIRequest[*[]Episode] {
	result := make([]Episode, 0)
	req := a.newRequest().
		WithResult(&result).
		WithGet(FullScheduleEndpoint)
	return request.NewAPIRequest(&result, req)
}
