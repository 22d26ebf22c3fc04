package tvmaze

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/tvmeta/go-tvmaze/pkg/request"
)

// ShowRequest returns the main information of a show - https://www.tvmaze.com/api#show-main-information.
func (a API) ShowRequest(showID int, embed ...Embed) request.APIRequest[*Show] {
	result := &Show{}
	if err := validShowID(showID); err != nil {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(err))
	}
	req := a.newRequest().
		WithResult(result).
		WithGet(ShowEndpoint).
		AndPathParam("id", cast.ToString(showID))
	if len(embed) > 0 {
		req = req.AndQueryParamValues("embed[]", embedQueryValues(embed)...)
	}
	return request.NewAPIRequest(result, req)
}

// ShowsIndexRequest returns a page of the show index - https://www.tvmaze.com/api#show-index.
// Pages are numbered from 0 and the zero page is the default,
// so the "page" parameter is sent only for page > 0.
// The API returns HTTP 404 for a page beyond the end of the index.
func (a API) ShowsIndexRequest(page int) request.APIRequest[*[]Show] {
	result := make([]Show, 0)
	req := a.newRequest().
		WithResult(&result).
		WithGet(ShowsEndpoint)
	if page > 0 {
		req = req.AndQueryParam("page", cast.ToString(page))
	}
	return request.NewAPIRequest(&result, req)
}

// EpisodesRequest returns all episodes of a show - https://www.tvmaze.com/api#show-episode-list.
// If specials is true, the list includes specials, inserted at their airdate position.
func (a API) EpisodesRequest(showID int, specials bool) request.APIRequest[*[]Episode] {
	result := make([]Episode, 0)
	if err := validShowID(showID); err != nil {
		return request.NewAPIRequest(&result, request.NewReqDefinitionError(err))
	}
	req := a.newRequest().
		WithResult(&result).
		WithGet(EpisodesEndpoint).
		AndPathParam("id", cast.ToString(showID))
	if specials {
		req = req.AndQueryParam("specials", "1")
	}
	return request.NewAPIRequest(&result, req)
}

// EpisodeByNumberRequest returns one episode addressed by its season and episode number,
// https://www.tvmaze.com/api#episode-by-number.
func (a API) EpisodeByNumberRequest(showID, season, number int) request.APIRequest[*Episode] {
	result := &Episode{}
	if err := validShowID(showID); err != nil {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(err))
	}
	if season < 1 {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf(`season must be a positive number, given "%d"`, season)))
	}
	if number < 1 {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf(`episode number must be a positive number, given "%d"`, number)))
	}
	req := a.newRequest().
		WithResult(result).
		WithGet(EpisodeByNumberEndpoint).
		AndPathParam("id", cast.ToString(showID)).
		AndQueryParam("season", cast.ToString(season)).
		AndQueryParam("number", cast.ToString(number))
	return request.NewAPIRequest(result, req)
}

// EpisodesByDateRequest returns all episodes of a show that aired on the given date,
// https://www.tvmaze.com/api#episodes-by-date.
// The date must be formatted as ISO-8601 "2006-01-02" by the caller, it is passed through unvalidated.
func (a API) EpisodesByDateRequest(showID int, date string) request.APIRequest[*[]Episode] {
	result := make([]Episode, 0)
	if err := validShowID(showID); err != nil {
		return request.NewAPIRequest(&result, request.NewReqDefinitionError(err))
	}
	if date == "" {
		return request.NewAPIRequest(&result, request.NewReqDefinitionError(fmt.Errorf("date cannot be empty")))
	}
	req := a.newRequest().
		WithResult(&result).
		WithGet(EpisodesByDateEndpoint).
		AndPathParam("id", cast.ToString(showID)).
		AndQueryParam("date", date)
	return request.NewAPIRequest(&result, req)
}

// SeasonsRequest returns all seasons of a show - https://www.tvmaze.com/api#show-seasons.
func (a API) SeasonsRequest(showID int) request.APIRequest[*[]Season] {
	result := make([]Season, 0)
	if err := validShowID(showID); err != nil {
		return request.NewAPIRequest(&result, request.NewReqDefinitionError(err))
	}
	req := a.newRequest().
		WithResult(&result).
		WithGet(SeasonsEndpoint).
		AndPathParam("id", cast.ToString(showID))
	return request.NewAPIRequest(&result, req)
}

// SeasonEpisodesRequest returns all episodes of a season - https://www.tvmaze.com/api#season-episodes.
// Note: the argument is a season ID, not a show ID, see SeasonsRequest.
func (a API) SeasonEpisodesRequest(seasonID int) request.APIRequest[*[]Episode] {
	result := make([]Episode, 0)
	if seasonID <= 0 {
		return request.NewAPIRequest(&result, request.NewReqDefinitionError(fmt.Errorf(`season id must be a positive number, given "%d"`, seasonID)))
	}
	req := a.newRequest().
		WithResult(&result).
		WithGet(SeasonEpisodesEndpoint).
		AndPathParam("id", cast.ToString(seasonID))
	return request.NewAPIRequest(&result, req)
}

// CastRequest returns the show cast - https://www.tvmaze.com/api#show-cast.
func (a API) CastRequest(showID int) request.APIRequest[*[]CastMember] {
	result := make([]CastMember, 0)
	if err := validShowID(showID); err != nil {
		return request.NewAPIRequest(&result, request.NewReqDefinitionError(err))
	}
	req := a.newRequest().
		WithResult(&result).
		WithGet(CastEndpoint).
		AndPathParam("id", cast.ToString(showID))
	return request.NewAPIRequest(&result, req)
}

// CrewRequest returns the show crew - https://www.tvmaze.com/api#show-crew.
func (a API) CrewRequest(showID int) request.APIRequest[*[]CrewMember] {
	result := make([]CrewMember, 0)
	if err := validShowID(showID); err != nil {
		return request.NewAPIRequest(&result, request.NewReqDefinitionError(err))
	}
	req := a.newRequest().
		WithResult(&result).
		WithGet(CrewEndpoint).
		AndPathParam("id", cast.ToString(showID))
	return request.NewAPIRequest(&result, req)
}

// AliasesRequest returns alternative names of a show - https://www.tvmaze.com/api#show-aka.
func (a API) AliasesRequest(showID int) request.APIRequest[*[]Alias] {
	result := make([]Alias, 0)
	if err := validShowID(showID); err != nil {
		return request.NewAPIRequest(&result, request.NewReqDefinitionError(err))
	}
	req := a.newRequest().
		WithResult(&result).
		WithGet(AliasesEndpoint).
		AndPathParam("id", cast.ToString(showID))
	return request.NewAPIRequest(&result, req)
}

func validShowID(showID int) error {
	if showID <= 0 {
		return fmt.Errorf(`show id must be a positive number, given "%d"`, showID)
	}
	return nil
}
