package tvmaze

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/tvmeta/go-tvmaze/pkg/request"
)

// LookupKind is an external identifier namespace usable to resolve a show by a foreign key.
type LookupKind string

const (
	LookupIMDB    = LookupKind("imdb")
	LookupTheTVDB = LookupKind("thetvdb")
	LookupTVRage  = LookupKind("tvrage")
)

func (v LookupKind) String() string {
	return string(v)
}

// LookupShowRequest resolves a show by an external ID - https://www.tvmaze.com/api#show-lookup.
// The external ID is sent as a query parameter named after the lookup kind,
// for example "lookup/shows?imdb=tt3530232".
func (a API) LookupShowRequest(kind LookupKind, id string) request.APIRequest[*Show] {
	result := &Show{}
	switch kind {
	case LookupIMDB, LookupTheTVDB, LookupTVRage:
		// ok
	default:
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf(`unexpected lookup kind "%s"`, kind)))
	}
	if id == "" {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("lookup id cannot be empty")))
	}
	req := a.newRequest().
		WithResult(result).
		WithGet(LookupShowEndpoint).
		AndQueryParam(kind.String(), id)
	return request.NewAPIRequest(result, req)
}

// LookupShowByIMDBRequest resolves a show by an IMDB ID, for example "tt3530232".
func (a API) LookupShowByIMDBRequest(imdbID string) request.APIRequest[*Show] {
	return a.LookupShowRequest(LookupIMDB, imdbID)
}

// LookupShowByTheTVDBRequest resolves a show by a TheTVDB ID.
func (a API) LookupShowByTheTVDBRequest(thetvdbID int) request.APIRequest[*Show] {
	if thetvdbID <= 0 {
		result := &Show{}
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf(`thetvdb id must be a positive number, given "%d"`, thetvdbID)))
	}
	return a.LookupShowRequest(LookupTheTVDB, cast.ToString(thetvdbID))
}

// LookupShowByTVRageRequest resolves a show by a TVRage ID.
func (a API) LookupShowByTVRageRequest(tvrageID int) request.APIRequest[*Show] {
	if tvrageID <= 0 {
		result := &Show{}
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf(`tvrage id must be a positive number, given "%d"`, tvrageID)))
	}
	return a.LookupShowRequest(LookupTVRage, cast.ToString(tvrageID))
}
