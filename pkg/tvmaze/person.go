package tvmaze

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/tvmeta/go-tvmaze/pkg/request"
)

// PersonRequest returns the main information of a person - https://www.tvmaze.com/api#person-main-information.
func (a API) PersonRequest(personID int, embed ...Embed) request.APIRequest[*Person] {
	result := &Person{}
	if err := validPersonID(personID); err != nil {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(err))
	}
	req := a.newRequest().
		WithResult(result).
		WithGet(PersonEndpoint).
		AndPathParam("id", cast.ToString(personID))
	if len(embed) > 0 {
		req = req.AndQueryParamValues("embed[]", embedQueryValues(embed)...)
	}
	return request.NewAPIRequest(result, req)
}

// PersonCastCreditsRequest returns all cast credits of a person - https://www.tvmaze.com/api#person-castcredits.
// Shows and characters are referenced by links only, use EmbedShow or EmbedCharacter
// to receive them inline in the Embedded field.
func (a API) PersonCastCreditsRequest(personID int, embed ...Embed) request.APIRequest[*[]CastCredit] {
	result := make([]CastCredit, 0)
	if err := validPersonID(personID); err != nil {
		return request.NewAPIRequest(&result, request.NewReqDefinitionError(err))
	}
	req := a.newRequest().
		WithResult(&result).
		WithGet(PersonCastCreditsEndpoint).
		AndPathParam("id", cast.ToString(personID))
	if len(embed) > 0 {
		req = req.AndQueryParamValues("embed[]", embedQueryValues(embed)...)
	}
	return request.NewAPIRequest(&result, req)
}

// PersonCrewCreditsRequest returns all crew credits of a person - https://www.tvmaze.com/api#person-crewcredits.
func (a API) PersonCrewCreditsRequest(personID int, embed ...Embed) request.APIRequest[*[]CrewCredit] {
	result := make([]CrewCredit, 0)
	if err := validPersonID(personID); err != nil {
		return request.NewAPIRequest(&result, request.NewReqDefinitionError(err))
	}
	req := a.newRequest().
		WithResult(&result).
		WithGet(PersonCrewCreditsEndpoint).
		AndPathParam("id", cast.ToString(personID))
	if len(embed) > 0 {
		req = req.AndQueryParamValues("embed[]", embedQueryValues(embed)...)
	}
	return request.NewAPIRequest(&result, req)
}

func validPersonID(personID int) error {
	if personID <= 0 {
		return fmt.Errorf(`person id must be a positive number, given "%d"`, personID)
	}
	return nil
}
