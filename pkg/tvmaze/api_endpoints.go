package tvmaze

// api_endpoints.go contains definitions of all TVMaze API endpoints used in this package.
// Centralizing endpoints allows easier maintenance and updates if API addresses change.

const (
	// Search endpoints.
	SearchShowsEndpoint      = "search/shows"
	SingleSearchShowEndpoint = "singlesearch/shows"
	SearchPeopleEndpoint     = "search/people"
	LookupShowEndpoint       = "lookup/shows"

	// Schedule endpoints.
	ScheduleEndpoint     = "schedule"
	FullScheduleEndpoint = "schedule/full"

	// Show endpoints.
	ShowsEndpoint           = "shows"
	ShowEndpoint            = "shows/{id}"
	EpisodesEndpoint        = "shows/{id}/episodes"
	EpisodeByNumberEndpoint = "shows/{id}/episodebynumber"
	EpisodesByDateEndpoint  = "shows/{id}/episodesbydate"
	SeasonsEndpoint         = "shows/{id}/seasons"
	SeasonEpisodesEndpoint  = "seasons/{id}/episodes"
	CastEndpoint            = "shows/{id}/cast"
	CrewEndpoint            = "shows/{id}/crew"
	AliasesEndpoint         = "shows/{id}/akas"
	ShowUpdatesEndpoint     = "updates/shows"

	// People endpoints.
	PersonEndpoint            = "people/{id}"
	PersonCastCreditsEndpoint = "people/{id}/castcredits"
	PersonCrewCreditsEndpoint = "people/{id}/crewcredits"
)
