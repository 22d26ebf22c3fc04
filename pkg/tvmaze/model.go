package tvmaze

import (
	"github.com/relvacode/iso8601"
)

// Embed is a name of a related sub-resource that the API can include
// inline in the response, under the "_embedded" key.
type Embed string

const (
	EmbedEpisodes        = Embed("episodes")
	EmbedCast            = Embed("cast")
	EmbedCrew            = Embed("crew")
	EmbedSeasons         = Embed("seasons")
	EmbedAkas            = Embed("akas")
	EmbedNextEpisode     = Embed("nextepisode")
	EmbedPreviousEpisode = Embed("previousepisode")
	EmbedShow            = Embed("show")
	EmbedCharacter       = Embed("character")
	EmbedCastCredits     = Embed("castcredits")
	EmbedCrewCredits     = Embed("crewcredits")
)

func (v Embed) String() string {
	return string(v)
}

// Show - https://www.tvmaze.com/api#shows
type Show struct {
	ID             int           `json:"id"`
	URL            string        `json:"url"`
	Name           string        `json:"name"`
	Type           string        `json:"type"`
	Language       string        `json:"language"`
	Genres         []string      `json:"genres"`
	Status         string        `json:"status"`
	Runtime        int           `json:"runtime"`
	AverageRuntime int           `json:"averageRuntime"`
	Premiered      string        `json:"premiered"`
	Ended          string        `json:"ended"`
	OfficialSite   string        `json:"officialSite"`
	Schedule       ShowSchedule  `json:"schedule"`
	Rating         Rating        `json:"rating"`
	Weight         int           `json:"weight"`
	Network        *Network      `json:"network"`
	WebChannel     *WebChannel   `json:"webChannel"`
	DVDCountry     *Country      `json:"dvdCountry"`
	Externals      Externals     `json:"externals"`
	Image          *Image        `json:"image"`
	Summary        string        `json:"summary"`
	Updated        int64         `json:"updated"`
	Embedded       *ShowEmbedded `json:"_embedded,omitempty"`
}

// ShowSchedule is the day/time the show airs.
type ShowSchedule struct {
	Time string   `json:"time"`
	Days []string `json:"days"`
}

// Rating is the weighted average of user votes.
type Rating struct {
	Average float64 `json:"average"`
}

// Network is a TV network the show airs on.
type Network struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Country      Country `json:"country"`
	OfficialSite string  `json:"officialSite"`
}

// WebChannel is a streaming service the show airs on.
type WebChannel struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Country      *Country `json:"country"`
	OfficialSite string   `json:"officialSite"`
}

// Country of a network, web channel or person.
type Country struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Timezone string `json:"timezone"`
}

// Externals are foreign keys of the show in external databases, see LookupShowRequest.
type Externals struct {
	TVRage  int    `json:"tvrage"`
	TheTVDB int    `json:"thetvdb"`
	IMDB    string `json:"imdb"`
}

// Image URLs in two resolutions.
type Image struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// Episode - https://www.tvmaze.com/api#episodes
// The Show field is set only in schedule responses.
type Episode struct {
	ID       int           `json:"id"`
	URL      string        `json:"url"`
	Name     string        `json:"name"`
	Season   int           `json:"season"`
	Number   int           `json:"number"`
	Type     string        `json:"type"`
	Airdate  string        `json:"airdate"`
	Airtime  string        `json:"airtime"`
	Airstamp *iso8601.Time `json:"airstamp"`
	Runtime  int           `json:"runtime"`
	Rating   Rating        `json:"rating"`
	Image    *Image        `json:"image"`
	Summary  string        `json:"summary"`
	Show     *Show         `json:"show,omitempty"`
}

// Season - https://www.tvmaze.com/api#show-seasons
type Season struct {
	ID           int         `json:"id"`
	URL          string      `json:"url"`
	Number       int         `json:"number"`
	Name         string      `json:"name"`
	EpisodeOrder int         `json:"episodeOrder"`
	PremiereDate string      `json:"premiereDate"`
	EndDate      string      `json:"endDate"`
	Network      *Network    `json:"network"`
	WebChannel   *WebChannel `json:"webChannel"`
	Image        *Image      `json:"image"`
	Summary      string      `json:"summary"`
}

// Person - https://www.tvmaze.com/api#people
type Person struct {
	ID       int             `json:"id"`
	URL      string          `json:"url"`
	Name     string          `json:"name"`
	Country  *Country        `json:"country"`
	Birthday string          `json:"birthday"`
	Deathday string          `json:"deathday"`
	Gender   string          `json:"gender"`
	Image    *Image          `json:"image"`
	Updated  int64           `json:"updated"`
	Embedded *PersonEmbedded `json:"_embedded,omitempty"`
}

// Character played by a person in a show.
type Character struct {
	ID    int    `json:"id"`
	URL   string `json:"url"`
	Name  string `json:"name"`
	Image *Image `json:"image"`
}

// CastMember - https://www.tvmaze.com/api#show-cast
type CastMember struct {
	Person    Person    `json:"person"`
	Character Character `json:"character"`
	Self      bool      `json:"self"`
	Voice     bool      `json:"voice"`
}

// CrewMember - https://www.tvmaze.com/api#show-crew
type CrewMember struct {
	Type   string `json:"type"`
	Person Person `json:"person"`
}

// Alias is an alternative name of the show, usually for a foreign country.
type Alias struct {
	Name    string   `json:"name"`
	Country *Country `json:"country"`
}

// ShowSearchResult - https://www.tvmaze.com/api#show-search
type ShowSearchResult struct {
	Score float64 `json:"score"`
	Show  Show    `json:"show"`
}

// PersonSearchResult - https://www.tvmaze.com/api#people-search
type PersonSearchResult struct {
	Score  float64 `json:"score"`
	Person Person  `json:"person"`
}

// CastCredit - https://www.tvmaze.com/api#person-castcredits
type CastCredit struct {
	Self     bool            `json:"self"`
	Voice    bool            `json:"voice"`
	Embedded *CreditEmbedded `json:"_embedded,omitempty"`
}

// CrewCredit - https://www.tvmaze.com/api#person-crewcredits
type CrewCredit struct {
	Type     string          `json:"type"`
	Embedded *CreditEmbedded `json:"_embedded,omitempty"`
}

// CreditEmbedded are sub-resources of a credit, present when requested by an Embed option.
type CreditEmbedded struct {
	Show      *Show      `json:"show,omitempty"`
	Character *Character `json:"character,omitempty"`
}

// ShowEmbedded are sub-resources of a show, present when requested by an Embed option.
type ShowEmbedded struct {
	Episodes        []Episode    `json:"episodes,omitempty"`
	Cast            []CastMember `json:"cast,omitempty"`
	Crew            []CrewMember `json:"crew,omitempty"`
	Seasons         []Season     `json:"seasons,omitempty"`
	Akas            []Alias      `json:"akas,omitempty"`
	NextEpisode     *Episode     `json:"nextepisode,omitempty"`
	PreviousEpisode *Episode     `json:"previousepisode,omitempty"`
}

// PersonEmbedded are sub-resources of a person, present when requested by an Embed option.
type PersonEmbedded struct {
	CastCredits []CastCredit `json:"castcredits,omitempty"`
	CrewCredits []CrewCredit `json:"crewcredits,omitempty"`
}

// Updates is a mapping from show ID to the epoch seconds of its last modification.
type Updates map[string]int64
