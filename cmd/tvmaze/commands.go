package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tvmeta/go-tvmaze/pkg/tvmaze"
)

var (
	embedFlag   []string
	specials    bool
	countryCode string
	date        string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search shows by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug().Str("query", args[0]).Msg("searching shows")
		result, err := api().SearchShowsRequest(args[0]).Send(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the main information of a show",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf(`show id must be a number, given "%s"`, args[0])
		}
		logger.Debug().Int("id", id).Strs("embed", embedFlag).Msg("fetching show")
		result, err := api().ShowRequest(id, embeds()...).Send(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var episodesCmd = &cobra.Command{
	Use:   "episodes <show-id>",
	Short: "List all episodes of a show",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf(`show id must be a number, given "%s"`, args[0])
		}
		logger.Debug().Int("id", id).Bool("specials", specials).Msg("fetching episodes")
		result, err := api().EpisodesRequest(id, specials).Send(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "List episodes airing in a country on a date",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug().Str("country", countryCode).Str("date", date).Msg("fetching schedule")
		result, err := api().ScheduleRequest(countryCode, date).Send(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <imdb|thetvdb|tvrage> <id>",
	Short: "Resolve a show by an external ID",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := tvmaze.LookupKind(args[0])
		logger.Debug().Str("kind", args[0]).Str("id", args[1]).Msg("looking up show")
		result, err := api().LookupShowRequest(kind, args[1]).Send(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	showCmd.Flags().StringSliceVar(&embedFlag, "embed", nil, "sub-resources to embed, e.g. episodes,cast")
	episodesCmd.Flags().BoolVar(&specials, "specials", false, "include specials in the episode list")
	scheduleCmd.Flags().StringVar(&countryCode, "country", "", "ISO 3166-1 country code, e.g. US")
	scheduleCmd.Flags().StringVar(&date, "date", "", "ISO 8601 date, e.g. 2014-12-01")
}

func embeds() []tvmaze.Embed {
	out := make([]tvmaze.Embed, 0, len(embedFlag))
	for _, v := range embedFlag {
		out = append(out, tvmaze.Embed(strings.TrimSpace(v)))
	}
	return out
}
