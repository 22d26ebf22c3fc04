package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tvmeta/go-tvmaze/pkg/client"
	"github.com/tvmeta/go-tvmaze/pkg/tvmaze"
)

var (
	https   bool
	verbose bool
	logger  zerolog.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:           "tvmaze",
	Short:         "Query the TVMaze API from the command line",
	Version:       client.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&https, "https", false, "use the https scheme instead of http")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(episodesCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(lookupCmd)
}

// api builds the API facade according to the global flags.
func api() tvmaze.API {
	c := client.New()
	if verbose {
		c = c.WithTrace(client.LogTracer(os.Stderr))
	}
	opts := []tvmaze.Option{tvmaze.WithClient(&c)}
	if https {
		opts = append(opts, tvmaze.WithHTTPS())
	}
	return tvmaze.New(opts...)
}

// printJSON writes the result to stdout as indented JSON.
func printJSON(v any) error {
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
