package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tracksort/tracksort/internal/version"
	"github.com/tracksort/tracksort/pkg/logging"
)

var (
	verbosity  int
	configPath string

	rootCmd = &cobra.Command{
		Use:   "tracksort",
		Short: "Sort audio files into genre folders by filename",
		Long: `tracksort organizes audio files into a genre folder hierarchy by
matching filename keywords against a prioritized rule table. Files are
copied, never moved, and existing files are never overwritten: name
collisions get a " v2", " v3", ... suffix instead.

Favorite-marked files (names starting with "+++") additionally land in a
_FAVORITES subfolder of their category.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command, called by main.main()
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default is $XDG_CONFIG_HOME/tracksort/tracksort.toml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newSortCmd())
	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(newTopicsCmd())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tracksort version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
