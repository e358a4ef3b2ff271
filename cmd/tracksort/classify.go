package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tracksort/tracksort/pkg/classify"
	"github.com/tracksort/tracksort/pkg/config"
	"github.com/tracksort/tracksort/pkg/rules"
	"github.com/tracksort/tracksort/pkg/style"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILENAME...",
		Short: "Show which category each filename would be sorted into",
		Long: `Classify runs the rule table against the given filenames and prints
the destination category for each, without touching the filesystem.`,
		Example: `  tracksort classify "My Techno Mix.wav" "+++Awesome Track.wav"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			table, err := rules.Load(cfg.Rules)
			if err != nil {
				return err
			}

			classifier := classify.New(table, cfg.Settings.FallbackFolder)
			renderer := style.NewRenderer(style.DetectFormat(os.Stdout))

			for _, name := range args {
				res := classifier.Classify(name)
				cmd.Print(renderer.RenderClassification(name, res.Folder, res.Rule, res.Matched))
			}
			return nil
		},
	}
}
