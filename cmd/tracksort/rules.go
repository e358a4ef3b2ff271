package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tracksort/tracksort/pkg/config"
	"github.com/tracksort/tracksort/pkg/rules"
	"github.com/tracksort/tracksort/pkg/style"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the effective rule table in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			table, err := rules.Load(cfg.Rules)
			if err != nil {
				return err
			}

			renderer := style.NewRenderer(style.DetectFormat(os.Stdout))
			cmd.Print(renderer.RenderRules(table))
			return nil
		},
	}
}
