package main

import (
	"github.com/spf13/cobra"

	"github.com/tracksort/tracksort/pkg/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration after all layers are merged",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			out, err := config.ExportTOML(cfg)
			if err != nil {
				return err
			}
			cmd.Print(out)
			return nil
		},
	}
}

func newGenconfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: "Print the default configuration as a starting point for customization",
		Example: `  tracksort genconfig > ~/.config/tracksort/tracksort.toml`,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(config.DefaultConfigTOML())
		},
	}
}
