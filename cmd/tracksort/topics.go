package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tracksort/tracksort/pkg/topics"
)

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics [NAME]",
		Short: "Show extended help topics",
		Long:  `Without arguments, lists the available help topics. With a name, renders that topic.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Println("Available topics: " + strings.Join(topics.List(), ", "))
				cmd.Println("\nUse \"tracksort topics NAME\" to read one.")
				return nil
			}

			topic, err := topics.Get(args[0])
			if err != nil {
				return err
			}
			cmd.Print(topics.Render(topic))
			return nil
		},
	}
}
