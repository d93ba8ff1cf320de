package main

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available spaces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		out := termenv.NewOutput(cmd.OutOrStdout())
		for i, sp := range e.reg.Spaces() {
			d := sp.Descriptor()
			id := out.String(d.ID).Bold()
			if i == 0 {
				id = id.Foreground(out.Color("#a78bfa"))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", id, out.String(d.Title).Italic())
			if d.Summary != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", out.String(d.Summary).Faint())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
