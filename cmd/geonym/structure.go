package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var structureCmd = &cobra.Command{
	Use:   "structure [space]",
	Short: "Print the structure generated for a space",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		scene, err := e.show(args)
		if err != nil {
			return err
		}
		data, err := scene.Tree.MarshalIndent()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		if stats, _ := cmd.Flags().GetBool("stats"); stats {
			s := scene.Tree.Stats()
			fmt.Fprintf(cmd.ErrOrStderr(), "seed=%d nodes=%d leaves=%d depth=%d\n",
				scene.Seed, s.Nodes, s.Leaves, s.Depth)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(structureCmd)
	structureCmd.Flags().Bool("stats", false, "Print tree statistics to stderr")
}
