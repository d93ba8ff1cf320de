package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/geonym/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the playground in a desktop window",
	Long: `Opens a window on the first space. Click or press → for the next space,
← for the previous one, R to regenerate and 1-9 to jump to a space.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		return viewer.Run(e.pg)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
