package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/geonym"
)

var renderCmd = &cobra.Command{
	Use:   "render [space]",
	Short: "Render a space to a PNG or SVG file",
	Long: `Generates a fresh structure for the space and renders it. The output
format follows the file extension; "-" writes PNG to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		scene, err := e.show(args)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = scene.Space.Descriptor().ID + ".png"
		}
		if output == "-" {
			return e.pg.PNG(cmd.OutOrStdout(), scene)
		}
		if err := writeFile(output, func(w io.Writer) error {
			if strings.EqualFold(filepath.Ext(output), ".svg") {
				return e.pg.SVG(w, scene)
			}
			return e.pg.PNG(w, scene)
		}); err != nil {
			return err
		}

		geonym.Logger().Info("rendered",
			"space", scene.Space.Descriptor().ID,
			"seed", scene.Seed,
			"output", output,
		)
		return nil
	},
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringP("output", "o", "", "Output file (.png or .svg, - for stdout)")
}
