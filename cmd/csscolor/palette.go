package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gocolor/csscolor"
)

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette <file.yaml>",
		Short: "Render a YAML palette of named colors",
		Long: `Load a YAML mapping of names to CSS color strings and render each
entry as a swatch. Example palette file:

    primary: "#3498db"
    accent: hsl(28, 80%, 52%)
    muted: rgba(120, 120, 128, 0.4)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var entries map[string]csscolor.Color
			if err := yaml.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("load palette %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			names := make([]string, 0, len(entries))
			for name := range entries {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				c := entries[name]
				fmt.Fprintf(out, "%s %-20s %-10s %s\n", swatch(c), name, c.HexString(), c.RGBString())
			}
			return nil
		},
	}
}
