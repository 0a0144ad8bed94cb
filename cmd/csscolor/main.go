// Command csscolor converts, blends, and previews CSS colors in the
// terminal.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gocolor/csscolor"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "csscolor",
	Short: "Convert, blend, and preview CSS colors",
	Long: `csscolor parses any CSS color syntax (hex, rgb(), hsl(), hwb(),
named colors) and prints conversions to other color spaces, blends
colors in a chosen space, and renders palette files as terminal
swatches.`,
	Version: csscolor.Version,
	// SilenceUsage prevents printing the usage block for errors we
	// report ourselves (bad color syntax, unreadable palette files).
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			csscolor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newMixCmd())
	rootCmd.AddCommand(newPaletteCmd())

	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero.
		os.Exit(1)
	}
}
