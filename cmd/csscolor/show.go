package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gocolor/csscolor"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <color>...",
		Short: "Print every representation of one or more colors",
		Long: `Parse each argument as a CSS color and print its hex, rgb(),
hsl(), hsv(), hwb(), linear RGB, and Oklab forms next to a terminal
swatch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, arg := range args {
				c, err := csscolor.Parse(arg)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				printColor(out, arg, c)
			}
			return nil
		},
	}
}

func printColor(out io.Writer, input string, c csscolor.Color) {
	h, s, l, _ := c.HSLA()
	hv, sv, v, _ := c.HSVA()
	hw, w, bk, _ := c.HWBA()
	lr, lg, lb, _ := c.LinearRGBA()
	ol, oa, ob, _ := c.Oklaba()

	fmt.Fprintf(out, "%s %s\n", swatch(c), input)
	fmt.Fprintf(out, "  hex         %s\n", c.HexString())
	fmt.Fprintf(out, "  rgb         %s\n", c.RGBString())
	fmt.Fprintf(out, "  hsl         hsl(%.4g,%.4g%%,%.4g%%)\n", h, s*100, l*100)
	fmt.Fprintf(out, "  hsv         hsv(%.4g,%.4g%%,%.4g%%)\n", hv, sv*100, v*100)
	fmt.Fprintf(out, "  hwb         hwb(%.4g,%.4g%%,%.4g%%)\n", hw, w*100, bk*100)
	fmt.Fprintf(out, "  linear-rgb  %.6g %.6g %.6g\n", lr, lg, lb)
	fmt.Fprintf(out, "  oklab       %.6g %.6g %.6g\n", ol, oa, ob)
	if c.A != 1 {
		fmt.Fprintf(out, "  alpha       %v\n", c.A)
	}
}

// swatch renders a block of the color's opaque hex value as the
// terminal background. Alpha is left out: terminal cells have no
// transparency.
func swatch(c csscolor.Color) string {
	r, g, b, _ := c.RGBA255()
	hex := fmt.Sprintf("#%02x%02x%02x", r, g, b)
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
}
