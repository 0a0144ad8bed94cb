package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gocolor/csscolor"
)

func newMixCmd() *cobra.Command {
	var (
		t     float64
		space string
		steps int
	)

	cmd := &cobra.Command{
		Use:   "mix <color> <color>",
		Short: "Blend two colors in a chosen color space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := csscolor.Parse(args[0])
			if err != nil {
				return err
			}
			b, err := csscolor.Parse(args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if steps > 1 {
				for i := 0; i < steps; i++ {
					pos := float64(i) / float64(steps-1)
					c, err := blend(a, b, space, pos)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s %-10s t=%.3f\n", swatch(c), c.HexString(), pos)
				}
				return nil
			}

			c, err := blend(a, b, space, t)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s  %s\n", swatch(c), c.HexString(), c.RGBString())
			return nil
		},
	}

	cmd.Flags().Float64VarP(&t, "position", "t", 0.5, "blend position, 0 is the first color, 1 the second")
	cmd.Flags().StringVar(&space, "space", "oklab", "blend space: rgb, linear-rgb, hsv, or oklab")
	cmd.Flags().IntVar(&steps, "steps", 0, "print a ramp of N evenly spaced blends instead of a single color")

	return cmd
}

func blend(a, b csscolor.Color, space string, t float64) (csscolor.Color, error) {
	switch space {
	case "rgb":
		return a.InterpolateRGB(b, t), nil
	case "linear-rgb":
		return a.InterpolateLinearRGB(b, t), nil
	case "hsv":
		return a.InterpolateHSV(b, t), nil
	case "oklab":
		return a.InterpolateOklab(b, t), nil
	}
	return csscolor.Color{}, fmt.Errorf("unknown blend space %q (want rgb, linear-rgb, hsv, or oklab)", space)
}
