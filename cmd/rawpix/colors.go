package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rawpix/rawpix"
)

var colorsCmd = &cobra.Command{
	Use:   "colors [file]",
	Short: "Print the dominant colors of an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runColors,
}

var (
	colorsCount int
	colorsGM    bool
)

func init() {
	colorsCmd.Flags().IntVar(&colorsCount, "count", 5, "number of colors to report")
	colorsCmd.Flags().BoolVar(&colorsGM, "gm", false, "use GraphicsMagick instead of ImageMagick")
	rootCmd.AddCommand(colorsCmd)
}

func runColors(cmd *cobra.Command, args []string) error {
	path := args[0]
	buf, err := profile(colorsGM).Read(cmd.Context(), path, rawpix.U8, rawpix.RGB)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	colors, err := rawpix.DominantColors(buf, colorsCount)
	if err != nil {
		return err
	}
	for _, c := range colors {
		fmt.Printf("%s  %5.1f%%  hsl(%.0f, %.0f%%, %.0f%%)\n",
			c.Hex, c.Percentage, c.HSL.H, c.HSL.S*100, c.HSL.L*100)
	}
	return nil
}
