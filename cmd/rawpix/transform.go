package main

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/rawpix/rawpix"
)

var transformCmd = &cobra.Command{
	Use:   "transform [input] [output]",
	Short: "Apply pixel filters to an image",
	Args:  cobra.ExactArgs(2),
	RunE:  runTransform,
}

var (
	transformBlur    float64
	transformSharpen bool
	transformResize  string
	transformGM      bool
)

func init() {
	transformCmd.Flags().Float64Var(&transformBlur, "blur", 0, "gaussian blur radius")
	transformCmd.Flags().BoolVar(&transformSharpen, "sharpen", false, "sharpen the image")
	transformCmd.Flags().StringVar(&transformResize, "resize", "", "resize to WxH")
	transformCmd.Flags().BoolVar(&transformGM, "gm", false, "use GraphicsMagick instead of ImageMagick")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]

	m := profile(transformGM)
	buf, err := m.Read(cmd.Context(), in, rawpix.U8, rawpix.RGB)
	if err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}

	img, err := buf.Image()
	if err != nil {
		return err
	}

	var result image.Image = img
	if transformBlur > 0 {
		result = blur.Gaussian(result, transformBlur)
	}
	if transformSharpen {
		result = effect.Sharpen(result)
	}
	if transformResize != "" {
		w, h, err := parseSize(transformResize)
		if err != nil {
			return err
		}
		result = imaging.Resize(result, w, h, imaging.Lanczos)
	}

	buf, err = rawpix.FromImage(result, rawpix.RGB)
	if err != nil {
		return err
	}
	if err := m.Write(cmd.Context(), out, buf); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}
