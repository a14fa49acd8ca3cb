//go:build linux

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rawpix/rawpix/capture"
)

var captureCmd = &cobra.Command{
	Use:   "capture [device] [output-prefix]",
	Short: "Grab frames from a V4L2 webcam",
	Args:  cobra.ExactArgs(2),
	RunE:  runCapture,
}

var (
	captureFrames int
	captureWidth  int
	captureHeight int
	captureGM     bool
)

func init() {
	captureCmd.Flags().IntVar(&captureFrames, "frames", 1, "number of frames to capture")
	captureCmd.Flags().IntVar(&captureWidth, "width", 640, "requested frame width")
	captureCmd.Flags().IntVar(&captureHeight, "height", 480, "requested frame height")
	captureCmd.Flags().BoolVar(&captureGM, "gm", false, "use GraphicsMagick instead of ImageMagick")
	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	device, prefix := args[0], args[1]

	dev, err := capture.Open(device, captureWidth, captureHeight)
	if err != nil {
		return err
	}
	defer dev.Close()

	if err := dev.Start(); err != nil {
		return err
	}
	w, h, _ := dev.Shape()
	log.Printf("capturing %d frames at %dx%d from %s", captureFrames, w, h, device)

	m := profile(captureGM)
	for i := 0; i < captureFrames; i++ {
		frame, err := dev.Capture()
		if err != nil {
			return err
		}
		out := fmt.Sprintf("%s-%04d.png", prefix, i)
		if err := m.Write(cmd.Context(), out, frame); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
	}
	return nil
}
