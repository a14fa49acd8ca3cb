package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rawpix/rawpix/video"
)

var framesCmd = &cobra.Command{
	Use:   "frames [video] [output-prefix]",
	Short: "Extract still frames from a video via ffmpeg",
	Args:  cobra.ExactArgs(2),
	RunE:  runFrames,
}

var (
	framesFPS      int
	framesMaxWidth int
	framesGM       bool
)

func init() {
	framesCmd.Flags().IntVar(&framesFPS, "fps", 1, "frames to sample per second of video")
	framesCmd.Flags().IntVar(&framesMaxWidth, "max-width", 0, "scale frames down to this width (0 keeps source width)")
	framesCmd.Flags().BoolVar(&framesGM, "gm", false, "use GraphicsMagick instead of ImageMagick")
	rootCmd.AddCommand(framesCmd)
}

func runFrames(cmd *cobra.Command, args []string) error {
	path, prefix := args[0], args[1]

	frames, err := video.ExtractFrames(cmd.Context(), path, framesFPS, framesMaxWidth)
	if err != nil {
		return err
	}
	log.Printf("extracted %d frames from %s", len(frames), path)

	m := profile(framesGM)
	for i, frame := range frames {
		out := fmt.Sprintf("%s-%04d.png", prefix, i)
		if err := m.Write(cmd.Context(), out, frame); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
	}
	return nil
}
