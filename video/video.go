// Package video extracts still frames from video files as rawpix
// buffers, delegating demuxing and decoding to an external ffmpeg
// process.
package video

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder for the ffmpeg image2pipe output
	"io"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/rawpix/rawpix"
)

// ErrNoFrames indicates ffmpeg ran successfully but produced no frames.
var ErrNoFrames = errors.New("video: no frames extracted")

// ExtractFrames samples frames from the video at path as U8 RGB buffers.
//
// fps is the sampling rate in frames per second (values below 1 are
// treated as 1). Frames wider than maxWidth are scaled down to it,
// preserving aspect ratio; maxWidth <= 0 keeps the source width. ffmpeg
// emits the samples as a PNG stream which is decoded frame by frame.
func ExtractFrames(ctx context.Context, path string, fps, maxWidth int) ([]*rawpix.Buffer, error) {
	if fps <= 0 {
		fps = 1
	}

	args := ffmpeg.KwArgs{
		"format": "image2pipe",
		"vcodec": "png",
		"r":      strconv.Itoa(fps),
	}
	if maxWidth > 0 {
		args["vf"] = fmt.Sprintf("scale='min(%d,iw)':-1", maxWidth)
	}

	var out, errOut bytes.Buffer
	cmd := ffmpeg.Input(path).
		Output("pipe:1", args).
		WithOutput(&out).
		WithErrorOutput(&errOut)
	cmd.Context = ctx

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("video: ffmpeg: %v: %s", err, errOut.String())
	}

	var frames []*rawpix.Buffer
	reader := bufio.NewReader(&out)
	for {
		// image.Decode reports a clean end of stream as a format error,
		// so probe for EOF first.
		if _, err := reader.Peek(1); errors.Is(err, io.EOF) {
			break
		}
		img, _, err := image.Decode(reader)
		if err != nil {
			return nil, fmt.Errorf("video: decode frame %d: %w", len(frames), err)
		}
		buf, err := rawpix.FromImage(img, rawpix.RGB)
		if err != nil {
			return nil, fmt.Errorf("video: frame %d: %w", len(frames), err)
		}
		frames = append(frames, buf)
	}

	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	return frames, nil
}
