package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rawpix",
	Short: "Move raw pixel buffers through ImageMagick, webcams, and ffmpeg",
}

func main() {
	// Command output goes to stdout; keep logging on stderr
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
