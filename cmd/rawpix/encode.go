package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [input] [format]",
	Short: "Encode an image into a named format and print the bytes",
	Args:  cobra.ExactArgs(2),
	RunE:  runEncode,
}

var (
	encodeType   string
	encodeColor  string
	encodeOutput string
	encodeGM     bool
)

func init() {
	encodeCmd.Flags().StringVar(&encodeType, "type", "u8", "pixel type for the transfer (u8, u16, u32, f32, f64)")
	encodeCmd.Flags().StringVar(&encodeColor, "color", "rgb", "colorspace for the transfer")
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "write encoded bytes to a file instead of stdout")
	encodeCmd.Flags().BoolVar(&encodeGM, "gm", false, "use GraphicsMagick instead of ImageMagick")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	in, format := args[0], args[1]
	typ, cs, err := bufferOptions(encodeType, encodeColor)
	if err != nil {
		return err
	}

	m := profile(encodeGM)
	buf, err := m.Read(cmd.Context(), in, typ, cs)
	if err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}

	data, err := m.Encode(cmd.Context(), format, buf)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", in, err)
	}

	if encodeOutput != "" {
		return os.WriteFile(encodeOutput, data, 0o644)
	}
	_, err = os.Stdout.Write(data)
	return err
}
