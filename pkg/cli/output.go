package cli

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"
)

// Format is an output image format.
type Format string

const (
	FormatAuto Format = "auto"
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatSVG  Format = "svg"
)

var ErrUnknownFormat = errors.New("unknown output format")

// ResolveFormat returns f, or the format implied by the extension of path when
// f is FormatAuto. Unknown extensions default to PNG.
func ResolveFormat(f Format, path string) (Format, error) {
	switch Format(strings.ToLower(string(f))) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatJPEG, "jpg":
		return FormatJPEG, nil
	case FormatSVG:
		return FormatSVG, nil
	case FormatAuto, "":
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".svg":
		return FormatSVG, nil
	default:
		return FormatPNG, nil
	}
}

// OutputPath numbers path for the i'th of n images. A single image keeps path
// unchanged; otherwise out.png becomes out-1.png, out-2.png and so on.
func OutputPath(path string, i, n int) string {
	if n <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), i+1, ext)
}

// ParseColor parses a hex color such as "#000", "#1e1e2e" or "#ffffff80".
// "none" and "" are transparent.
func ParseColor(s string) (color.Color, error) {
	switch strings.ToLower(s) {
	case "", "none", "transparent":
		return color.Transparent, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 || len(hex) == 4 {
		// Expand shorthand: "f08" is "ff0088".
		long := make([]byte, 0, 2*len(hex))
		for i := 0; i < len(hex); i++ {
			long = append(long, hex[i], hex[i])
		}
		hex = string(long)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
