// Package export writes rendered frames to image files.
package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// SavePNG writes img as a PNG file, creating the parent directory.
func SavePNG(img image.Image, path string) error {
	return save(img, path, png.Encode)
}

// Save picks the encoder from the file extension (.png or .bmp).
func Save(img image.Image, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return save(img, path, png.Encode)
	case ".bmp":
		return save(img, path, bmp.Encode)
	default:
		return fmt.Errorf("export: unsupported format %q", filepath.Ext(path))
	}
}

func save(img image.Image, path string, enc func(w io.Writer, m image.Image) error) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc(f, img); err != nil {
		f.Close()
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return f.Close()
}

// FramePath returns dir/prefix_NNNN.png with index zero-padded to digits.
func FramePath(dir, prefix string, index, digits int) string {
	if digits < 1 {
		digits = 1
	}
	return filepath.Join(dir, fmt.Sprintf("%s_%0*d.png", prefix, digits, index))
}

// Digits is the zero-padding width needed for n frames.
func Digits(n int) int {
	d := 1
	for v := n - 1; v >= 10; v /= 10 {
		d++
	}
	return d
}
