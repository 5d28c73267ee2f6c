package hal

import "image"

func rgbaImage(buf []byte, width, height, stride int) *image.RGBA {
	return &image.RGBA{
		Pix:    buf,
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// deviceSize converts a logical size to device pixels, rounding to nearest.
func deviceSize(w, h int, scale float64) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return int(float64(w)*scale + 0.5), int(float64(h)*scale + 0.5)
}
