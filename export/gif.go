package export

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"

	xdraw "golang.org/x/image/draw"
)

// GIF accumulates frames for an animated GIF.
type GIF struct {
	// Delay is per frame, in 100ths of a second.
	Delay int

	// MaxWidth downscales wider frames, keeping the aspect ratio. Zero
	// keeps the original size.
	MaxWidth int

	out gif.GIF
}

// NewGIF returns an accumulator for the given frame rate.
func NewGIF(fps int) *GIF {
	delay := 4
	if fps > 0 {
		delay = max(1, (100+fps/2)/fps)
	}
	return &GIF{Delay: delay}
}

// Add quantizes img to the Plan9 palette with Floyd-Steinberg dithering.
func (g *GIF) Add(img image.Image) {
	src := img
	b := img.Bounds()
	if g.MaxWidth > 0 && b.Dx() > g.MaxWidth {
		h := max(1, b.Dy()*g.MaxWidth/b.Dx())
		small := image.NewRGBA(image.Rect(0, 0, g.MaxWidth, h))
		xdraw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, xdraw.Src, nil)
		src = small
	}

	p := image.NewPaletted(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()), palette.Plan9)
	draw.FloydSteinberg.Draw(p, p.Bounds(), src, src.Bounds().Min)
	g.out.Image = append(g.out.Image, p)
	g.out.Delay = append(g.out.Delay, g.Delay)
}

func (g *GIF) Len() int { return len(g.out.Image) }

// Save encodes all frames, looping forever.
func (g *GIF) Save(path string) error {
	if len(g.out.Image) == 0 {
		return errors.New("export: gif has no frames")
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	g.out.LoopCount = 0
	if err := gif.EncodeAll(f, &g.out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
