package scene

import (
	"context"
	"errors"
	"image"
	"image/color"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/image/draw"
)

// Renderer evaluates Pixel for every pixel of a destination image on the CPU.
//
// Create it once and reuse it; the internal buffer is kept between frames.
type Renderer struct {
	// Workers is the number of goroutines sharing the rows. Zero means NumCPU.
	Workers int
	// Scale renders at 1/Scale of the destination size and upscales with
	// nearest-neighbour sampling. Values below 1 are treated as 1.
	Scale int

	small *image.RGBA
}

// NewRenderer returns a renderer using every CPU at full resolution.
func NewRenderer() *Renderer {
	return &Renderer{Scale: 1}
}

var errEmptyTarget = errors.New("scene: empty render target")

// Render draws one frame into dst. Resolution is taken from u, so the caller
// decides whether dst covers the whole viewport. Cancelling ctx stops the
// workers between rows and returns ctx.Err().
func (r *Renderer) Render(ctx context.Context, dst draw.Image, u Uniforms) error {
	b := dst.Bounds()
	if b.Empty() {
		return errEmptyTarget
	}
	scale := r.Scale
	if scale < 1 {
		scale = 1
	}

	target, direct := dst.(*image.RGBA)
	direct = direct && scale == 1
	if !direct {
		sw := (b.Dx() + scale - 1) / scale
		sh := (b.Dy() + scale - 1) / scale
		if r.small == nil || r.small.Rect.Dx() != sw || r.small.Rect.Dy() != sh {
			r.small = image.NewRGBA(image.Rect(0, 0, sw, sh))
		}
		target = r.small
	}

	if err := r.fill(ctx, target, u, float32(scale)); err != nil {
		return err
	}

	if !direct {
		if scale == 1 {
			draw.Draw(dst, b, target, image.Point{}, draw.Src)
		} else {
			draw.NearestNeighbor.Scale(dst, b, target, target.Bounds(), draw.Src, nil)
		}
	}
	return nil
}

func (r *Renderer) fill(ctx context.Context, img *image.RGBA, u Uniforms, scale float32) error {
	w, h := img.Rect.Dx(), img.Rect.Dy()

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > h {
		workers = h
	}

	var (
		next int64 = -1
		wg   sync.WaitGroup
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				y := int(atomic.AddInt64(&next, 1))
				if y >= h {
					return
				}
				off := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
				row := img.Pix[off : off+w*4]
				fy := u.Resolution.Y - (float32(y)+0.5)*scale
				for x := 0; x < w; x++ {
					c := Pixel(Vec2{X: (float32(x) + 0.5) * scale, Y: fy}, u)
					row[x*4+0] = toByte(c.X)
					row[x*4+1] = toByte(c.Y)
					row[x*4+2] = toByte(c.Z)
					row[x*4+3] = 0xFF
				}
			}
		}()
	}
	wg.Wait()
	return ctx.Err()
}

// RGBA converts a linear 0..1 color to an opaque 8-bit color, clipping
// out-of-range channels.
func RGBA(c Vec3) color.RGBA {
	return color.RGBA{R: toByte(c.X), G: toByte(c.Y), B: toByte(c.Z), A: 0xFF}
}

func toByte(v float32) uint8 {
	if v != v || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint8(v*255 + 0.5)
}
