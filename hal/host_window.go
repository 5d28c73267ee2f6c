//go:build cgo

package hal

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"

	"marcher/internal/buildinfo"
)

// RunWindow starts a desktop window and drives the app step once per tick.
// It blocks until the window closes or the step returns an error.
func RunWindow(cfg WindowConfig, newApp func(HAL) func() error) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "marcher (" + buildinfo.Short() + ")"
	}

	h := newHost(cfg.Width, cfg.Height, 1, 0)
	g := &hostGame{h: h}
	if cfg.Software {
		h.fb = newHostFramebuffer(0, 0)
		h.dev = newSoftDevice(context.Background(), h.fb, cfg.RenderScale, cfg.Workers)
	} else {
		g.gpu = &kageDevice{}
		h.dev = g.gpu
	}
	g.step = newApp(h)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	gpu   *kageDevice
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.h.ptr.poll(g.h.surface)
	g.h.clock.step()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.gpu != nil {
		g.gpu.flush(screen)
		return
	}

	fb := g.h.fb
	if fb == nil || fb.width == 0 || fb.height == 0 {
		return
	}
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != fb.width || g.fbImg.Bounds().Dy() != fb.height {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}
	g.fbImg.WritePixels(fb.buf)
	screen.DrawImage(g.fbImg, nil)
}

// Layout keeps the backing surface in device pixels; the logical size is
// recorded for the app.
func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	g.h.surface.set(outsideWidth, outsideHeight, scale)
	return deviceSize(outsideWidth, outsideHeight, scale)
}
