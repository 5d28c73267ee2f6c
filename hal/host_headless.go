package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz     int
	Ticks  uint64
	Width  int
	Height int

	// Scale is the simulated device pixel ratio.
	Scale float64

	RenderScale int
	Workers     int

	// Pointer events queued before the first tick.
	Pointer []PointerEvent
}

// RunHeadless runs the loop without opening a window. Time advances by a
// fixed 1/Hz per tick so output does not depend on machine speed.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Width <= 0 {
		cfg.Width = 320
	}
	if cfg.Height <= 0 {
		cfg.Height = 240
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(cfg.Width, cfg.Height, cfg.Scale, d)
	h.fb = newHostFramebuffer(0, 0)
	h.dev = newSoftDevice(ctx, h.fb, cfg.RenderScale, cfg.Workers)
	for _, ev := range cfg.Pointer {
		h.ptr.emit(ev)
	}
	step := newApp(h)

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.clock.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
