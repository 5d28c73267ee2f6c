package app

import (
	"errors"
	"fmt"
	"time"

	"marcher/export"
	"marcher/hal"
	"marcher/internal/buildinfo"
	"marcher/replay"
)

var ErrNotReady = errors.New("app: renderer not ready")

type Config struct {
	// HUD draws FPS and pointer count over software frames.
	HUD bool

	// SnapshotDir receives a PNG every SnapshotEvery frames (software
	// device only).
	SnapshotDir   string
	SnapshotEvery int

	// RecordDir, when set, receives a replay bundle of the session.
	RecordDir string

	// Now names the replay bundle; nil uses time.Now.
	Now func() time.Time
}

// Loop drives one renderer context from the host's frame callback.
type Loop struct {
	h        hal.HAL
	cfg      Config
	ctx      *Context
	pointers *Pointers
	hud      *hud
	rec      *replay.Writer

	frame      uint32
	warnedHUD  bool
	recordFail bool
}

// New initializes the renderer context. A compile failure is logged and
// leaves the loop running with nothing drawn.
func New(h hal.HAL, cfg Config) *Loop {
	l := &Loop{h: h, cfg: cfg, pointers: NewPointers()}
	l.ctx = NewContext(h.Device(), h.Logger(), l.pointers)
	_ = l.ctx.Initialize()

	if cfg.HUD {
		l.hud = newHUD()
	}
	if cfg.RecordDir != "" {
		w, _, err := replay.NewWriter(cfg.RecordDir, "marcher", buildinfo.Short(), cfg.Now)
		if err != nil {
			l.logf("record: disabled: %v", err)
		} else {
			l.rec = w
			l.logf("record: writing %s", w.Dir())
		}
	}
	return l
}

func (l *Loop) Context() *Context   { return l.ctx }
func (l *Loop) Pointers() *Pointers { return l.pointers }

// Step handles pending input, tracks the surface size and draws one frame.
func (l *Loop) Step() error {
	l.drainPointer()

	if d := l.h.Display(); d != nil && d.Surface() != nil {
		w, h := d.Surface().Size()
		l.ctx.Resize(w, h, d.Surface().DeviceScale())
	}

	elapsed := l.h.Clock().Elapsed()
	u, err := l.ctx.Frame(elapsed)
	if errors.Is(err, ErrNotReady) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("frame %d: %w", l.frame, err)
	}

	if l.rec != nil && !l.recordFail {
		if err := l.rec.AppendRecord(replay.Record{Frame: l.frame, Uniforms: u}); err != nil {
			l.recordFail = true
			l.logf("record: %v", err)
		}
	}

	var fb hal.Framebuffer
	if d := l.h.Display(); d != nil {
		fb = d.Framebuffer()
	}
	if l.hud != nil {
		l.hud.tick(elapsed)
		if fb != nil {
			l.hud.draw(fb, l.hud.lines(l.pointers.Count()))
			if err := fb.Present(); err != nil {
				return fmt.Errorf("present: %w", err)
			}
		} else if !l.warnedHUD {
			l.warnedHUD = true
			l.logf("app: hud needs the software device")
		}
	}

	if fb != nil && l.cfg.SnapshotDir != "" && l.cfg.SnapshotEvery > 0 && l.frame%uint32(l.cfg.SnapshotEvery) == 0 {
		path := export.FramePath(l.cfg.SnapshotDir, "frame", int(l.frame), 6)
		if err := export.SavePNG(fb.Image(), path); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
	}

	l.frame++
	return nil
}

func (l *Loop) drainPointer() {
	in := l.h.Input()
	if in == nil || in.Pointer() == nil {
		return
	}
	ch := in.Pointer().Events()
	for {
		select {
		case ev := <-ch:
			l.pointers.Apply(ev)
			if l.rec != nil && !l.recordFail {
				err := l.rec.AppendEvent(replay.Event{
					Frame: l.frame, ID: int(ev.ID), Kind: ev.Kind.String(), X: ev.X, Y: ev.Y,
				})
				if err != nil {
					l.recordFail = true
					l.logf("record: %v", err)
				}
			}
		default:
			return
		}
	}
}

// Close tears down the renderer context and finishes any recording.
func (l *Loop) Close() error {
	l.ctx.Close()
	if l.rec == nil {
		return nil
	}
	err := l.rec.Close()
	if err != nil && !errors.Is(err, replay.ErrClosed) {
		return fmt.Errorf("record: %w", err)
	}
	l.logf("record: %d frames in %s", l.rec.Records(), l.rec.Dir())
	l.rec = nil
	return nil
}

func (l *Loop) logf(format string, args ...any) {
	if lg := l.h.Logger(); lg != nil {
		lg.WriteLineString(fmt.Sprintf(format, args...))
	}
}
