package hal

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"marcher/scene"
)

var errNoEntryPoint = errors.New("soft: program has no Fragment entry point")

// softDevice evaluates the scene on the CPU into the host framebuffer. The
// program source is only checked for an entry point; pixels come from the
// scene package, which mirrors the shader.
type softDevice struct {
	ctx context.Context
	fb  *hostFramebuffer
	r   *scene.Renderer
}

func newSoftDevice(ctx context.Context, fb *hostFramebuffer, renderScale, workers int) *softDevice {
	r := scene.NewRenderer()
	if renderScale > 0 {
		r.Scale = renderScale
	}
	if workers > 0 {
		r.Workers = workers
	}
	return &softDevice{ctx: ctx, fb: fb, r: r}
}

func (d *softDevice) Compile(src []byte) (Program, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return nil, errors.New("soft: empty program")
	}
	if !bytes.Contains(src, []byte("func Fragment(")) {
		return nil, errNoEntryPoint
	}
	return &softProgram{d: d}, nil
}

type softProgram struct {
	d        *softDevice
	disposed bool
}

func (p *softProgram) Draw(u scene.Uniforms) error {
	if p.disposed {
		return errors.New("soft: draw after dispose")
	}
	w, h := int(u.Resolution.X+0.5), int(u.Resolution.Y+0.5)
	fb := p.d.fb
	fb.resize(w, h)
	if w == 0 || h == 0 {
		return nil
	}
	if err := p.d.r.Render(p.d.ctx, fb.Image(), u); err != nil {
		return fmt.Errorf("soft: render: %w", err)
	}
	return fb.Present()
}

func (p *softProgram) Dispose() { p.disposed = true }
