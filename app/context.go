package app

import (
	"fmt"
	"time"

	"marcher/hal"
	"marcher/scene"
)

// Context owns the compiled program and the viewport state it draws with.
//
// A Context whose program failed to compile stays unusable: Frame reports
// ErrNotReady and draws nothing.
type Context struct {
	dev      hal.Device
	log      hal.Logger
	pointers *Pointers

	prog  hal.Program
	ready bool

	width, height int
	scale         float64
	res           scene.Vec2
}

func NewContext(dev hal.Device, log hal.Logger, pointers *Pointers) *Context {
	if pointers == nil {
		pointers = NewPointers()
	}
	return &Context{dev: dev, log: log, pointers: pointers, scale: 1}
}

// Initialize compiles the scene program. Failures are logged and returned.
func (c *Context) Initialize() error {
	if c.ready {
		return nil
	}
	if c.dev == nil {
		err := fmt.Errorf("no device: %w", hal.ErrNotImplemented)
		c.logf("shader: compile failed: %v", err)
		return err
	}
	prog, err := c.dev.Compile(scene.ShaderSource())
	if err != nil {
		c.logf("shader: compile failed: %v", err)
		return fmt.Errorf("compile scene: %w", err)
	}
	c.prog = prog
	c.ready = true
	return nil
}

func (c *Context) Ready() bool { return c.ready }

// Resize sets the viewport from a logical size and device scale. It reports
// whether anything changed.
func (c *Context) Resize(w, h int, scale float64) bool {
	if scale <= 0 {
		scale = 1
	}
	if w == c.width && h == c.height && scale == c.scale && c.res != (scene.Vec2{}) {
		return false
	}
	c.width, c.height, c.scale = w, h, scale
	c.res = scene.V2(float32(float64(w)*scale), float32(float64(h)*scale))
	c.logf("app: resize %dx%d@%g -> %gx%g", w, h, scale, c.res.X, c.res.Y)
	return true
}

func (c *Context) Resolution() scene.Vec2 { return c.res }
func (c *Context) Scale() float64         { return c.scale }

// Uniforms builds the per-frame shader inputs.
func (c *Context) Uniforms(elapsed time.Duration) scene.Uniforms {
	touch, _ := c.pointers.Touch(c.res.Y, c.scale)
	return scene.Uniforms{
		Time:         float32(elapsed.Seconds()),
		Touch:        touch,
		PointerCount: c.pointers.Count(),
		Resolution:   c.res,
	}
}

// Frame issues one draw and returns the uniforms it used.
func (c *Context) Frame(elapsed time.Duration) (scene.Uniforms, error) {
	if !c.ready {
		return scene.Uniforms{}, ErrNotReady
	}
	u := c.Uniforms(elapsed)
	if err := c.prog.Draw(u); err != nil {
		return u, fmt.Errorf("draw: %w", err)
	}
	return u, nil
}

// Close releases the program. The context is unusable afterwards.
func (c *Context) Close() {
	if c.prog != nil {
		c.prog.Dispose()
		c.prog = nil
	}
	c.ready = false
}

func (c *Context) logf(format string, args ...any) {
	if c.log == nil {
		return
	}
	c.log.WriteLineString(fmt.Sprintf(format, args...))
}
