package app

import (
	"errors"
	"image"
	"strings"
	"time"

	"marcher/hal"
	"marcher/scene"
)

type fakeLogger struct{ lines []string }

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *fakeLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *fakeLogger) contains(sub string) bool {
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

type fakeSurface struct {
	w, h  int
	scale float64
}

func (s *fakeSurface) Size() (int, int)     { return s.w, s.h }
func (s *fakeSurface) DeviceScale() float64 { return s.scale }

type fakeFramebuffer struct {
	img      *image.RGBA
	presents int
}

func newFakeFramebuffer(w, h int) *fakeFramebuffer {
	return &fakeFramebuffer{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (f *fakeFramebuffer) Width() int              { return f.img.Rect.Dx() }
func (f *fakeFramebuffer) Height() int             { return f.img.Rect.Dy() }
func (f *fakeFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGBA8888 }
func (f *fakeFramebuffer) StrideBytes() int        { return f.img.Stride }
func (f *fakeFramebuffer) Buffer() []byte          { return f.img.Pix }
func (f *fakeFramebuffer) ClearRGB(r, g, b uint8)  {}
func (f *fakeFramebuffer) Present() error          { f.presents++; return nil }
func (f *fakeFramebuffer) Image() *image.RGBA      { return f.img }

type fakeDisplay struct {
	fb *fakeFramebuffer
	s  *fakeSurface
}

func (d fakeDisplay) Framebuffer() hal.Framebuffer {
	if d.fb == nil {
		return nil
	}
	return d.fb
}
func (d fakeDisplay) Surface() hal.Surface { return d.s }

type fakePointer struct{ ch chan hal.PointerEvent }

func (p *fakePointer) Events() <-chan hal.PointerEvent { return p.ch }

type fakeInput struct{ p *fakePointer }

func (in fakeInput) Pointer() hal.PointerSource { return in.p }

type fakeClock struct{ t time.Duration }

func (c *fakeClock) Elapsed() time.Duration { return c.t }

type fakeProgram struct {
	draws    []scene.Uniforms
	disposed bool
	err      error
}

func (p *fakeProgram) Draw(u scene.Uniforms) error {
	p.draws = append(p.draws, u)
	return p.err
}
func (p *fakeProgram) Dispose() { p.disposed = true }

type fakeDevice struct {
	prog     *fakeProgram
	err      error
	compiled [][]byte
}

func (d *fakeDevice) Compile(src []byte) (hal.Program, error) {
	d.compiled = append(d.compiled, src)
	if d.err != nil {
		return nil, d.err
	}
	return d.prog, nil
}

type fakeHAL struct {
	log     *fakeLogger
	display fakeDisplay
	ptr     *fakePointer
	clock   *fakeClock
	dev     *fakeDevice
}

func newFakeHAL(w, h int, scale float64) *fakeHAL {
	return &fakeHAL{
		log:     &fakeLogger{},
		display: fakeDisplay{s: &fakeSurface{w: w, h: h, scale: scale}},
		ptr:     &fakePointer{ch: make(chan hal.PointerEvent, 16)},
		clock:   &fakeClock{},
		dev:     &fakeDevice{prog: &fakeProgram{}},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return h.display }
func (h *fakeHAL) Input() hal.Input     { return fakeInput{p: h.ptr} }
func (h *fakeHAL) Clock() hal.Clock     { return h.clock }
func (h *fakeHAL) Device() hal.Device   { return h.dev }

var errCompile = errors.New("unexpected token")
