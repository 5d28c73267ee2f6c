package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type hostHAL struct {
	logger  *hostLogger
	fb      *hostFramebuffer
	surface *hostSurface
	ptr     *hostPointer
	clock   *hostClock
	dev     Device
}

// newHost builds the shared host pieces. fixed is the clock step per frame;
// zero selects the wall clock. The device is attached by the runner.
func newHost(width, height int, scale float64, fixed time.Duration) *hostHAL {
	if scale <= 0 {
		scale = 1
	}
	return &hostHAL{
		logger:  &hostLogger{w: os.Stdout},
		surface: &hostSurface{w: width, h: height, scale: scale},
		ptr:     newHostPointer(),
		clock:   newHostClock(fixed),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{h: h} }
func (h *hostHAL) Input() Input     { return hostInput{ptr: h.ptr} }
func (h *hostHAL) Clock() Clock     { return h.clock }
func (h *hostHAL) Device() Device   { return h.dev }

type hostDisplay struct {
	h *hostHAL
}

func (d hostDisplay) Framebuffer() Framebuffer {
	if d.h.fb == nil {
		return nil
	}
	return d.h.fb
}

func (d hostDisplay) Surface() Surface { return d.h.surface }

type hostInput struct {
	ptr *hostPointer
}

func (in hostInput) Pointer() PointerSource { return in.ptr }

type hostSurface struct {
	mu    sync.Mutex
	w, h  int
	scale float64
}

func (s *hostSurface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w, s.h
}

func (s *hostSurface) DeviceScale() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scale
}

func (s *hostSurface) set(w, h int, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w, s.h, s.scale = w, h, scale
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
