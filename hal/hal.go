package hal

import (
	"errors"
	"image"
	"time"

	"marcher/scene"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, bytes in R, G, B, A order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error

	// Image wraps Buffer without copying.
	Image() *image.RGBA
}

// Surface is the drawable area of the window (or of the headless target).
//
// Size is in logical pixels; multiply by DeviceScale for device pixels.
type Surface interface {
	Size() (w, h int)
	DeviceScale() float64
}

// Display provides access to the drawable surface and, on the software
// device, its framebuffer.
type Display interface {
	// Framebuffer returns nil when pixels are produced on the GPU.
	Framebuffer() Framebuffer
	Surface() Surface
}

// PointerID identifies one pointer (the mouse or a single touch).
type PointerID int

// MousePointer is the ID reported for the mouse cursor.
const MousePointer PointerID = -1

// PointerKind is the kind of pointer event.
type PointerKind uint8

const (
	PointerPress PointerKind = iota + 1
	PointerMove
	PointerRelease
	PointerLeave
)

func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "press"
	case PointerMove:
		return "move"
	case PointerRelease:
		return "release"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer event in logical pixels, origin top-left.
type PointerEvent struct {
	ID   PointerID
	Kind PointerKind
	X, Y float64
}

// PointerSource provides pointer events (best-effort on each platform).
type PointerSource interface {
	Events() <-chan PointerEvent
}

// Input provides access to input devices (if available).
type Input interface {
	Pointer() PointerSource
}

// Clock reports the time elapsed since the program started rendering.
type Clock interface {
	Elapsed() time.Duration
}

// Program is a compiled pixel program bound to the display.
type Program interface {
	// Draw issues one full-screen draw with the given uniforms.
	Draw(u scene.Uniforms) error
	Dispose()
}

// Device compiles pixel programs.
type Device interface {
	Compile(src []byte) (Program, error)
}

// HAL provides the only contact point between the renderer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Clock() Clock
	Device() Device
}
