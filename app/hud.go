package app

import (
	"fmt"
	"image/color"
	"time"

	"marcher/hal"
	"marcher/internal/buildinfo"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

type hud struct {
	font       tinyfont.Fonter
	fontHeight int16
	fg         color.RGBA

	frames    int
	windowAt  time.Duration
	fps       float64
	lastLines []string
}

func newHUD() *hud {
	font := &freemono.Regular9pt7b
	return &hud{
		font:       font,
		fontHeight: int16(font.YAdvance),
		fg:         color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// tick counts a frame and refreshes the FPS estimate once per second.
func (h *hud) tick(elapsed time.Duration) {
	h.frames++
	if d := elapsed - h.windowAt; d >= time.Second {
		h.fps = float64(h.frames) / d.Seconds()
		h.frames = 0
		h.windowAt = elapsed
	}
}

func (h *hud) lines(pointers int) []string {
	h.lastLines = append(h.lastLines[:0],
		fmt.Sprintf("%.1f fps", h.fps),
		fmt.Sprintf("pointers %d", pointers),
		buildinfo.Short(),
	)
	return h.lastLines
}

func (h *hud) draw(fb hal.Framebuffer, lines []string) {
	if fb == nil || fb.Format() != hal.PixelFormatRGBA8888 || h.fontHeight <= 0 {
		return
	}
	d := &fbDisplayer{fb: fb}
	y := int16(0)
	for _, line := range lines {
		y += h.fontHeight
		if int(y) > fb.Height() {
			break
		}
		tinyfont.WriteLine(d, h.font, 4, y, line, h.fg)
	}
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

// fbDisplayer lets tinyfont draw into an RGBA framebuffer.
type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || x < 0 || y < 0 || int(x) >= d.fb.Width() || int(y) >= d.fb.Height() {
		return
	}
	buf := d.fb.Buffer()
	off := int(y)*d.fb.StrideBytes() + int(x)*4
	if off < 0 || off+3 >= len(buf) {
		return
	}
	buf[off+0] = c.R
	buf[off+1] = c.G
	buf[off+2] = c.B
	buf[off+3] = 0xFF
}

func (d *fbDisplayer) Display() error { return nil }
