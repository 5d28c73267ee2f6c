//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// poll samples the mouse and touches. Ebiten reports positions in layout
// (device) pixels; they are divided back to logical pixels here.
func (p *hostPointer) poll(s *hostSurface) {
	w, h := s.Size()
	scale := s.DeviceScale()

	cx, cy := ebiten.CursorPosition()
	p.mouse(float64(cx)/scale, float64(cy)/scale, w, h,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		p.touch(PointerID(id), PointerPress, float64(x)/scale, float64(y)/scale)
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		p.touch(PointerID(id), PointerMove, float64(x)/scale, float64(y)/scale)
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		p.touch(PointerID(id), PointerRelease, float64(x)/scale, float64(y)/scale)
	}
}
