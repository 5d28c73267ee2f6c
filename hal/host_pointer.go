package hal

type hostPointer struct {
	ch chan PointerEvent

	mouseIn      bool
	mouseX       float64
	mouseY       float64
	touchLastPos map[PointerID][2]float64
}

func newHostPointer() *hostPointer {
	return &hostPointer{
		ch:           make(chan PointerEvent, 64),
		touchLastPos: make(map[PointerID][2]float64),
	}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

// emit drops the event when the queue is full.
func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

// mouse turns one sampled cursor state into events. Coordinates are in
// logical pixels; the cursor leaves when it falls outside [0,w)x[0,h).
func (p *hostPointer) mouse(x, y float64, w, h int, pressed, released bool) {
	inside := x >= 0 && y >= 0 && x < float64(w) && y < float64(h)
	if !inside {
		if p.mouseIn {
			p.emit(PointerEvent{ID: MousePointer, Kind: PointerLeave, X: x, Y: y})
		}
		p.mouseIn = false
		return
	}
	moved := !p.mouseIn || x != p.mouseX || y != p.mouseY
	p.mouseIn = true
	p.mouseX, p.mouseY = x, y

	if pressed {
		p.emit(PointerEvent{ID: MousePointer, Kind: PointerPress, X: x, Y: y})
	} else if moved {
		p.emit(PointerEvent{ID: MousePointer, Kind: PointerMove, X: x, Y: y})
	}
	if released {
		p.emit(PointerEvent{ID: MousePointer, Kind: PointerRelease, X: x, Y: y})
	}
}

func (p *hostPointer) touch(id PointerID, kind PointerKind, x, y float64) {
	switch kind {
	case PointerPress:
		p.touchLastPos[id] = [2]float64{x, y}
	case PointerMove:
		last, ok := p.touchLastPos[id]
		if !ok || (last[0] == x && last[1] == y) {
			return
		}
		p.touchLastPos[id] = [2]float64{x, y}
	case PointerRelease, PointerLeave:
		delete(p.touchLastPos, id)
	}
	p.emit(PointerEvent{ID: id, Kind: kind, X: x, Y: y})
}
