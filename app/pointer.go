package app

import (
	"marcher/hal"
	"marcher/scene"
)

// Pointer is one tracked mouse or touch contact, in logical pixels.
type Pointer struct {
	ID     hal.PointerID
	X, Y   float64
	Active bool
}

// Pointers tracks contacts in the order they were first pressed.
//
// A release or leave of any pointer clears every contact.
type Pointers struct {
	order []hal.PointerID
	byID  map[hal.PointerID]*Pointer
}

func NewPointers() *Pointers {
	return &Pointers{byID: make(map[hal.PointerID]*Pointer)}
}

func (p *Pointers) Press(id hal.PointerID, x, y float64) {
	if ptr, ok := p.byID[id]; ok {
		ptr.X, ptr.Y, ptr.Active = x, y, true
		return
	}
	p.byID[id] = &Pointer{ID: id, X: x, Y: y, Active: true}
	p.order = append(p.order, id)
}

// Move updates a pointer only while it is pressed.
func (p *Pointers) Move(id hal.PointerID, x, y float64) {
	ptr, ok := p.byID[id]
	if !ok || !ptr.Active {
		return
	}
	ptr.X, ptr.Y = x, y
}

func (p *Pointers) Release(hal.PointerID) { p.clear() }
func (p *Pointers) Leave(hal.PointerID)   { p.clear() }

func (p *Pointers) clear() {
	clear(p.byID)
	p.order = p.order[:0]
}

func (p *Pointers) Count() int { return len(p.order) }

// Get returns a copy of the pointer with the given ID.
func (p *Pointers) Get(id hal.PointerID) (Pointer, bool) {
	ptr, ok := p.byID[id]
	if !ok {
		return Pointer{}, false
	}
	return *ptr, true
}

// Apply dispatches a HAL event.
func (p *Pointers) Apply(ev hal.PointerEvent) {
	switch ev.Kind {
	case hal.PointerPress:
		p.Press(ev.ID, ev.X, ev.Y)
	case hal.PointerMove:
		p.Move(ev.ID, ev.X, ev.Y)
	case hal.PointerRelease:
		p.Release(ev.ID)
	case hal.PointerLeave:
		p.Leave(ev.ID)
	}
}

// Touch returns the first pressed pointer in device pixels with the Y axis
// flipped to point up. It is (0,0), false when nothing is tracked.
func (p *Pointers) Touch(resolutionY float32, scale float64) (scene.Vec2, bool) {
	if len(p.order) == 0 {
		return scene.Vec2{}, false
	}
	ptr := p.byID[p.order[0]]
	x := float32(ptr.X * scale)
	y := resolutionY - float32(ptr.Y*scale)
	return scene.V2(x, y), true
}
