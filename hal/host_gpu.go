//go:build cgo

package hal

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"marcher/scene"
)

// kageDevice compiles Kage programs. Draw calls are recorded and replayed
// onto the screen from the game's Draw, where ebiten allows rendering.
type kageDevice struct {
	next *kageProgram
}

func (d *kageDevice) Compile(src []byte) (Program, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("kage: %w", err)
	}
	return &kageProgram{d: d, shader: s}, nil
}

func (d *kageDevice) flush(screen *ebiten.Image) {
	if d.next == nil || d.next.shader == nil {
		return
	}
	d.next.drawTo(screen)
}

type kageProgram struct {
	d        *kageDevice
	shader   *ebiten.Shader
	uniforms map[string]any
	vs       []ebiten.Vertex
}

func (p *kageProgram) Draw(u scene.Uniforms) error {
	if p.shader == nil {
		return fmt.Errorf("kage: draw after dispose")
	}
	p.uniforms = scene.ShaderUniforms(u)
	p.d.next = p
	return nil
}

func (p *kageProgram) drawTo(screen *ebiten.Image) {
	b := screen.Bounds()
	pts := quadToScreen(float32(b.Dx()), float32(b.Dy()))
	if len(p.vs) != len(pts) {
		p.vs = make([]ebiten.Vertex, len(pts))
	}
	for i, v := range pts {
		p.vs[i] = ebiten.Vertex{
			DstX: v[0], DstY: v[1],
			SrcX: v[0], SrcY: v[1],
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}
	screen.DrawTrianglesShader(p.vs, quadIndices, p.shader, &ebiten.DrawTrianglesShaderOptions{
		Uniforms: p.uniforms,
	})
}

func (p *kageProgram) Dispose() {
	if p.shader == nil {
		return
	}
	p.shader.Deallocate()
	p.shader = nil
	if p.d.next == p {
		p.d.next = nil
	}
}
