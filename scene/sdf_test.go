package scene

import "testing"

func TestMinMaterialTieGoesToFirst(t *testing.T) {
	a := Material{Dist: 0.5, Surface: SurfaceSphere}
	b := Material{Dist: 0.5, Surface: SurfaceFloor}
	if got := MinMaterial(a, b); got.Surface != SurfaceSphere {
		t.Fatalf("tie resolved to %v, want sphere", got.Surface)
	}
	if got := MinMaterial(b, a); got.Surface != SurfaceFloor {
		t.Fatalf("tie resolved to %v, want first argument", got.Surface)
	}
}

func TestDistPicksCloserSurface(t *testing.T) {
	for x := float32(-4); x <= 4; x += 0.5 {
		for y := float32(-3); y <= 4; y += 0.25 {
			for z := float32(-4); z <= 4; z += 0.5 {
				p := V3(x, y, z)
				sphere := Length(p) - SphereRadius
				floor := p.Y - FloorHeight
				want := SurfaceFloor
				if sphere <= floor {
					want = SurfaceSphere
				}
				m := Dist(p)
				if m.Surface != want {
					t.Fatalf("Dist(%v).Surface = %v, want %v", p, m.Surface, want)
				}
				if m.Dist != min(sphere, floor) {
					t.Fatalf("Dist(%v).Dist = %v, want %v", p, m.Dist, min(sphere, floor))
				}
			}
		}
	}
}

func TestDistKnownPoints(t *testing.T) {
	tests := []struct {
		name string
		p    Vec3
		dist float32
		surf Surface
	}{
		{"sphere center", V3(0, 0, 0), -1.5, SurfaceSphere},
		{"above sphere", V3(0, 2.5, 0), 1, SurfaceSphere},
		{"on floor far away", V3(10, FloorHeight, 0), 0, SurfaceFloor},
		{"below floor", V3(10, FloorHeight-1, 0), -1, SurfaceFloor},
	}
	for _, tt := range tests {
		m := Dist(tt.p)
		if m.Surface != tt.surf {
			t.Fatalf("%s: surface %v, want %v", tt.name, m.Surface, tt.surf)
		}
		if abs(m.Dist-tt.dist) > 1e-5 {
			t.Fatalf("%s: dist %v, want %v", tt.name, m.Dist, tt.dist)
		}
	}
}

func TestSurfaceString(t *testing.T) {
	if SurfaceFloor.String() != "floor" || SurfaceSphere.String() != "sphere" || Surface(7).String() != "unknown" {
		t.Fatalf("unexpected surface names")
	}
}
