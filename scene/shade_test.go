package scene

import "testing"

func near(a, b Vec3, tol float32) bool {
	return abs(a.X-b.X) <= tol && abs(a.Y-b.Y) <= tol && abs(a.Z-b.Z) <= tol
}

func TestShadeMissReturnsBlackAndKeepsRay(t *testing.T) {
	r := Ray{Origin: V3(0, 5, 0), Dir: V3(0, 1, 0)}
	b := Shade(r, Uniforms{Time: 1.25, Resolution: V2(64, 64)})
	if b.Hit {
		t.Fatalf("expected a miss")
	}
	if b.Color != (Vec3{}) {
		t.Fatalf("miss color %v, want black", b.Color)
	}
	if b.Next != r {
		t.Fatalf("miss moved the ray: %+v", b.Next)
	}
	if w := b.Weight(0.07); w != 0.07 {
		t.Fatalf("miss replaced the previous reflectivity: %v", w)
	}
}

func TestBounceWeight(t *testing.T) {
	hit := Bounce{Hit: true, Reflectivity: 0.1}
	if w := hit.Weight(0.05); w != 0.1 {
		t.Fatalf("hit weight=%v, want 0.1", w)
	}
	if w := (Bounce{}).Weight(0.05); w != 0.05 {
		t.Fatalf("miss weight=%v, want 0.05", w)
	}
}

func TestShadeSphereHit(t *testing.T) {
	r := Ray{Origin: V3(0, 0, -5), Dir: V3(0, 0, 1)}
	b := Shade(r, Uniforms{Resolution: V2(800, 600)})
	if !b.Hit {
		t.Fatalf("expected a hit")
	}

	// Head-on: the reflection points straight back at the camera.
	if Dot(b.Next.Dir, V3(0, 0, -1)) < 0.999 {
		t.Fatalf("reflected dir %v, want (0,0,-1)", b.Next.Dir)
	}
	off := Length(b.Next.Origin) - SphereRadius
	if abs(off-3*HitEpsilon) > HitEpsilon {
		t.Fatalf("next origin %v off the surface, want ~%v", off, 3*HitEpsilon)
	}
	if abs(b.Reflectivity-0.125) > 1e-4 {
		t.Fatalf("reflectivity %v, want 0.125", b.Reflectivity)
	}
	// Light (0.75, 0.725, 0.7375) times tint Hue(0)*10, band fully on.
	if want := V3(9.0, 2.032174, 2.001296); !near(b.Color, want, 5e-3) {
		t.Fatalf("color %v, want %v", b.Color, want)
	}

	// At t=1 the sphere stripe at this point is off.
	b = Shade(r, Uniforms{Time: 1, Resolution: V2(800, 600)})
	if b.Color != (Vec3{}) {
		t.Fatalf("t=1 color %v, want black", b.Color)
	}
}

func TestBaseLight(t *testing.T) {
	n := V3(0, 0, -1)
	if got, want := baseLight(n, n, n), V3(0.75, 0.725, 0.7375); !near(got, want, 1e-5) {
		t.Fatalf("head-on light %v, want %v", got, want)
	}

	// The spot follows the reflection direction, not the light.
	n = Normalize(V3(0, 1, 1))
	refl := Reflect(V3(0, 0, 1), n)
	got := baseLight(n, refl, Normalize(V3(1, 2, -3)))
	if want := V3(4.997747e-05, 4.497973e-05, 4.747860e-05); !near(got, want, 5e-7) {
		t.Fatalf("oblique light %v, want %v", got, want)
	}
}

func TestSurfaceBands(t *testing.T) {
	cases := []struct {
		name       string
		band       func(Vec3, float32, float32) float32
		p          Vec3
		time, want float32
	}{
		{"floor off", floorBand, V3(1, -1.64, 2), 0.3, 0},
		{"floor edge", floorBand, V3(0.5, -1.64, -1), 1.1, 0.214830},
		{"floor edge 2", floorBand, V3(-2, -1.64, 3), 2, 0.435626},
		{"sphere off", sphereBand, V3(0, 0.2, -1.5), 0.1, 0},
		{"sphere edge", sphereBand, V3(0, -1.65, 1), 0, 0.596423},
		{"sphere on", sphereBand, V3(0.3, -1.62, 0), 0.25, 0.999888},
	}
	for _, c := range cases {
		// An extent of 2 widens the band edge to [0,1].
		if got := c.band(c.p, c.time, 2); abs(got-c.want) > 1e-4 {
			t.Fatalf("%s: band=%v, want %v", c.name, got, c.want)
		}
	}
}

func TestShadeReflectivityRange(t *testing.T) {
	origin := V3(3, 2, -5)
	for i := 0; i < 64; i++ {
		uv := V2(float32(i%8)/8-0.5, float32(i/8)/8-0.5)
		r := Ray{Origin: origin, Dir: RayDir(uv, origin, Vec3{}, 1)}
		b := Shade(r, Uniforms{Time: float32(i) * 0.1, Resolution: V2(64, 64)})
		if !b.Hit {
			continue
		}
		if b.Reflectivity < 0.005 || b.Reflectivity > 0.125 {
			t.Fatalf("ray %d: reflectivity %v out of range", i, b.Reflectivity)
		}
		if d := Dist(b.Next.Origin).Dist; d < HitEpsilon {
			t.Fatalf("ray %d: next origin only %v from the surface", i, d)
		}
	}
}

func TestHue(t *testing.T) {
	cases := []struct {
		t    float32
		want Vec3
	}{
		{0, V3(1.2, 0.280300, 0.271362)},
		{0.25, V3(0.597478, 1.109072, 0.099393)},
		{1, V3(1.199915, 0.288882, 0.262968)},
	}
	for _, c := range cases {
		if got := Hue(c.t); !near(got, c.want, 1e-4) {
			t.Fatalf("Hue(%v)=%v, want %v", c.t, got, c.want)
		}
	}
}

func TestPixelMatchesReference(t *testing.T) {
	u := Uniforms{Time: 1.5, Resolution: V2(64, 48)}
	cases := []struct {
		frag Vec2
		want Vec3
	}{
		{V2(32, 24), V3(2.421309, 2.235524, 0.089723)}, // sphere, stripe on
		{V2(10, 5), V3(1.082905, 0.970831, 0.039561)},  // floor ring
		{V2(40, 30), V3(0, 0, 0)},                      // sphere, stripe off
	}
	for _, c := range cases {
		if got := Pixel(c.frag, u); !near(got, c.want, 1e-2) {
			t.Fatalf("Pixel(%v)=%v, want %v", c.frag, got, c.want)
		}
	}
}

func TestPixelIsDeterministicAndGammaCorrected(t *testing.T) {
	u := Uniforms{Time: 2, Resolution: V2(64, 48)}
	for y := 0; y < 48; y += 6 {
		for x := 0; x < 64; x += 8 {
			frag := V2(float32(x)+0.5, float32(y)+0.5)
			a := Pixel(frag, u)
			b := Pixel(frag, u)
			if a != b {
				t.Fatalf("pixel %v not deterministic: %v vs %v", frag, a, b)
			}
			if a.X < 0 || a.Y < 0 || a.Z < 0 {
				t.Fatalf("pixel %v negative: %v", frag, a)
			}
		}
	}
}

func TestPixelSkyIsBlack(t *testing.T) {
	// The top edge of the frame looks over the sphere into empty space.
	u := Uniforms{Time: 0, Resolution: V2(64, 64)}
	if c := Pixel(V2(32, 63.5), u); c != (Vec3{}) {
		t.Fatalf("sky pixel %v, want black", c)
	}
}
