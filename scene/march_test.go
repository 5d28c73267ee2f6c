package scene

import "testing"

func TestMarchHitsSphere(t *testing.T) {
	ro := V3(0, 0, -5)
	rd := Normalize(V3(0, 0, 0).Sub(ro))

	d, surf := March(ro, rd)
	if d > MaxDist {
		t.Fatalf("march missed: d=%v", d)
	}
	if surf != SurfaceSphere {
		t.Fatalf("surface %v, want sphere", surf)
	}
	want := Length(ro) - SphereRadius
	if abs(d-want) > HitEpsilon {
		t.Fatalf("d=%v, want %v±%v", d, want, HitEpsilon)
	}
	p := ro.Add(rd.Mul(d))
	if e := abs(Length(p) - SphereRadius); e > HitEpsilon {
		t.Fatalf("final sample %v is %v from the sphere surface", p, e)
	}
}

func TestMarchHitsFloor(t *testing.T) {
	ro := V3(4, 1, -4)
	rd := Normalize(V3(0.3, -1, -0.2))

	d, surf := March(ro, rd)
	if d > MaxDist {
		t.Fatalf("march missed: d=%v", d)
	}
	if surf != SurfaceFloor {
		t.Fatalf("surface %v, want floor", surf)
	}
	p := ro.Add(rd.Mul(d))
	if e := abs(p.Y - FloorHeight); e > HitEpsilon {
		t.Fatalf("final sample %v is %v from the floor", p, e)
	}
}

func TestMarchMissesStraightUp(t *testing.T) {
	d, _ := March(V3(0, 5, 0), V3(0, 1, 0))
	if !(d > MaxDist) {
		t.Fatalf("d=%v, want a miss beyond %v", d, MaxDist)
	}
}

func TestNormal(t *testing.T) {
	tests := []struct {
		name string
		p    Vec3
		want Vec3
	}{
		{"floor", V3(5, FloorHeight, 5), V3(0, 1, 0)},
		{"sphere front", V3(0, 0, -SphereRadius), V3(0, 0, -1)},
		{"sphere top", V3(0, SphereRadius, 0), V3(0, 1, 0)},
	}
	for _, tt := range tests {
		n := Normal(tt.p)
		if Dot(n, tt.want) < 0.999 {
			t.Fatalf("%s: normal %v, want %v", tt.name, n, tt.want)
		}
	}
}
