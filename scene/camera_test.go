package scene

import "testing"

func TestRayDirCenterLooksForward(t *testing.T) {
	origin := V3(0, 2, -6)
	d := RayDir(Vec2{}, origin, Vec3{}, 1)
	want := Normalize(Vec3{}.Sub(origin))
	if Dot(d, want) < 0.9999 {
		t.Fatalf("center ray %v, want %v", d, want)
	}
	if e := abs(Length(d) - 1); e > 1e-5 {
		t.Fatalf("ray not unit length: %v", Length(d))
	}
}

func TestRayDirRightIsPositiveX(t *testing.T) {
	d := RayDir(V2(0.5, 0), V3(0, 0, -6), Vec3{}, 1)
	if d.X <= 0 {
		t.Fatalf("uv.x>0 should bend the ray towards +x, got %v", d)
	}
	d = RayDir(V2(0, 0.5), V3(0, 0, -6), Vec3{}, 1)
	if d.Y <= 0 {
		t.Fatalf("uv.y>0 should bend the ray up, got %v", d)
	}
}

func TestCameraAnglesAutonomousIgnoresTouch(t *testing.T) {
	base := Uniforms{Time: 7.5, Resolution: V2(800, 600)}
	stale := base
	stale.Touch = V2(123, 456)

	p1, y1 := CameraAngles(base)
	p2, y2 := CameraAngles(stale)
	if p1 != p2 || y1 != y2 {
		t.Fatalf("stale touch changed autonomous camera: (%v,%v) vs (%v,%v)", p1, y1, p2, y2)
	}
	if want := float32(0.05) + 0.25*sin(7.5*0.25); abs(p1-want) > 1e-6 {
		t.Fatalf("pitch=%v, want %v", p1, want)
	}
	if abs(y1-7.5*0.25) > 1e-6 {
		t.Fatalf("yaw=%v, want %v", y1, 7.5*0.25)
	}
}

func TestCameraAnglesFollowPointer(t *testing.T) {
	cases := []struct {
		name       string
		touch      Vec2
		pitch, yaw float32
	}{
		// m.y = 0.5*0.75-0.125 = 0.25; m.x = 0.25.
		{"middle", V2(200, 300), 1 - 0.25*3.14159265, -0.5 * 3.14159265},
		// Top edge remaps to 0.625 and clamps at 0.45.
		{"clamp high", V2(400, 600), 1 - 0.45*3.14159265, -3.14159265},
		// Near the bottom the remap goes negative and clamps at 0.
		{"clamp low", V2(0, 50), 1, 0},
	}
	for _, c := range cases {
		u := Uniforms{Time: 3, PointerCount: 1, Touch: c.touch, Resolution: V2(800, 600)}
		pitch, yaw := CameraAngles(u)
		if abs(pitch-c.pitch) > 1e-5 || abs(yaw-c.yaw) > 1e-5 {
			t.Fatalf("%s: angles=(%v,%v), want (%v,%v)", c.name, pitch, yaw, c.pitch, c.yaw)
		}
	}
}

func TestCameraOrigin(t *testing.T) {
	cases := []struct {
		name string
		u    Uniforms
		want Vec3
	}{
		{"autonomous t=0", Uniforms{Resolution: V2(800, 600)}, V3(0, 3.296126, -5.842564)},
		{"autonomous t=5", Uniforms{Time: 5, Resolution: V2(800, 600)}, V3(4.654038, 4.576957, -1.546413)},
		{"pointer", Uniforms{Time: 3, PointerCount: 1, Touch: V2(200, 300), Resolution: V2(800, 600)}, V3(-5.223492, 4.208934, 0)},
		{"pointer top", Uniforms{Time: 3, PointerCount: 1, Touch: V2(400, 600), Resolution: V2(800, 600)}, V3(0, 0.334808, 6.699844)},
	}
	for _, c := range cases {
		origin, lookAt := Camera(c.u)
		if lookAt != (Vec3{}) {
			t.Fatalf("%s: lookAt=%v, want origin", c.name, lookAt)
		}
		if Length(origin.Sub(c.want)) > 1e-4 {
			t.Fatalf("%s: origin=%v, want %v", c.name, origin, c.want)
		}
	}
}

func TestCameraStaysAboveFloor(t *testing.T) {
	radius := Length(cameraRest)
	for i := 0; i < 200; i++ {
		u := Uniforms{Time: float32(i) * 0.37, Resolution: V2(640, 480)}
		if i%2 == 1 {
			u.PointerCount = 1
			u.Touch = V2(float32(i)*3.2, float32(i)*2.4)
		}
		origin, _ := Camera(u)
		if origin.Y <= FloorHeight {
			t.Fatalf("t=%v: camera %v below the floor", u.Time, origin)
		}
		if e := abs(Length(origin) - radius); e > 1e-4 {
			t.Fatalf("t=%v: orbit radius %v, want %v", u.Time, Length(origin), radius)
		}
	}
}
