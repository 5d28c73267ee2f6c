package scene

import "math"

// Camera parameters. The eye starts at cameraRest and is rotated first in
// the yz plane (pitch) and then in the xz plane (yaw) around the origin.
const (
	Zoom = 1

	orbitSpeed    = 0.25
	autoPitchBase = 0.05
	autoPitchAmp  = 0.25

	// Pointer Y is remapped with pointerScaleY and pointerBiasY, then
	// clamped to [0, maxPointerVertical] before it becomes a pitch.
	pointerScaleY      = 0.75
	pointerBiasY       = 0.125
	maxPointerVertical = 0.45
	pointerPitchOffset = 1
)

var (
	worldUp    = Vec3{Y: 1}
	cameraRest = Vec3{0, 3, -6}
)

// RayDir returns the view ray for screen coordinate uv of a camera at origin
// looking at lookAt. The basis is undefined when the view direction is parallel
// to world up.
func RayDir(uv Vec2, origin, lookAt Vec3, zoom float32) Vec3 {
	forward := Normalize(lookAt.Sub(origin))
	right := Normalize(Cross(worldUp, forward))
	up := Cross(forward, right)
	return Normalize(forward.Mul(zoom).Add(right.Mul(uv.X)).Add(up.Mul(uv.Y)))
}

// CameraAngles returns the pitch and yaw in radians. With no active pointer
// the camera drifts on its own and only Time matters.
func CameraAngles(u Uniforms) (pitch, yaw float32) {
	if u.PointerCount == 0 {
		return autoPitchBase + autoPitchAmp*sin(u.Time*orbitSpeed), u.Time * orbitSpeed
	}
	m := u.normalizedTouch()
	my := Clamp(m.Y*pointerScaleY-pointerBiasY, 0, maxPointerVertical)
	return pointerPitchOffset - my*math.Pi, -m.X * 2 * math.Pi
}

// rotate turns (x, y) by angle a, matching a GLSL `v *= mat2(c, -s, s, c)`.
func rotate(x, y, a float32) (float32, float32) {
	s, c := sin(a), cos(a)
	return c*x - s*y, s*x + c*y
}

// Camera returns the eye position and look-at point for the frame.
func Camera(u Uniforms) (origin, lookAt Vec3) {
	pitch, yaw := CameraAngles(u)
	origin = cameraRest
	origin.Y, origin.Z = rotate(origin.Y, origin.Z, pitch)
	origin.X, origin.Z = rotate(origin.X, origin.Z, yaw)
	return origin, Vec3{}
}
