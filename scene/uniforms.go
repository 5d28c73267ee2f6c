package scene

// Uniforms is the per-frame input shared by every pixel.
//
// Touch is in device pixels with the Y axis pointing up, like gl_FragCoord.
type Uniforms struct {
	Time         float32
	Touch        Vec2
	PointerCount int
	Resolution   Vec2
}

func (u Uniforms) normalizedTouch() Vec2 {
	if u.Resolution.X <= 0 || u.Resolution.Y <= 0 {
		return Vec2{}
	}
	return Vec2{X: u.Touch.X / u.Resolution.X, Y: u.Touch.Y / u.Resolution.Y}
}
