package scene

// Reflection depth: one primary ray plus this many reflected segments.
const Bounces = 2

const gamma = 0.45

// Pixel computes the gamma-corrected color of the pixel whose center is at
// fragCoord (device pixels, origin bottom-left). Alpha is always 1 and is left
// to the caller.
func Pixel(fragCoord Vec2, u Uniforms) Vec3 {
	res := u.Resolution
	short := min(res.X, res.Y)
	uv := fragCoord.Sub(res.Mul(0.5)).Mul(1 / short)

	origin, lookAt := Camera(u)
	ray := Ray{Origin: origin, Dir: RayDir(uv, origin, lookAt, Zoom)}

	b := Shade(ray, u)
	col := b.Color
	weight := b.Weight(0)
	for i := 0; i < Bounces; i++ {
		if !b.Hit {
			// A miss returns the same ray; marching it again adds nothing.
			break
		}
		next := Shade(b.Next, u)
		col = col.Add(next.Color.Mul(weight))
		weight = next.Weight(weight)
		b = next
	}
	return Vec3{pow(col.X, gamma), pow(col.Y, gamma), pow(col.Z, gamma)}
}
