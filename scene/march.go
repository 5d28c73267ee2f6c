package scene

// Sphere tracing limits.
const (
	MaxSteps   = 50
	MaxDist    = 20
	HitEpsilon = 0.01

	normalEpsilon = 0.001
)

// March sphere-traces the ray ro+rd*d through the scene. It returns the
// accumulated distance and the surface of the last sample. A result greater
// than MaxDist is a miss.
func March(ro, rd Vec3) (float32, Surface) {
	var (
		d    float32
		surf Surface
	)
	for i := 0; i < MaxSteps; i++ {
		m := Dist(ro.Add(rd.Mul(d)))
		d += m.Dist
		surf = m.Surface
		if d > MaxDist || abs(m.Dist) < HitEpsilon {
			break
		}
	}
	return d, surf
}

// Normal estimates the surface normal at p from one-sided differences along
// each axis.
func Normal(p Vec3) Vec3 {
	d := Dist(p).Dist
	n := Vec3{
		X: d - Dist(p.Sub(Vec3{X: normalEpsilon})).Dist,
		Y: d - Dist(p.Sub(Vec3{Y: normalEpsilon})).Dist,
		Z: d - Dist(p.Sub(Vec3{Z: normalEpsilon})).Dist,
	}
	return Normalize(n)
}
