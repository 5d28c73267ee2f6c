package scene

// Ray is a half-line from Origin along the unit vector Dir.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// Bounce is the outcome of shading one ray segment. Next is the reflected ray
// to continue with, weighted by Reflectivity.
//
// On a miss Hit is false, Color is black, Next equals the input ray and
// Reflectivity is zero. A miss does not replace the reflectivity of the
// previous segment; use Weight to carry it forward.
type Bounce struct {
	Color        Vec3
	Next         Ray
	Reflectivity float32
	Hit          bool
}

// Weight returns the reflectivity to apply to the segment after b, given the
// one in effect before it.
func (b Bounce) Weight(prev float32) float32 {
	if !b.Hit {
		return prev
	}
	return b.Reflectivity
}

// Shading constants shared with the Kage program.
const (
	hueFrequency = 6.3
	hueSpeed     = 0.1
	tintGain     = 10

	diffuseGain  = 0.25
	diffusePower = 8
	spotGain     = 0.5
	spotPower    = 16

	patternSpeed  = 2
	ringFrequency = 4
	ringScale     = 0.5
	sphereBands   = 12
	sphereBandY   = 1.7

	floorReflectivity  = 0.05
	sphereReflectivity = 0.005
	maxReflectivity    = 0.125

	// bounceOffset lifts the next ray origin off the surface.
	bounceOffset = 3 * HitEpsilon
)

var (
	diffuseTint = Vec3{1, 0.9, 0.95}
	huePhase    = Vec3{0, 23, 21}
)

// Hue returns the rotating palette color for t.
func Hue(t float32) Vec3 {
	return Vec3{
		X: 0.6 + 0.6*cos(hueFrequency*t+huePhase.X),
		Y: 0.6 + 0.6*cos(hueFrequency*t+huePhase.Y),
		Z: 0.6 + 0.6*cos(hueFrequency*t+huePhase.Z),
	}
}

// Shade marches r and lights whatever it hits for the frame u. The light
// sits in the direction of the ray origin, so on the primary ray it is
// co-located with the camera.
func Shade(r Ray, u Uniforms) Bounce {
	d, surf := March(r.Origin, r.Dir)
	if d > MaxDist {
		return Bounce{Next: r}
	}

	p := r.Origin.Add(r.Dir.Mul(d))
	n := Normal(p)
	refl := Reflect(r.Dir, n)
	light := Normalize(r.Origin)

	fresnel := Clamp(1+Dot(refl, n), 0, 1)
	lit := baseLight(n, refl, light)

	extent := max(u.Resolution.X, u.Resolution.Y)
	var (
		band float32
		low  float32
	)
	if surf == SurfaceFloor {
		band, low = floorBand(p, u.Time, extent), floorReflectivity
	} else {
		band, low = sphereBand(p, u.Time, extent), sphereReflectivity
	}
	tint := Hue(u.Time * hueSpeed).Mul(tintGain)

	return Bounce{
		Color:        lit.MulV(tint.Mul(band)),
		Next:         Ray{Origin: p.Add(n.Mul(bounceOffset)), Dir: refl},
		Reflectivity: Mix(low, maxReflectivity, fresnel),
		Hit:          true,
	}
}

// baseLight is the diffuse and spot term for normal n and reflection refl.
func baseLight(n, refl, light Vec3) Vec3 {
	diffuse := Smoothstep(0.05, 0.95, Dot(light, n)*0.5+0.5)
	spot := Clamp(Dot(Normalize(refl), n), 0, 1)
	return diffuseTint.Mul(diffuseGain * pow(diffuse, diffusePower)).
		Add(Splat(spotGain * pow(spot, spotPower)))
}

// floorBand is the ring pattern on the floor. extent is the larger viewport
// side; the band edge is two pixels wide.
func floorBand(p Vec3, time, extent float32) float32 {
	t := patternSpeed * time
	xz := Length(Vec3{X: p.X * ringScale, Z: p.Z * ringScale})
	xy := Length(Vec3{X: p.X * ringScale, Y: p.Y * ringScale})
	return Smoothstep(0, 2/extent, sin(t-ringFrequency*xz)+cos(t-ringFrequency*xy))
}

// sphereBand is the horizontal stripe pattern on the sphere.
func sphereBand(p Vec3, time, extent float32) float32 {
	t := patternSpeed * time
	return Smoothstep(0, 2/extent, sin(t+sphereBands*abs(p.Y+sphereBandY)))
}
