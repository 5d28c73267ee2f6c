package scene

// Surface identifies which implicit surface a distance sample belongs to.
type Surface int

const (
	SurfaceFloor  Surface = 0
	SurfaceSphere Surface = 1
)

func (s Surface) String() string {
	switch s {
	case SurfaceFloor:
		return "floor"
	case SurfaceSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Scene geometry. The sphere sits at the world origin.
const (
	SphereRadius = 1.5
	FloorHeight  = -1.64
)

// Material is one signed distance sample tagged with its surface.
type Material struct {
	Dist    float32
	Surface Surface
}

// MinMaterial returns the closer sample. Ties go to a.
func MinMaterial(a, b Material) Material {
	if a.Dist <= b.Dist {
		return a
	}
	return b
}

// Dist evaluates the scene distance field at p. The sphere is passed first, so
// it wins ties against the floor.
func Dist(p Vec3) Material {
	sphere := Material{Dist: Length(p) - SphereRadius, Surface: SurfaceSphere}
	floor := Material{Dist: p.Y - FloorHeight, Surface: SurfaceFloor}
	return MinMaterial(sphere, floor)
}
