package scene

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

//go:embed scene.kage
var shaderTemplate string

// Uniform names declared by the Kage program.
const (
	UniformTime         = "Time"
	UniformTouch        = "Touch"
	UniformPointerCount = "PointerCount"
	UniformResolution   = "Resolution"
)

// The Kage program takes its constants from this package, so the GPU and
// CPU renderers cannot disagree on them.
var shaderSource = mustExpandShader()

func shaderParams() map[string]any {
	return map[string]any{
		"MaxSteps":           MaxSteps,
		"MaxDist":            float32(MaxDist),
		"HitEpsilon":         float32(HitEpsilon),
		"NormalEpsilon":      float32(normalEpsilon),
		"SphereRadius":       float32(SphereRadius),
		"FloorHeight":        float32(FloorHeight),
		"HueFrequency":       float32(hueFrequency),
		"HuePhase":           huePhase,
		"HueSpeed":           float32(hueSpeed),
		"TintGain":           float32(tintGain),
		"DiffuseTint":        diffuseTint,
		"DiffuseGain":        float32(diffuseGain),
		"DiffusePower":       float32(diffusePower),
		"SpotGain":           float32(spotGain),
		"SpotPower":          float32(spotPower),
		"PatternSpeed":       float32(patternSpeed),
		"RingFrequency":      float32(ringFrequency),
		"RingScale":          float32(ringScale),
		"SphereBands":        float32(sphereBands),
		"SphereBandY":        float32(sphereBandY),
		"FloorReflectivity":  float32(floorReflectivity),
		"SphereReflectivity": float32(sphereReflectivity),
		"MaxReflectivity":    float32(maxReflectivity),
		"BounceOffset":       float32(bounceOffset),
		"OrbitSpeed":         float32(orbitSpeed),
		"AutoPitchBase":      float32(autoPitchBase),
		"AutoPitchAmp":       float32(autoPitchAmp),
		"PointerScaleY":      float32(pointerScaleY),
		"PointerBiasY":       float32(pointerBiasY),
		"MaxPointerVertical": float32(maxPointerVertical),
		"PointerPitchOffset": float32(pointerPitchOffset),
		"CameraRest":         cameraRest,
		"Zoom":               float32(Zoom),
		"Bounces":            Bounces,
		"Gamma":              float32(gamma),
	}
}

// kageFloat formats v as a Kage float literal.
func kageFloat(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func kageVec3(v Vec3) string {
	return fmt.Sprintf("vec3(%s, %s, %s)", kageFloat(v.X), kageFloat(v.Y), kageFloat(v.Z))
}

func expandShader(src string, params map[string]any) ([]byte, error) {
	tmpl, err := template.New("scene.kage").
		Option("missingkey=error").
		Funcs(template.FuncMap{"f": kageFloat, "v3": kageVec3}).
		Parse(src)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func mustExpandShader() []byte {
	b, err := expandShader(shaderTemplate, shaderParams())
	if err != nil {
		panic(fmt.Sprintf("scene: expand scene.kage: %v", err))
	}
	return b
}

// ShaderSource returns a copy of the Kage fragment program implementing Pixel
// on the GPU.
func ShaderSource() []byte {
	return append([]byte(nil), shaderSource...)
}

// ShaderUniforms maps u onto the Kage uniform names.
func ShaderUniforms(u Uniforms) map[string]any {
	return map[string]any{
		UniformTime:         u.Time,
		UniformTouch:        []float32{u.Touch.X, u.Touch.Y},
		UniformPointerCount: u.PointerCount,
		UniformResolution:   []float32{u.Resolution.X, u.Resolution.Y},
	}
}
