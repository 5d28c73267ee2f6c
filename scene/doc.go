// Package scene evaluates the marcher scene: a reflective sphere floating over a
// patterned floor, both described by signed distance functions.
//
// The same pixel program exists twice:
//
//	GPU: scene.kage, an ebiten Kage fragment shader (see ShaderSource).
//	CPU: Pixel and Renderer, used for headless runs and offline export.
//
// Pipeline per pixel (fixed):
//
//	Uniforms → Camera → RayDir → Shade (primary) → Shade ×2 (reflections) → gamma.
//
// All math is float32 to stay close to what the fragment stage computes. Inputs
// that make the camera basis degenerate (looking straight along world up) are not
// special-cased and produce NaN colors.
package scene
