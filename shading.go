package silk

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Light and sheen constants of the silk shading model.
const (
	ambientStrength  = 0.2
	diffuseStrength  = 0.8
	specularStrength = 1.5
	specularPower    = 80.0
)

var (
	// DefaultLightPos is the point light position in world space.
	DefaultLightPos = mgl32.Vec3{5, 5, 10}
	specularColor   = mgl32.Vec3{1, 0.95, 0.9}
)

// Shader evaluates an anisotropic (Kajiya-Kay style) silk model per vertex:
// ambient + Lambert diffuse tinted by the base color, plus a white sheen
// driven by the sine of the angle between tangent and half vector.
type Shader struct {
	LightPos mgl32.Vec3
	ViewPos  mgl32.Vec3
	Base     mgl32.Vec3
}

// Shade returns the lit color for a surface point. Components may exceed 1;
// callers clamp.
func (s *Shader) Shade(pos, normal, tangent mgl32.Vec3) mgl32.Vec3 {
	n := normalizeOrZero(normal)
	t := normalizeOrZero(tangent)
	v := normalizeOrZero(s.ViewPos.Sub(pos))
	l := normalizeOrZero(s.LightPos.Sub(pos))
	h := normalizeOrZero(l.Add(v))

	diff := n.Dot(l)
	if diff < 0 {
		diff = 0
	}

	dotTH := t.Dot(h)
	sinTH := 1 - dotTH*dotTH
	if sinTH < 0 {
		sinTH = 0
	}
	sinTH = math32.Sqrt(sinTH)
	spec := math32.Pow(sinTH, specularPower)

	lit := float32(ambientStrength) + diff*diffuseStrength
	return s.Base.Mul(lit).Add(specularColor.Mul(specularStrength * spec))
}
