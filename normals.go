package silk

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// normalEpsilon guards every normalization in the derived-geometry pass.
const normalEpsilon = 1e-12

// normalizeOrZero returns v/|v|, or the zero vector when |v|² is below
// normalEpsilon.
func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l2 := v.Dot(v)
	if l2 < normalEpsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / math32.Sqrt(l2))
}

// recalculateNormals rebuilds per-particle normals and tangents from the
// triangle list. Face normals are accumulated unnormalized, so larger faces
// weigh more; each face contributes its normalized first edge as tangent.
func (c *Cloth) recalculateNormals() {
	for i := range c.particles {
		c.particles[i].Normal = mgl32.Vec3{}
		c.particles[i].Tangent = mgl32.Vec3{}
	}

	for i := 0; i+2 < len(c.indices); i += 3 {
		p1 := &c.particles[c.indices[i]]
		p2 := &c.particles[c.indices[i+1]]
		p3 := &c.particles[c.indices[i+2]]

		edge1 := p2.Position.Sub(p1.Position)
		edge2 := p3.Position.Sub(p1.Position)
		normal := edge1.Cross(edge2)
		tangent := normalizeOrZero(edge1)

		p1.Normal = p1.Normal.Add(normal)
		p2.Normal = p2.Normal.Add(normal)
		p3.Normal = p3.Normal.Add(normal)
		p1.Tangent = p1.Tangent.Add(tangent)
		p2.Tangent = p2.Tangent.Add(tangent)
		p3.Tangent = p3.Tangent.Add(tangent)
	}

	for i := range c.particles {
		p := &c.particles[i]
		p.Normal = normalizeOrZero(p.Normal)
		p.Tangent = normalizeOrZero(p.Tangent)
	}
}
