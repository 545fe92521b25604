package silk

// VertexStride is the number of float32 values per vertex written by
// AppendVertexData: position(3), normal(3), uv(2), tangent(3).
const VertexStride = 11

// Offsets of each attribute inside one interleaved vertex.
const (
	VertexOffsetPosition = 0
	VertexOffsetNormal   = 3
	VertexOffsetUV       = 6
	VertexOffsetTangent  = 8
)

// AppendVertexData appends the interleaved vertex stream for every particle
// to dst and returns the extended slice. Pass dst[:0] to reuse a buffer
// across frames.
func (c *Cloth) AppendVertexData(dst []float32) []float32 {
	if need := len(dst) + len(c.particles)*VertexStride; cap(dst) < need {
		grown := make([]float32, len(dst), need)
		copy(grown, dst)
		dst = grown
	}
	for i := range c.particles {
		p := &c.particles[i]
		dst = append(dst,
			p.Position[0], p.Position[1], p.Position[2],
			p.Normal[0], p.Normal[1], p.Normal[2],
			p.UV[0], p.UV[1],
			p.Tangent[0], p.Tangent[1], p.Tangent[2],
		)
	}
	return dst
}

// Indices returns the triangle index list, three per triangle. It is fixed
// for the lifetime of the cloth. The returned slice MUST NOT be mutated.
func (c *Cloth) Indices() []uint32 {
	return c.indices
}

// TriangleCount returns len(Indices())/3.
func (c *Cloth) TriangleCount() int {
	return len(c.indices) / 3
}

// Edges returns every distinct triangle edge once, lower index first, in
// first-seen order. Used by the wireframe render mode.
func (c *Cloth) Edges() [][2]uint32 {
	seen := make(map[[2]uint32]struct{}, len(c.indices))
	edges := make([][2]uint32, 0, len(c.indices))
	for i := 0; i+2 < len(c.indices); i += 3 {
		tri := [3]uint32{c.indices[i], c.indices[i+1], c.indices[i+2]}
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			e := [2]uint32{a, b}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}
