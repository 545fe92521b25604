package silk

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAppendVertexData(t *testing.T) {
	c := mustCloth(t, testClothConfig(3, 2, PinPolicy{}))
	c.recalculateNormals()

	prefix := []float32{42}
	data := c.AppendVertexData(prefix)
	if len(data) != 1+c.Len()*VertexStride {
		t.Fatalf("len = %d, want %d", len(data), 1+c.Len()*VertexStride)
	}
	if data[0] != 42 {
		t.Error("existing contents overwritten")
	}

	for i, p := range c.Particles() {
		v := data[1+i*VertexStride : 1+(i+1)*VertexStride]
		pos := mgl32.Vec3{v[VertexOffsetPosition], v[VertexOffsetPosition+1], v[VertexOffsetPosition+2]}
		nrm := mgl32.Vec3{v[VertexOffsetNormal], v[VertexOffsetNormal+1], v[VertexOffsetNormal+2]}
		uv := mgl32.Vec2{v[VertexOffsetUV], v[VertexOffsetUV+1]}
		tan := mgl32.Vec3{v[VertexOffsetTangent], v[VertexOffsetTangent+1], v[VertexOffsetTangent+2]}
		if pos != p.Position || nrm != p.Normal || uv != p.UV || tan != p.Tangent {
			t.Errorf("vertex %d = %v, want particle %+v", i, v, p)
		}
	}
}

func TestAppendVertexDataReuse(t *testing.T) {
	c := mustCloth(t, testClothConfig(4, 4, PinPolicy{}))
	buf := c.AppendVertexData(nil)
	first := &buf[0]
	buf = c.AppendVertexData(buf[:0])
	if &buf[0] != first {
		t.Error("buffer with enough capacity was reallocated")
	}
}

func TestTriangleCount(t *testing.T) {
	tests := []struct {
		w, h, want int
	}{
		{1, 1, 0},
		{5, 1, 0},
		{2, 2, 2},
		{5, 5, 32},
		{60, 60, 59 * 59 * 2},
	}
	for _, tt := range tests {
		c := mustCloth(t, testClothConfig(tt.w, tt.h, PinPolicy{}))
		if got := c.TriangleCount(); got != tt.want {
			t.Errorf("%dx%d TriangleCount = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestIndicesInRange(t *testing.T) {
	c := mustCloth(t, testClothConfig(6, 4, PinPolicy{}))
	for i, idx := range c.Indices() {
		if int(idx) >= c.Len() {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}
}

func TestEdges(t *testing.T) {
	c := mustCloth(t, testClothConfig(3, 3, PinPolicy{}))
	edges := c.Edges()
	// 6 horizontal + 6 vertical + 4 diagonals.
	if len(edges) != 16 {
		t.Fatalf("len(Edges) = %d, want 16", len(edges))
	}
	seen := make(map[[2]uint32]bool)
	for _, e := range edges {
		if e[0] >= e[1] {
			t.Errorf("edge %v not ordered", e)
		}
		if seen[e] {
			t.Errorf("edge %v duplicated", e)
		}
		seen[e] = true
	}
}
