package silk

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	clearColor  = color.RGBA{R: 26, G: 26, B: 31, A: 255}
	pinnedColor = color.RGBA{R: 240, G: 200, B: 60, A: 255}
)

const pointSize = 3.0

// --- White pixel singleton (single-threaded, like the rest of the App) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source of vertex-colored triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// triDepth is a triangle reference sorted by window depth.
type triDepth struct {
	first int // offset into the index buffer
	depth float32
}

// renderer turns a cloth into screen-space geometry. Its buffers are reused
// across frames.
type renderer struct {
	screen []mgl32.Vec3
	verts  []ebiten.Vertex
	inds   []uint32
	order  []triDepth
	edges  [][2]uint32
}

// invalidate drops cached topology. Called when the cloth is rebuilt.
func (r *renderer) invalidate() {
	r.edges = nil
}

// project fills r.screen with the window coordinates of every particle.
func (r *renderer) project(cloth *Cloth, cam *Camera) {
	proj := cam.Projector()
	ps := cloth.Particles()
	r.screen = slices.Grow(r.screen[:0], len(ps))[:len(ps)]
	for i := range ps {
		r.screen[i] = proj(ps[i].Position)
	}
}

func (r *renderer) visible(i uint32) bool {
	z := r.screen[i].Z()
	return z >= 0 && z <= 1
}

// draw renders the cloth in the given mode and returns the number of
// primitives submitted.
func (r *renderer) draw(dst *ebiten.Image, cloth *Cloth, cam *Camera, shader *Shader, mode RenderMode, base Color) int {
	r.project(cloth, cam)
	switch mode {
	case RenderWireframe:
		return r.drawWireframe(dst, cloth, base)
	case RenderPoints:
		return r.drawPoints(dst, cloth, base)
	default:
		return r.drawShaded(dst, cloth, cam, shader)
	}
}

// buildShaded fills the vertex and index buffers with lit, back-to-front
// sorted triangles. Triangles with any vertex outside the depth range are
// culled.
func (r *renderer) buildShaded(cloth *Cloth, cam *Camera, shader *Shader) {
	shader.ViewPos = cam.Position
	ps := cloth.Particles()

	r.verts = r.verts[:0]
	for i := range ps {
		p := &ps[i]
		c := shader.Shade(p.Position, p.Normal, p.Tangent)
		s := r.screen[i]
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   s.X(),
			DstY:   s.Y(),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: clamp01(c.X()),
			ColorG: clamp01(c.Y()),
			ColorB: clamp01(c.Z()),
			ColorA: 1,
		})
	}

	indices := cloth.Indices()
	r.order = r.order[:0]
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		if !r.visible(a) || !r.visible(b) || !r.visible(c) {
			continue
		}
		depth := r.screen[a].Z() + r.screen[b].Z() + r.screen[c].Z()
		r.order = append(r.order, triDepth{first: t, depth: depth})
	}
	slices.SortFunc(r.order, func(x, y triDepth) int {
		return cmp.Compare(y.depth, x.depth)
	})

	r.inds = r.inds[:0]
	for _, td := range r.order {
		r.inds = append(r.inds, indices[td.first], indices[td.first+1], indices[td.first+2])
	}
}

func (r *renderer) drawShaded(dst *ebiten.Image, cloth *Cloth, cam *Camera, shader *Shader) int {
	r.buildShaded(cloth, cam, shader)
	if len(r.inds) == 0 {
		return 0
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.AntiAlias = true
	dst.DrawTriangles32(r.verts, r.inds, ensureWhitePixel(), &triOp)
	return len(r.inds) / 3
}

func (r *renderer) drawWireframe(dst *ebiten.Image, cloth *Cloth, base Color) int {
	if r.edges == nil {
		r.edges = cloth.Edges()
	}
	col := base.toRGBA()
	n := 0
	for _, e := range r.edges {
		if !r.visible(e[0]) || !r.visible(e[1]) {
			continue
		}
		a, b := r.screen[e[0]], r.screen[e[1]]
		vector.StrokeLine(dst, a.X(), a.Y(), b.X(), b.Y(), 1, col, true)
		n++
	}
	return n
}

func (r *renderer) drawPoints(dst *ebiten.Image, cloth *Cloth, base Color) int {
	col := base.toRGBA()
	ps := cloth.Particles()
	n := 0
	for i := range ps {
		if !r.visible(uint32(i)) {
			continue
		}
		c := col
		if ps[i].Pinned {
			c = pinnedColor
		}
		s := r.screen[i]
		vector.FillRect(dst, s.X()-pointSize/2, s.Y()-pointSize/2, pointSize, pointSize, c, false)
		n++
	}
	return n
}
