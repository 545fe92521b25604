package silk

import "github.com/go-gl/mathgl/mgl32"

// Grabber drags a single particle with the pointer. While grabbed, the
// particle is pinned and placed on the cursor ray at the view depth it had
// when it was picked.
type Grabber struct {
	// Threshold is the pick radius in pixels.
	Threshold float32

	index     int
	depth     float32
	wasPinned bool
}

// NewGrabber returns an idle grabber using DefaultPickThreshold.
func NewGrabber() *Grabber {
	return &Grabber{Threshold: DefaultPickThreshold, index: -1}
}

// Active reports whether a particle is currently held.
func (g *Grabber) Active() bool {
	return g.index >= 0
}

// Index returns the held particle index, or -1.
func (g *Grabber) Index() int {
	return g.index
}

// Depth returns the view depth the held particle is dragged at.
func (g *Grabber) Depth() float32 {
	return g.depth
}

// Begin picks the particle under (sx, sy) and pins it. Returns the picked
// index, or -1 when nothing is within Threshold.
func (g *Grabber) Begin(cloth *Cloth, cam *Camera, sx, sy float32) int {
	if g.Active() {
		g.End(cloth)
	}
	idx := cloth.Pick(sx, sy, g.Threshold, cam.Projector())
	if idx < 0 {
		return -1
	}
	p := cloth.Particle(idx)
	g.index = idx
	g.wasPinned = p.Pinned
	g.depth = cam.ViewDepth(p.Position)
	p.Pinned = true
	return idx
}

// Drag moves the held particle under (sx, sy). Returns the new position and
// whether a move happened.
func (g *Grabber) Drag(cloth *Cloth, cam *Camera, sx, sy float32) (mgl32.Vec3, bool) {
	if !g.Active() {
		return mgl32.Vec3{}, false
	}
	dir, err := cam.Ray(sx, sy)
	if err != nil {
		return mgl32.Vec3{}, false
	}
	// Scale so the target sits at the grabbed view depth, not ray length.
	cos := dir.Dot(cam.Front())
	if cos < 1e-4 {
		return mgl32.Vec3{}, false
	}
	target := cam.Position.Add(dir.Mul(g.depth / cos))
	cloth.MoveParticle(g.index, target)
	return target, true
}

// End releases the held particle, restoring the pin state it had before it
// was grabbed. Returns the released index, or -1 if nothing was held.
func (g *Grabber) End(cloth *Cloth) int {
	if !g.Active() {
		return -1
	}
	idx := g.index
	if idx < cloth.Len() {
		cloth.SetPinned(idx, g.wasPinned)
	}
	g.index = -1
	g.depth = 0
	g.wasPinned = false
	return idx
}

// Reset forgets the held particle without touching any cloth. Used when the
// cloth is rebuilt.
func (g *Grabber) Reset() {
	g.index = -1
	g.depth = 0
	g.wasPinned = false
}
