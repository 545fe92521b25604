package silk

import "github.com/go-gl/mathgl/mgl32"

// DefaultPickThreshold is the maximum screen distance, in pixels, between the
// cursor and a particle's projection for the particle to be picked.
const DefaultPickThreshold = 50

// ProjectFunc maps a world position to window coordinates: X and Y in
// pixels (same origin as the cursor coordinates handed to Pick) and Z the
// depth in [0, 1] for points between the near and far planes.
type ProjectFunc func(world mgl32.Vec3) mgl32.Vec3

// Pick returns the index of the particle whose projection is closest to
// (x, y) and within threshold pixels, or -1. Particles projected outside the
// [0, 1] depth range are ignored.
func (c *Cloth) Pick(x, y, threshold float32, project ProjectFunc) int {
	best := -1
	bestDistSq := threshold * threshold
	for i := range c.particles {
		sp := project(c.particles[i].Position)
		if sp[2] < 0 || sp[2] > 1 {
			continue
		}
		dx := sp[0] - x
		dy := sp[1] - y
		distSq := dx*dx + dy*dy
		if distSq < bestDistSq {
			bestDistSq = distSq
			best = i
		}
	}
	return best
}
