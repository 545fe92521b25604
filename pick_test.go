package silk

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// orthoProject maps world x/y to pixels at 100 px per unit and uses z as depth.
func orthoProject(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{p.X() * 100, p.Y() * 100, p.Z()}
}

func pickCloth(t *testing.T) *Cloth {
	cfg := testClothConfig(3, 3, PinPolicy{})
	cfg.Spacing = 1
	cfg.OriginY = 0
	c := mustCloth(t, cfg)
	// Lift into the visible depth range.
	for i := range c.Particles() {
		c.MoveParticle(i, c.Particle(i).Position.Add(mgl32.Vec3{0, 0, 0.5}))
	}
	return c
}

func TestPick(t *testing.T) {
	c := pickCloth(t)
	target := c.Index(1, 1)
	sp := orthoProject(c.Particle(target).Position)

	tests := []struct {
		name      string
		x, y      float32
		threshold float32
		want      int
	}{
		{"exact", sp.X(), sp.Y(), 50, target},
		{"nearby", sp.X() + 10, sp.Y() - 20, 50, target},
		{"outside threshold", sp.X() + 49, sp.Y() + 49, 50, -1},
		{"closest wins", sp.X() + 60, sp.Y(), 100, c.Index(2, 1)},
		{"far away", 10000, 10000, 50, -1},
	}
	for _, tt := range tests {
		if got := c.Pick(tt.x, tt.y, tt.threshold, orthoProject); got != tt.want {
			t.Errorf("%s: Pick = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestPickSkipsOutsideDepthRange(t *testing.T) {
	c := pickCloth(t)
	target := c.Index(1, 1)
	sp := orthoProject(c.Particle(target).Position)

	p := c.Particle(target).Position
	c.MoveParticle(target, mgl32.Vec3{p.X(), p.Y(), -0.5})
	if got := c.Pick(sp.X(), sp.Y(), 50, orthoProject); got != -1 {
		t.Errorf("Pick behind near plane = %d, want -1", got)
	}
	c.MoveParticle(target, mgl32.Vec3{p.X(), p.Y(), 1.5})
	if got := c.Pick(sp.X(), sp.Y(), 50, orthoProject); got != -1 {
		t.Errorf("Pick past far plane = %d, want -1", got)
	}
}
