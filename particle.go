package silk

import "github.com/go-gl/mathgl/mgl32"

// MaxVelocity caps the implicit per-tick velocity of a particle. Degenerate
// constraint configurations or extreme forces would otherwise blow the mesh
// apart within a few ticks.
const MaxVelocity = 10.0

// DefaultMass is the mass given to every particle at construction.
const DefaultMass = 1.0

// Particle is a point mass integrated with Verlet steps. Velocity is implicit:
// it is the difference between Position and PrevPosition.
type Particle struct {
	Position     mgl32.Vec3
	PrevPosition mgl32.Vec3
	// Acceleration accumulates Force/Mass for the current tick and is cleared
	// by Integrate.
	Acceleration mgl32.Vec3
	// UV is the texture coordinate assigned at construction.
	UV mgl32.Vec2
	// Normal and Tangent are recomputed from the topology every tick.
	Normal  mgl32.Vec3
	Tangent mgl32.Vec3
	// Pinned particles are skipped by the integrator and the constraint
	// solver. Their position can still be written directly.
	Pinned bool
	Mass   float32
}

// newParticle creates a resting particle at pos.
func newParticle(pos mgl32.Vec3, uv mgl32.Vec2, mass float32) Particle {
	return Particle{
		Position:     pos,
		PrevPosition: pos,
		UV:           uv,
		Normal:       mgl32.Vec3{0, 0, 1},
		Tangent:      mgl32.Vec3{1, 0, 0},
		Mass:         mass,
	}
}

// ApplyForce adds f/Mass to the accumulated acceleration. No-op when pinned.
func (p *Particle) ApplyForce(f mgl32.Vec3) {
	if p.Pinned {
		return
	}
	p.Acceleration = p.Acceleration.Add(f.Mul(1 / p.Mass))
}

// Velocity returns the implicit per-tick velocity.
func (p *Particle) Velocity() mgl32.Vec3 {
	return p.Position.Sub(p.PrevPosition)
}

// Integrate advances the particle by one Verlet step of length dt. damping
// scales the carried-over velocity (1 keeps it all). No-op when pinned.
func (p *Particle) Integrate(dt, damping float32) {
	if p.Pinned {
		return
	}

	velocity := p.Position.Sub(p.PrevPosition)
	p.PrevPosition = p.Position

	if l := velocity.Len(); l > MaxVelocity {
		velocity = velocity.Mul(MaxVelocity / l)
	}

	p.Position = p.Position.
		Add(velocity.Mul(damping)).
		Add(p.Acceleration.Mul(dt * dt))
	p.Acceleration = mgl32.Vec3{}
}
