package silk

// ConstraintKind classifies a distance constraint by the grid relationship of
// its two particles.
type ConstraintKind uint8

const (
	ConstraintStructural ConstraintKind = iota // 4-neighbors: resists stretching
	ConstraintShear                            // diagonal neighbors: resists shearing
	ConstraintBending                          // neighbors two apart: resists folding
)

// String returns the kind name.
func (k ConstraintKind) String() string {
	switch k {
	case ConstraintStructural:
		return "structural"
	case ConstraintShear:
		return "shear"
	case ConstraintBending:
		return "bending"
	default:
		return "unknown"
	}
}

// constraintEpsilon is the length below which a constraint is treated as
// degenerate and skipped.
const constraintEpsilon = 1e-6

// Constraint keeps two particles at a fixed distance. A and B index into the
// owning cloth's particle slice.
type Constraint struct {
	A, B int
	// Rest is measured once, at construction.
	Rest float32
	// Stiffness is the fraction (0..1) of the error corrected per pass.
	Stiffness float32
	Kind      ConstraintKind
}

// newConstraint measures the rest distance from the particles' current positions.
func newConstraint(particles []Particle, a, b int, stiffness float32, kind ConstraintKind) Constraint {
	return Constraint{
		A:         a,
		B:         b,
		Rest:      particles[b].Position.Sub(particles[a].Position).Len(),
		Stiffness: stiffness,
		Kind:      kind,
	}
}

// Solve runs one relaxation step, moving each unpinned endpoint by half of
// the stiffness-scaled length error along the connecting vector.
func (c *Constraint) Solve(particles []Particle) {
	p1 := &particles[c.A]
	p2 := &particles[c.B]

	delta := p2.Position.Sub(p1.Position)
	dist := delta.Len()
	if dist < constraintEpsilon {
		return
	}

	correction := delta.Mul((dist - c.Rest) / dist * 0.5 * c.Stiffness)
	if !p1.Pinned {
		p1.Position = p1.Position.Add(correction)
	}
	if !p2.Pinned {
		p2.Position = p2.Position.Sub(correction)
	}
}

// Error returns the signed difference between the current length and Rest.
func (c *Constraint) Error(particles []Particle) float32 {
	return particles[c.B].Position.Sub(particles[c.A].Position).Len() - c.Rest
}
