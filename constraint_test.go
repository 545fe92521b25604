package silk

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func pair(a, b mgl32.Vec3) []Particle {
	return []Particle{
		newParticle(a, mgl32.Vec2{}, 1),
		newParticle(b, mgl32.Vec2{}, 1),
	}
}

func TestNewConstraintRest(t *testing.T) {
	ps := pair(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 4, 0})
	c := newConstraint(ps, 0, 1, 0.5, ConstraintShear)
	if !approxEqual(c.Rest, 5, epsilon) {
		t.Errorf("Rest = %v, want 5", c.Rest)
	}
	if c.Stiffness != 0.5 || c.Kind != ConstraintShear {
		t.Errorf("constraint = %+v", c)
	}
}

func TestConstraintSolve(t *testing.T) {
	tests := []struct {
		name       string
		stiffness  float32
		pinA, pinB bool
		wantA      float32
		wantB      float32
	}{
		{"symmetric", 1, false, false, 0.5, 1.5},
		{"half stiffness", 0.5, false, false, 0.25, 1.75},
		{"A pinned", 1, true, false, 0, 1.5},
		{"B pinned", 1, false, true, 0.5, 2},
		{"both pinned", 1, true, true, 0, 2},
		{"zero stiffness", 0, false, false, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := pair(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0})
			c := newConstraint(ps, 0, 1, tt.stiffness, ConstraintStructural)
			ps[1].Position = mgl32.Vec3{2, 0, 0}
			ps[0].Pinned = tt.pinA
			ps[1].Pinned = tt.pinB

			c.Solve(ps)

			if !vecApproxEqual(ps[0].Position, mgl32.Vec3{tt.wantA, 0, 0}, epsilon) {
				t.Errorf("A = %v, want x=%v", ps[0].Position, tt.wantA)
			}
			if !vecApproxEqual(ps[1].Position, mgl32.Vec3{tt.wantB, 0, 0}, epsilon) {
				t.Errorf("B = %v, want x=%v", ps[1].Position, tt.wantB)
			}
		})
	}
}

func TestConstraintSolveCompressed(t *testing.T) {
	ps := pair(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 2, 0})
	c := newConstraint(ps, 0, 1, 1, ConstraintStructural)
	ps[1].Position = mgl32.Vec3{0, 1, 0}
	c.Solve(ps)
	if !approxEqual(c.Error(ps), 0, epsilon) {
		t.Errorf("Error after full-stiffness solve = %v, want 0", c.Error(ps))
	}
	if !vecApproxEqual(ps[0].Position, mgl32.Vec3{0, -0.5, 0}, epsilon) {
		t.Errorf("A = %v, want pushed to y=-0.5", ps[0].Position)
	}
}

func TestConstraintSolveDegenerate(t *testing.T) {
	ps := pair(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{2, 1, 1})
	c := newConstraint(ps, 0, 1, 1, ConstraintStructural)
	ps[1].Position = ps[0].Position

	c.Solve(ps)

	for i, p := range ps {
		if !isFinite(p.Position) {
			t.Fatalf("particle %d position not finite: %v", i, p.Position)
		}
		if p.Position != (mgl32.Vec3{1, 1, 1}) {
			t.Errorf("particle %d moved to %v, want unchanged", i, p.Position)
		}
	}
}

func TestConstraintError(t *testing.T) {
	ps := pair(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0})
	c := newConstraint(ps, 0, 1, 1, ConstraintStructural)
	if e := c.Error(ps); !approxEqual(e, 0, epsilon) {
		t.Errorf("rest Error = %v, want 0", e)
	}
	ps[1].Position = mgl32.Vec3{1.5, 0, 0}
	if e := c.Error(ps); !approxEqual(e, 0.5, epsilon) {
		t.Errorf("stretched Error = %v, want 0.5", e)
	}
	ps[1].Position = mgl32.Vec3{0.25, 0, 0}
	if e := c.Error(ps); !approxEqual(e, -0.75, epsilon) {
		t.Errorf("compressed Error = %v, want -0.75", e)
	}
}

func TestConstraintKindString(t *testing.T) {
	tests := []struct {
		k    ConstraintKind
		want string
	}{
		{ConstraintStructural, "structural"},
		{ConstraintShear, "shear"},
		{ConstraintBending, "bending"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
