package silk

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidDimensions is returned by NewCloth for a non-positive grid size.
	ErrInvalidDimensions = errors.New("silk: invalid cloth dimensions")
	// ErrInvalidConfig is returned for out-of-range coefficients.
	ErrInvalidConfig = errors.New("silk: invalid configuration")
	// ErrUnknownMaterial is returned by MaterialByName for unknown presets.
	ErrUnknownMaterial = errors.New("silk: unknown material")
)

// windEpsilon is the wind magnitude below which no wind force is applied.
const windEpsilon = 1e-6

// ClothConfig describes the grid a Cloth is built from.
type ClothConfig struct {
	// Width and Height are the particle counts along x and y.
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
	// Spacing is the rest distance between horizontal and vertical neighbors.
	Spacing float32 `toml:"spacing" yaml:"spacing"`
	// OriginY lifts the grid center so the cloth hangs in front of the camera.
	OriginY float32 `toml:"origin_y" yaml:"origin_y"`
	// Gravity is the downward acceleration magnitude (applied along -y).
	Gravity float32 `toml:"gravity" yaml:"gravity"`
	// Iterations is the number of solver passes over every constraint per step.
	Iterations int       `toml:"iterations" yaml:"iterations"`
	Material   Material  `toml:"material" yaml:"material"`
	Pin        PinPolicy `toml:"pin" yaml:"pin"`
}

// DefaultClothConfig returns a 60×60 silk cloth hanging from every 5th
// particle of its top row.
func DefaultClothConfig() ClothConfig {
	return ClothConfig{
		Width:      60,
		Height:     60,
		Spacing:    0.1,
		OriginY:    3.0,
		Gravity:    9.8,
		Iterations: 5,
		Material:   Silk,
		Pin:        DefaultPinPolicy,
	}
}

// Validate reports whether the config can build a cloth.
func (c ClothConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.Spacing <= 0 {
		return fmt.Errorf("%w: spacing %v must be positive", ErrInvalidConfig, c.Spacing)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations %d must not be negative", ErrInvalidConfig, c.Iterations)
	}
	return c.Material.validate()
}

// Cloth is a rectangular grid of particles held together by structural,
// shear and bending constraints. The triangle topology is fixed at
// construction; only particle state changes afterwards.
//
// Cloth is not safe for concurrent use. Writes through Particle, MoveParticle
// or SetPinned must happen between calls to Step.
type Cloth struct {
	config      ClothConfig
	particles   []Particle
	constraints []Constraint
	indices     []uint32
}

// NewCloth lays out the particle grid and derives constraints and topology.
func NewCloth(cfg ClothConfig) (*Cloth, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := cfg.Width, cfg.Height

	c := &Cloth{
		config:    cfg,
		particles: make([]Particle, 0, w*h),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pos := mgl32.Vec3{
				(float32(x) - float32(w)/2) * cfg.Spacing,
				cfg.OriginY + (float32(y)-float32(h)/2)*cfg.Spacing,
				0,
			}
			p := newParticle(pos, gridUV(x, y, w, h), cfg.Material.Mass)
			p.Pinned = cfg.Pin.Pinned(x, y, w, h)
			c.particles = append(c.particles, p)
		}
	}

	c.buildConstraints()
	c.buildTopology()
	return c, nil
}

// gridUV maps a grid cell to [0,1]². A single-cell axis maps to 0.
func gridUV(x, y, w, h int) mgl32.Vec2 {
	var uv mgl32.Vec2
	if w > 1 {
		uv[0] = float32(x) / float32(w-1)
	}
	if h > 1 {
		uv[1] = float32(y) / float32(h-1)
	}
	return uv
}

func (c *Cloth) buildConstraints() {
	w, h := c.config.Width, c.config.Height
	m := c.config.Material

	add := func(x1, y1, x2, y2 int, kind ConstraintKind) {
		if x2 < 0 || x2 >= w || y2 < 0 || y2 >= h {
			return
		}
		c.constraints = append(c.constraints,
			newConstraint(c.particles, y1*w+x1, y2*w+x2, m.Stiffness(kind), kind))
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			add(x, y, x+1, y, ConstraintStructural)
			add(x, y, x, y+1, ConstraintStructural)

			add(x, y, x+1, y+1, ConstraintShear)
			add(x, y, x-1, y+1, ConstraintShear)

			add(x, y, x+2, y, ConstraintBending)
			add(x, y, x, y+2, ConstraintBending)
		}
	}
}

func (c *Cloth) buildTopology() {
	w, h := c.config.Width, c.config.Height
	if w < 2 || h < 2 {
		return
	}
	c.indices = make([]uint32, 0, (w-1)*(h-1)*6)
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			tl := uint32(y*w + x)
			tr := tl + 1
			bl := uint32((y+1)*w + x)
			br := bl + 1
			c.indices = append(c.indices,
				tl, bl, tr,
				tr, bl, br,
			)
		}
	}
}

// Step advances the simulation by dt seconds under the given wind:
// forces, Verlet integration, constraint relaxation, then normals.
//
// Wind is weighted by each particle's normal from the previous step, since
// normals are only refreshed at the end.
func (c *Cloth) Step(dt float32, wind mgl32.Vec3) {
	gravity := mgl32.Vec3{0, -c.config.Gravity, 0}

	windLen := wind.Len()
	var windDir mgl32.Vec3
	if windLen > windEpsilon {
		windDir = wind.Mul(1 / windLen)
	}

	for i := range c.particles {
		p := &c.particles[i]
		if !p.Pinned {
			p.ApplyForce(gravity)
		}
		if windLen > windEpsilon {
			p.ApplyForce(wind.Mul(p.Normal.Dot(windDir)*0.8 + 0.2))
		}
	}

	damping := c.config.Material.Damping
	for i := range c.particles {
		c.particles[i].Integrate(dt, damping)
	}

	for it := 0; it < c.config.Iterations; it++ {
		for i := range c.constraints {
			c.constraints[i].Solve(c.particles)
		}
	}

	c.recalculateNormals()
}

// Config returns the configuration the cloth was built from.
func (c *Cloth) Config() ClothConfig {
	return c.config
}

// Width returns the particle count along x.
func (c *Cloth) Width() int { return c.config.Width }

// Height returns the particle count along y.
func (c *Cloth) Height() int { return c.config.Height }

// Index returns the particle index of grid cell (x, y).
func (c *Cloth) Index(x, y int) int {
	return y*c.config.Width + x
}

// Len returns the number of particles.
func (c *Cloth) Len() int {
	return len(c.particles)
}

// Particles returns the particle slice in grid-major order. The returned
// slice MUST NOT be resized; element writes follow the same rules as
// Particle.
func (c *Cloth) Particles() []Particle {
	return c.particles
}

// Particle returns a pointer to particle i for direct inspection or
// between-step mutation.
func (c *Cloth) Particle(i int) *Particle {
	return &c.particles[i]
}

// Constraints returns the constraint list. The returned slice MUST NOT be mutated.
func (c *Cloth) Constraints() []Constraint {
	return c.constraints
}

// MoveParticle teleports particle i to pos with zero implicit velocity.
// Works on pinned particles too.
func (c *Cloth) MoveParticle(i int, pos mgl32.Vec3) {
	p := &c.particles[i]
	p.Position = pos
	p.PrevPosition = pos
}

// SetPinned pins or releases particle i. Releasing keeps the current
// position and implicit velocity.
func (c *Cloth) SetPinned(i int, pinned bool) {
	c.particles[i].Pinned = pinned
}

// Bounds returns the axis-aligned box enclosing all particle positions.
func (c *Cloth) Bounds() (lo, hi mgl32.Vec3) {
	if len(c.particles) == 0 {
		return
	}
	lo = c.particles[0].Position
	hi = lo
	for i := 1; i < len(c.particles); i++ {
		p := c.particles[i].Position
		for k := 0; k < 3; k++ {
			if p[k] < lo[k] {
				lo[k] = p[k]
			}
			if p[k] > hi[k] {
				hi[k] = p[k]
			}
		}
	}
	return lo, hi
}
