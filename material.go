package silk

import (
	"fmt"
	"strings"
)

// Material holds the physical and visual coefficients of a fabric. Fabrics
// differ only in these numbers, so presets are plain values.
type Material struct {
	Name string `toml:"name" yaml:"name"`
	// Per-kind constraint stiffness, each in 0..1.
	Structural float32 `toml:"structural" yaml:"structural"`
	Shear      float32 `toml:"shear" yaml:"shear"`
	Bending    float32 `toml:"bending" yaml:"bending"`
	// Damping scales the carried-over velocity every tick (< 1 models air drag).
	Damping float32 `toml:"damping" yaml:"damping"`
	// Mass of every particle.
	Mass float32 `toml:"mass" yaml:"mass"`
	// Color is the base color used by the shaded render mode.
	Color Color `toml:"color" yaml:"color"`
}

// Stiffness returns the stiffness the material assigns to constraints of kind k.
func (m Material) Stiffness(k ConstraintKind) float32 {
	switch k {
	case ConstraintStructural:
		return m.Structural
	case ConstraintShear:
		return m.Shear
	case ConstraintBending:
		return m.Bending
	default:
		return 0
	}
}

func (m Material) validate() error {
	for _, k := range []ConstraintKind{ConstraintStructural, ConstraintShear, ConstraintBending} {
		if s := m.Stiffness(k); s < 0 || s > 1 {
			return fmt.Errorf("%w: %s stiffness %v outside [0, 1]", ErrInvalidConfig, k, s)
		}
	}
	if m.Damping < 0 || m.Damping > 1 {
		return fmt.Errorf("%w: damping %v outside [0, 1]", ErrInvalidConfig, m.Damping)
	}
	if m.Mass <= 0 {
		return fmt.Errorf("%w: mass %v must be positive", ErrInvalidConfig, m.Mass)
	}
	return nil
}

// Silk is light and drapes easily: stiff threads, very weak bending.
var Silk = Material{
	Name:       "silk",
	Structural: 1.0,
	Shear:      0.8,
	Bending:    0.05,
	Damping:    0.98,
	Mass:       DefaultMass,
	Color:      Color{0.6, 0.1, 0.2, 1},
}

// Cotton folds less readily than silk and loses motion faster.
var Cotton = Material{
	Name:       "cotton",
	Structural: 1.0,
	Shear:      0.9,
	Bending:    0.2,
	Damping:    0.97,
	Mass:       DefaultMass,
	Color:      Color{0.8, 0.7, 0.6, 1},
}

// Denim is heavy and stiff.
var Denim = Material{
	Name:       "denim",
	Structural: 1.0,
	Shear:      1.0,
	Bending:    0.5,
	Damping:    0.96,
	Mass:       1.5,
	Color:      Color{0.2, 0.3, 0.6, 1},
}

// Materials lists the presets in the order the demo binds them to keys 1..3.
var Materials = []Material{Silk, Cotton, Denim}

// MaterialByName looks up a preset by case-insensitive name.
func MaterialByName(name string) (Material, error) {
	for _, m := range Materials {
		if strings.EqualFold(m.Name, name) {
			return m, nil
		}
	}
	return Material{}, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
}
