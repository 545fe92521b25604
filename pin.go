package silk

import (
	"fmt"
	"strings"
)

// PinEdge selects which grid particles a PinPolicy anchors.
type PinEdge uint8

const (
	PinNone    PinEdge = iota // nothing pinned
	PinTop                    // row y == height-1
	PinBottom                 // row y == 0
	PinLeft                   // column x == 0
	PinRight                  // column x == width-1
	PinCorners                // the four grid corners
)

var pinEdgeNames = [...]string{"none", "top", "bottom", "left", "right", "corners"}

// String returns the edge name.
func (e PinEdge) String() string {
	if int(e) < len(pinEdgeNames) {
		return pinEdgeNames[e]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so configs can name edges.
func (e PinEdge) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *PinEdge) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range pinEdgeNames {
		if n == name {
			*e = PinEdge(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unknown pin edge %q", ErrInvalidConfig, text)
}

// PinPolicy decides which particles start pinned. Along an edge, every
// Stride-th particle is pinned, starting from index 0; Stride <= 1 pins the
// whole edge. Stride is ignored for PinCorners and PinNone.
type PinPolicy struct {
	Edge   PinEdge `toml:"edge" yaml:"edge"`
	Stride int     `toml:"stride" yaml:"stride"`
}

// DefaultPinPolicy anchors every 5th particle of the top row.
var DefaultPinPolicy = PinPolicy{Edge: PinTop, Stride: 5}

// Pinned reports whether grid cell (x, y) of a width×height cloth starts pinned.
func (p PinPolicy) Pinned(x, y, width, height int) bool {
	stride := p.Stride
	if stride < 1 {
		stride = 1
	}
	switch p.Edge {
	case PinTop:
		return y == height-1 && x%stride == 0
	case PinBottom:
		return y == 0 && x%stride == 0
	case PinLeft:
		return x == 0 && y%stride == 0
	case PinRight:
		return x == width-1 && y%stride == 0
	case PinCorners:
		return (x == 0 || x == width-1) && (y == 0 || y == height-1)
	default:
		return false
	}
}
