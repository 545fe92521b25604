package silk

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R float32 `toml:"r" yaml:"r"`
	G float32 `toml:"g" yaml:"g"`
	B float32 `toml:"b" yaml:"b"`
	A float32 `toml:"a" yaml:"a"`
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec3 converts the RGB channels to a vector for lighting math.
func (c Color) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{c.R, c.G, c.B}
}

// toRGBA converts to a premultiplied color.RGBA, clamping each channel.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RenderMode selects how the renderer interprets the cloth topology.
type RenderMode uint8

const (
	RenderShaded    RenderMode = iota // lit, filled triangles
	RenderWireframe                   // triangle edges only
	RenderPoints                      // one square per particle, no topology
	renderModeCount
)

// Next returns the mode that follows m in the Shaded → Wireframe → Points cycle.
func (m RenderMode) Next() RenderMode {
	return (m + 1) % renderModeCount
}

// String returns the display name of the mode.
func (m RenderMode) String() string {
	switch m {
	case RenderShaded:
		return "Shaded"
	case RenderWireframe:
		return "Wireframe"
	case RenderPoints:
		return "Points"
	default:
		return "Unknown"
	}
}

// ParseRenderMode maps a case-sensitive lower-case name ("shaded",
// "wireframe", "points") to a RenderMode.
func ParseRenderMode(name string) (RenderMode, bool) {
	switch name {
	case "shaded":
		return RenderShaded, true
	case "wireframe":
		return RenderWireframe, true
	case "points":
		return RenderPoints, true
	}
	return RenderShaded, false
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button: grab
	MouseButtonRight                     // secondary (right) mouse button: look around
	MouseButtonMiddle                    // middle mouse button (unused)
)

// EventType identifies a kind of cloth interaction event.
type EventType uint8

const (
	EventGrab    EventType = iota // a particle was picked and pinned to the cursor
	EventDrag                     // a grabbed particle was moved
	EventRelease                  // the grabbed particle was let go
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventGrab:
		return "grab"
	case EventDrag:
		return "drag"
	case EventRelease:
		return "release"
	default:
		return "unknown"
	}
}
