package silk

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera defaults.
const (
	DefaultFOV         = 45.0 // degrees, vertical
	DefaultNear        = 0.1
	DefaultFar         = 100.0
	DefaultSensitivity = 0.1 // degrees per pixel of mouse motion
	DefaultMoveSpeed   = 5.0 // units per second
	maxPitch           = 89.0
)

// CameraConfig is the serializable part of a Camera.
type CameraConfig struct {
	Position    [3]float32 `toml:"position" yaml:"position"`
	Yaw         float32    `toml:"yaw" yaml:"yaw"`
	Pitch       float32    `toml:"pitch" yaml:"pitch"`
	FOV         float32    `toml:"fov" yaml:"fov"`
	Sensitivity float32    `toml:"sensitivity" yaml:"sensitivity"`
	MoveSpeed   float32    `toml:"move_speed" yaml:"move_speed"`
}

// DefaultCameraConfig places the camera far enough back to see a default cloth.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:    [3]float32{0, 3, 12},
		Yaw:         -90,
		Pitch:       0,
		FOV:         DefaultFOV,
		Sensitivity: DefaultSensitivity,
		MoveSpeed:   DefaultMoveSpeed,
	}
}

// focusAnim holds the tweens that ease the camera back to its home pose.
type focusAnim struct {
	tweens [5]*gween.Tween
	done   [5]bool
}

// Camera is a free-flying perspective camera described by a position and
// yaw/pitch angles in degrees. Yaw -90 looks down -z.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Up       mgl32.Vec3

	FOV       float32
	Near, Far float32

	Sensitivity float32
	MoveSpeed   float32

	// Width and Height are the viewport size in pixels.
	Width, Height int

	home  CameraConfig
	focus *focusAnim
}

// NewCamera creates a camera from cfg with the given viewport size.
func NewCamera(cfg CameraConfig, width, height int) *Camera {
	c := &Camera{
		Up:     mgl32.Vec3{0, 1, 0},
		Near:   DefaultNear,
		Far:    DefaultFar,
		Width:  width,
		Height: height,
		home:   cfg,
	}
	c.apply(cfg)
	return c
}

func (c *Camera) apply(cfg CameraConfig) {
	c.Position = mgl32.Vec3(cfg.Position)
	c.Yaw = cfg.Yaw
	c.Pitch = clampPitch(cfg.Pitch)
	c.FOV = cfg.FOV
	if c.FOV <= 0 {
		c.FOV = DefaultFOV
	}
	c.Sensitivity = cfg.Sensitivity
	if c.Sensitivity <= 0 {
		c.Sensitivity = DefaultSensitivity
	}
	c.MoveSpeed = cfg.MoveSpeed
	if c.MoveSpeed <= 0 {
		c.MoveSpeed = DefaultMoveSpeed
	}
}

func clampPitch(p float32) float32 {
	if p > maxPitch {
		return maxPitch
	}
	if p < -maxPitch {
		return -maxPitch
	}
	return p
}

// Front returns the unit view direction.
func (c *Camera) Front() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	return mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

// Right returns the unit vector to the camera's right.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(c.Up).Normalize()
}

// Rotate turns the camera by a mouse offset in pixels. dy > 0 looks up.
// Pitch is clamped to ±89° so the view never flips.
func (c *Camera) Rotate(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch = clampPitch(c.Pitch + dy*c.Sensitivity)
	c.focus = nil
}

// Move flies the camera: forward and right in [-1, 1], scaled by MoveSpeed*dt.
func (c *Camera) Move(forward, right, dt float32) {
	if forward == 0 && right == 0 {
		return
	}
	speed := c.MoveSpeed * dt
	c.Position = c.Position.
		Add(c.Front().Mul(forward * speed)).
		Add(c.Right().Mul(right * speed))
	c.focus = nil
}

// SetViewport updates the viewport size used for projection.
func (c *Camera) SetViewport(width, height int) {
	c.Width = width
	c.Height = height
}

// Aspect returns width/height, or 1 for an empty viewport.
func (c *Camera) Aspect() float32 {
	if c.Width <= 0 || c.Height <= 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

// View returns the world-to-view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), c.Up)
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.Aspect(), c.Near, c.Far)
}

// ViewDepth returns the distance of world point p in front of the camera
// along the view direction (positive in front).
func (c *Camera) ViewDepth(p mgl32.Vec3) float32 {
	return -c.View().Mul4x1(p.Vec4(1)).Z()
}

// Project maps a world point to screen pixels with a top-left origin. Z is
// the window depth: within [0, 1] between the near and far planes. Points
// behind the camera get Z = -1.
func (c *Camera) Project(p mgl32.Vec3) mgl32.Vec3 {
	return c.projector(c.View(), c.Projection())(p)
}

// Projector returns a ProjectFunc for the current camera pose, computing the
// matrices once.
func (c *Camera) Projector() ProjectFunc {
	return c.projector(c.View(), c.Projection())
}

func (c *Camera) projector(view, proj mgl32.Mat4) ProjectFunc {
	mvp := proj.Mul4(view)
	w, h := c.Width, c.Height
	return func(p mgl32.Vec3) mgl32.Vec3 {
		if mvp.Mul4x1(p.Vec4(1)).W() <= 0 {
			return mgl32.Vec3{0, 0, -1}
		}
		win := mgl32.Project(p, view, proj, 0, 0, w, h)
		win[1] = float32(h) - win[1]
		return win
	}
}

// Unproject maps a screen point (top-left origin) at window depth z back to
// world space. z = 0 is the near plane, z = 1 the far plane.
func (c *Camera) Unproject(sx, sy, z float32) (mgl32.Vec3, error) {
	win := mgl32.Vec3{sx, float32(c.Height) - sy, z}
	return mgl32.UnProject(win, c.View(), c.Projection(), 0, 0, c.Width, c.Height)
}

// Ray returns the unit direction from the camera position through screen
// point (sx, sy).
func (c *Camera) Ray(sx, sy float32) (mgl32.Vec3, error) {
	near, err := c.Unproject(sx, sy, 0)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return normalizeOrZero(near.Sub(c.Position)), nil
}

// FocusHome eases the camera back to the pose it was created with over
// duration seconds.
func (c *Camera) FocusHome(duration float32, fn ease.TweenFunc) {
	from := [5]float32{c.Position[0], c.Position[1], c.Position[2], c.Yaw, c.Pitch}
	to := [5]float32{c.home.Position[0], c.home.Position[1], c.home.Position[2], c.home.Yaw, c.home.Pitch}
	f := &focusAnim{}
	for i := range f.tweens {
		f.tweens[i] = gween.New(from[i], to[i], duration, fn)
	}
	c.focus = f
}

// Focusing reports whether a FocusHome transition is in progress.
func (c *Camera) Focusing() bool {
	return c.focus != nil
}

// update advances the focus transition. Called once per frame by App.
func (c *Camera) update(dt float32) {
	if c.focus == nil {
		return
	}
	var vals [5]float32
	allDone := true
	for i, tw := range c.focus.tweens {
		if c.focus.done[i] {
			vals[i], _ = tw.Update(0)
			continue
		}
		v, done := tw.Update(dt)
		vals[i] = v
		c.focus.done[i] = done
		if !done {
			allDone = false
		}
	}
	c.Position = mgl32.Vec3{vals[0], vals[1], vals[2]}
	c.Yaw = vals[3]
	c.Pitch = clampPitch(vals[4])
	if allDone {
		c.focus = nil
	}
}
