package silk

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Gust defaults.
const (
	DefaultGustPower    = 5.0
	DefaultGustDuration = 0.25
)

// Wind produces a time-varying wind vector: a slow oscillation whose
// amplitude grows with the current gust power, plus a strong push along -z
// while a gust is blowing.
//
// There is no global clock; callers advance Wind with Update.
type Wind struct {
	// GustPower is the power a gust eases toward while active.
	GustPower float32
	// GustDuration is the ease-in/ease-out time in seconds.
	GustDuration float32
	// Ease shapes the gust transitions. Defaults to ease.OutQuad.
	Ease ease.TweenFunc

	time   float32
	power  float32
	gusty  bool
	tween  *gween.Tween
	paused bool
}

// NewWind returns a calm Wind with default gust settings.
func NewWind() *Wind {
	return &Wind{
		GustPower:    DefaultGustPower,
		GustDuration: DefaultGustDuration,
		Ease:         ease.OutQuad,
	}
}

// SetGust starts easing toward full gust power (on) or back to calm (off).
// Repeated calls with the same value are ignored.
func (w *Wind) SetGust(on bool) {
	if on == w.gusty {
		return
	}
	w.gusty = on
	target := float32(0)
	if on {
		target = w.GustPower
	}
	fn := w.Ease
	if fn == nil {
		fn = ease.OutQuad
	}
	w.tween = gween.New(w.power, target, w.GustDuration, fn)
}

// Gusting reports whether a gust was last requested.
func (w *Wind) Gusting() bool {
	return w.gusty
}

// SetPaused freezes the wind clock and zeroes the wind vector.
func (w *Wind) SetPaused(paused bool) {
	w.paused = paused
}

// Paused reports whether the wind is frozen.
func (w *Wind) Paused() bool {
	return w.paused
}

// Update advances the wind clock and any gust transition by dt seconds.
func (w *Wind) Update(dt float32) {
	if w.paused {
		return
	}
	w.time += dt
	if w.tween != nil {
		val, done := w.tween.Update(dt)
		w.power = val
		if done {
			w.tween = nil
		}
	}
}

// Power returns the current gust power.
func (w *Wind) Power() float32 {
	return w.power
}

// Time returns the wind clock in seconds.
func (w *Wind) Time() float32 {
	return w.time
}

// Vector returns the wind at the current clock.
func (w *Wind) Vector() mgl32.Vec3 {
	if w.paused {
		return mgl32.Vec3{}
	}
	return WindAt(w.time, w.power)
}

// WindAt evaluates the oscillating wind at time t for gust power p.
func WindAt(t, p float32) mgl32.Vec3 {
	v := mgl32.Vec3{
		math32.Sin(t*3) * (2 + p),
		0.5*math32.Sin(t) + p,
		-math32.Cos(t*2) * (2 + p),
	}
	if p > 0.1 {
		v[2] -= p * 10
	}
	return v
}
