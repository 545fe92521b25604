package silk

// Default fixed-step timing.
const (
	DefaultPhysicsStep = 0.01
	DefaultMaxFrame    = 0.05
)

// Stepper converts variable frame times into a whole number of fixed
// simulation steps. Frame times are clamped to MaxFrame so one slow frame
// cannot trigger a long catch-up burst.
type Stepper struct {
	// Step is the fixed simulation timestep in seconds.
	Step float32
	// MaxFrame caps the elapsed time credited per Advance call.
	MaxFrame float32

	accumulator float32
}

// NewStepper returns a Stepper with the given step and frame cap.
func NewStepper(step, maxFrame float32) *Stepper {
	return &Stepper{Step: step, MaxFrame: maxFrame}
}

// Advance credits elapsed seconds and calls fn(Step) until less than one
// step remains. The remainder carries over to the next call. Returns the
// number of steps taken.
func (s *Stepper) Advance(elapsed float32, fn func(dt float32)) int {
	if s.Step <= 0 {
		return 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if s.MaxFrame > 0 && elapsed > s.MaxFrame {
		elapsed = s.MaxFrame
	}
	s.accumulator += elapsed

	steps := 0
	for s.accumulator >= s.Step {
		fn(s.Step)
		s.accumulator -= s.Step
		steps++
	}
	return steps
}

// Pending returns the accumulated time not yet consumed by a step.
func (s *Stepper) Pending() float32 {
	return s.accumulator
}

// Reset discards any accumulated time.
func (s *Stepper) Reset() {
	s.accumulator = 0
}
