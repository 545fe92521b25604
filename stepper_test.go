package silk

import "testing"

func TestStepperAdvance(t *testing.T) {
	s := NewStepper(0.25, 1)
	var dts []float32
	record := func(dt float32) { dts = append(dts, dt) }

	if n := s.Advance(0.6, record); n != 2 {
		t.Errorf("Advance(0.6) = %d steps, want 2", n)
	}
	if !approxEqual(s.Pending(), 0.1, epsilon) {
		t.Errorf("Pending = %v, want 0.1", s.Pending())
	}
	// The remainder carries over.
	if n := s.Advance(0.2, record); n != 1 {
		t.Errorf("Advance(0.2) = %d steps, want 1", n)
	}
	if !approxEqual(s.Pending(), 0.05, epsilon) {
		t.Errorf("Pending = %v, want 0.05", s.Pending())
	}
	for _, dt := range dts {
		if dt != 0.25 {
			t.Errorf("fn called with dt %v, want 0.25", dt)
		}
	}
}

func TestStepperClampsLongFrames(t *testing.T) {
	s := NewStepper(0.25, 1)
	if n := s.Advance(30, func(float32) {}); n != 4 {
		t.Errorf("Advance(30) = %d steps, want 4 (clamped to MaxFrame)", n)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %v, want 0", s.Pending())
	}
}

func TestStepperDefaults(t *testing.T) {
	s := NewStepper(DefaultPhysicsStep, DefaultMaxFrame)
	total := 0
	// A long stall is worth at most five ticks.
	total += s.Advance(2, func(float32) {})
	if total < 4 || total > 5 {
		t.Errorf("steps after a 2s stall = %d, want 4 or 5", total)
	}
}

func TestStepperEdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		step    float32
		elapsed float32
		want    int
	}{
		{"negative elapsed", 0.25, -1, 0},
		{"zero step", 0, 1, 0},
		{"negative step", -0.1, 1, 0},
		{"under one step", 0.25, 0.2, 0},
	}
	for _, tt := range tests {
		s := NewStepper(tt.step, 1)
		if n := s.Advance(tt.elapsed, func(float32) {}); n != tt.want {
			t.Errorf("%s: steps = %d, want %d", tt.name, n, tt.want)
		}
	}
}

func TestStepperReset(t *testing.T) {
	s := NewStepper(0.25, 1)
	s.Advance(0.2, func(float32) {})
	s.Reset()
	if s.Pending() != 0 {
		t.Errorf("Pending after Reset = %v, want 0", s.Pending())
	}
	if n := s.Advance(0.2, func(float32) {}); n != 0 {
		t.Errorf("steps after Reset = %d, want 0", n)
	}
}
