package silk

import (
	"errors"
	"testing"
)

func TestLoadScript(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr error
		ok      bool
	}{
		{"valid", `{"steps":[{"action":"drag","fromX":1,"fromY":2,"toX":3,"toY":4,"frames":5},{"action":"screenshot","label":"end"}]}`, nil, true},
		{"invalid json", `{"steps":[`, nil, false},
		{"no steps", `{"steps":[]}`, nil, false},
		{"unknown action", `{"steps":[{"action":"explode"}]}`, nil, false},
		{"bad mode", `{"steps":[{"action":"mode","name":"solid"}]}`, ErrInvalidConfig, false},
		{"bad material", `{"steps":[{"action":"material","name":"wool"}]}`, ErrUnknownMaterial, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := LoadScript([]byte(tt.json))
			if tt.ok {
				if err != nil {
					t.Fatalf("LoadScript: %v", err)
				}
				if r.Done() {
					t.Error("fresh runner reports done")
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func runScript(t *testing.T, a *App, src string, maxFrames int) int {
	t.Helper()
	r, err := LoadScript([]byte(src))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	a.SetScriptRunner(r)
	for i := 1; i <= maxFrames; i++ {
		runFrames(t, a, 1)
		if r.Done() {
			return i
		}
	}
	t.Fatalf("script not done after %d frames", maxFrames)
	return 0
}

func TestScriptRunnerActions(t *testing.T) {
	a := newTestApp(t)
	frames := runScript(t, a, `{"steps":[
		{"action":"mode","name":"points"},
		{"action":"material","name":"denim"},
		{"action":"gust","on":true},
		{"action":"wait","frames":3},
		{"action":"screenshot","label":"after gust"}
	]}`, 50)

	// One frame per action, plus two extra for the wait.
	if frames != 7 {
		t.Errorf("finished after %d frames, want 7", frames)
	}
	if a.RenderMode() != RenderPoints {
		t.Errorf("mode = %s, want Points", a.RenderMode())
	}
	if a.Material().Name != "denim" {
		t.Errorf("material = %q, want denim", a.Material().Name)
	}
	if !a.Wind().Gusting() {
		t.Error("gust not started")
	}
	if len(a.screenshotQueue) != 1 || a.screenshotQueue[0] != "after gust" {
		t.Errorf("screenshot queue = %q", a.screenshotQueue)
	}
}

func TestScriptRunnerWaitsForInjection(t *testing.T) {
	a := newTestApp(t)
	a.Wind().SetPaused(true)
	frames := runScript(t, a, `{"steps":[
		{"action":"look","fromX":400,"fromY":300,"toX":450,"toY":300,"frames":4},
		{"action":"pause","on":false}
	]}`, 50)

	// The pause step runs only after the four look events drained.
	if frames < 5 {
		t.Errorf("finished after %d frames, want at least 5", frames)
	}
	if a.Wind().Paused() {
		t.Error("pause step did not run")
	}
	if a.Camera().Yaw <= DefaultCameraConfig().Yaw {
		t.Errorf("yaw = %v, want increased by look", a.Camera().Yaw)
	}
}

func TestScriptRunnerResetAndFocus(t *testing.T) {
	a := newTestApp(t)
	a.Camera().Move(1, 0, 1)
	old := a.Cloth()
	runScript(t, a, `{"steps":[{"action":"reset"},{"action":"focus"}]}`, 10)
	if a.Cloth() == old {
		t.Error("reset did not rebuild the cloth")
	}
	if !a.Camera().Focusing() {
		t.Error("focus did not start")
	}
}
