package silk

import (
	"encoding/json"
	"fmt"
	"log"
)

// scriptStep represents a single action in a scenario script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Name   string  `json:"name,omitempty"`
	On     bool    `json:"on,omitempty"`
	X      float32 `json:"x,omitempty"`
	Y      float32 `json:"y,omitempty"`
	FromX  float32 `json:"fromX,omitempty"`
	FromY  float32 `json:"fromY,omitempty"`
	ToX    float32 `json:"toX,omitempty"`
	ToY    float32 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure of a scenario.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot": true, "press": true, "move": true, "release": true,
	"drag": true, "look": true, "wait": true, "gust": true, "pause": true,
	"mode": true, "material": true, "reset": true, "focus": true,
}

// ScriptRunner sequences injected input, wind, material and render-mode
// changes and screenshots across frames for automated scenarios. Attach to an
// App via SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON scenario script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("silk: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("silk: parse script: no steps")
	}
	for i, st := range s.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("silk: parse script: step %d: unknown action %q", i, st.Action)
		}
		switch st.Action {
		case "mode":
			if _, ok := ParseRenderMode(st.Name); !ok {
				return nil, fmt.Errorf("silk: parse script: step %d: %w: render mode %q", i, ErrInvalidConfig, st.Name)
			}
		case "material":
			if _, err := MaterialByName(st.Name); err != nil {
				return nil, fmt.Errorf("silk: parse script: step %d: %w", i, err)
			}
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the app. The runner's step
// method is called from Update before input is processed each frame.
func (a *App) SetScriptRunner(runner *ScriptRunner) {
	a.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(a *App) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(a.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		a.Screenshot(st.Label)
	case "press":
		a.InjectPress(st.X, st.Y)
	case "move":
		a.InjectMove(st.X, st.Y)
	case "release":
		a.InjectRelease(st.X, st.Y)
	case "drag":
		a.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "look":
		a.InjectLook(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "gust":
		a.wind.SetGust(st.On)
	case "pause":
		a.wind.SetPaused(st.On)
	case "mode":
		mode, _ := ParseRenderMode(st.Name)
		a.SetRenderMode(mode)
	case "material":
		m, _ := MaterialByName(st.Name)
		if err := a.SetMaterial(m); err != nil {
			log.Printf("silk: script: %v", err)
		}
	case "reset":
		if err := a.Reset(); err != nil {
			log.Printf("silk: script: %v", err)
		}
	case "focus":
		a.focusHome()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(a.injectQueue) == 0 {
		r.done = true
	}
}
