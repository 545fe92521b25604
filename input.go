package silk

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Per-pointer state ---

type pointerState struct {
	down    bool
	button  MouseButton
	x, y    float32
	lastX   float32
	lastY   float32
	looking bool
}

// --- Keyboard ---

// keyState is one frame of keyboard input.
type keyState struct {
	forward, right float32
	gustOn         bool
	gustOff        bool
	cycleMode      bool
	toggleHUD      bool
	pauseWind      bool
	focus          bool
	reset          bool
	quit           bool
	material       int // index into Materials, -1 for none
}

var materialKeys = [...]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// readKeys reads the current keyboard state.
func readKeys() keyState {
	k := keyState{material: -1}
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		k.forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		k.forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		k.right++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		k.right--
	}
	k.gustOn = inpututil.IsKeyJustPressed(ebiten.KeyG)
	k.gustOff = inpututil.IsKeyJustReleased(ebiten.KeyG)
	k.cycleMode = inpututil.IsKeyJustPressed(ebiten.KeyM)
	k.toggleHUD = inpututil.IsKeyJustPressed(ebiten.KeyH)
	k.pauseWind = inpututil.IsKeyJustPressed(ebiten.KeyP)
	k.focus = inpututil.IsKeyJustPressed(ebiten.KeyF)
	k.reset = inpututil.IsKeyJustPressed(ebiten.KeyR)
	k.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	for i, key := range materialKeys {
		if i < len(Materials) && inpututil.IsKeyJustPressed(key) {
			k.material = i
		}
	}
	return k
}

// applyKeys acts on one frame of keyboard input. Camera flight is disabled
// while looking or grabbing.
func (a *App) applyKeys(k keyState, dt float32) {
	if !a.pointer.looking && !a.grabber.Active() {
		a.camera.Move(k.forward, k.right, dt)
	}
	// A gust blows while G is held.
	if k.gustOn {
		a.wind.SetGust(true)
	} else if k.gustOff {
		a.wind.SetGust(false)
	}
	if k.pauseWind {
		a.wind.SetPaused(!a.wind.Paused())
	}
	if k.cycleMode {
		a.SetRenderMode(a.mode.Next())
	}
	if k.toggleHUD {
		a.showHUD = !a.showHUD
	}
	if k.focus {
		a.focusHome()
	}
	if k.material >= 0 {
		if err := a.SetMaterial(Materials[k.material]); err != nil {
			log.Printf("silk: %v", err)
		}
	} else if k.reset {
		if err := a.Reset(); err != nil {
			log.Printf("silk: %v", err)
		}
	}
}

// --- Pointer ---

// processInput handles one pointer event per frame: a queued synthetic
// event if there is one, otherwise the real mouse when live.
func (a *App) processInput(live bool) {
	if a.processInjectedInput() {
		return
	}
	if !live {
		return
	}
	mx, my := ebiten.CursorPosition()

	// While held, keep the button that started the interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if left || right {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else {
			button = MouseButtonRight
		}
	}
	a.processPointer(float32(mx), float32(my), pressed, button, true)
}

// processPointer runs the pointer state machine. The left button grabs and
// drags particles; the right button looks around. capture controls whether
// the OS cursor is captured while looking.
func (a *App) processPointer(sx, sy float32, pressed bool, button MouseButton, capture bool) {
	ps := &a.pointer

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.lastX, ps.lastY = sx, sy
		switch button {
		case MouseButtonLeft:
			if idx := a.grabber.Begin(a.cloth, a.camera, sx, sy); idx >= 0 {
				a.emit(EventGrab, idx, a.cloth.Particle(idx).Position, sx, sy)
			}
		case MouseButtonRight:
			ps.looking = true
			if capture {
				ebiten.SetCursorMode(ebiten.CursorModeCaptured)
			}
		}

	case !pressed && ps.down:
		if ps.button == MouseButtonLeft {
			if idx := a.grabber.End(a.cloth); idx >= 0 {
				a.emit(EventRelease, idx, a.cloth.Particle(idx).Position, sx, sy)
			}
		}
		if ps.looking {
			ps.looking = false
			if capture {
				ebiten.SetCursorMode(ebiten.CursorModeVisible)
			}
		}
		ps.down = false

	case pressed && ps.down:
		if sx != ps.lastX || sy != ps.lastY {
			if ps.looking {
				// Screen y grows downward; moving up looks up.
				a.camera.Rotate(sx-ps.lastX, ps.lastY-sy)
			} else if ps.button == MouseButtonLeft {
				if pos, ok := a.grabber.Drag(a.cloth, a.camera, sx, sy); ok {
					a.emit(EventDrag, a.grabber.Index(), pos, sx, sy)
				}
			}
		}
		ps.lastX, ps.lastY = sx, sy
	}

	ps.x, ps.y = sx, sy
}
