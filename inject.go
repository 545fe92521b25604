package silk

// syntheticPointerEvent represents a single injected pointer event in
// screen coordinates, fed through the same state machine as the mouse.
type syntheticPointerEvent struct {
	screenX, screenY float32
	pressed          bool
	button           MouseButton
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next frame's input pass.
func (a *App) InjectPress(x, y float32) {
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectMove queues a move with the left button held. Use this between
// InjectPress and InjectRelease to drag a particle.
func (a *App) InjectMove(x, y float32) {
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (a *App) InjectRelease(x, y float32) {
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectLook queues a right-button drag from (fromX, fromY) to (toX, toY)
// over the given number of frames, rotating the camera.
func (a *App) InjectLook(fromX, fromY, toX, toY float32, frames int) {
	a.injectSequence(MouseButtonRight, fromX, fromY, toX, toY, frames)
}

// InjectDrag queues a full grab sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). Minimum frames is 2 (press + release).
func (a *App) InjectDrag(fromX, fromY, toX, toY float32, frames int) {
	a.injectSequence(MouseButtonLeft, fromX, fromY, toX, toY, frames)
}

func (a *App) injectSequence(button MouseButton, fromX, fromY, toX, toY float32, frames int) {
	if frames < 2 {
		frames = 2
	}
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{
		screenX: fromX, screenY: fromY, pressed: true, button: button,
	})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float32(i) / float32(steps+1)
		a.injectQueue = append(a.injectQueue, syntheticPointerEvent{
			screenX: fromX + (toX-fromX)*t,
			screenY: fromY + (toY-fromY)*t,
			pressed: true,
			button:  button,
		})
	}
	a.injectQueue = append(a.injectQueue, syntheticPointerEvent{
		screenX: toX, screenY: toY, pressed: false, button: button,
	})
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed (real mouse
// input should be skipped).
func (a *App) processInjectedInput() bool {
	if len(a.injectQueue) == 0 {
		return false
	}
	evt := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]

	a.processPointer(evt.screenX, evt.screenY, evt.pressed, evt.button, false)
	return true
}
