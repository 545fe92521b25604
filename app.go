package silk

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// focusDuration is the camera ease time of the focus key.
const focusDuration = 0.6

// EventSink is the interface for optional ECS integration. When set on an
// App, grab/drag/release events are forwarded to it.
type EventSink interface {
	EmitEvent(event GrabEvent)
}

// GrabEvent carries a particle interaction for the ECS bridge.
type GrabEvent struct {
	Type     EventType
	Index    int
	Position mgl32.Vec3
	ScreenX  float32
	ScreenY  float32
}

// App is the interactive cloth demo. It owns the cloth and every piece of
// interaction state (camera, grab, wind, render mode) and implements
// ebiten.Game. Each Update polls input, then steps physics; Draw only reads.
type App struct {
	cfg      Config
	cloth    *Cloth
	camera   *Camera
	stepper  *Stepper
	wind     *Wind
	grabber  *Grabber
	shader   Shader
	mode     RenderMode
	material Material

	sink    EventSink
	debug   bool
	showHUD bool

	// ScreenshotDir is the directory screenshots are written to.
	ScreenshotDir string

	pointer         pointerState
	injectQueue     []syntheticPointerEvent
	runner          *ScriptRunner
	screenshotQueue []string

	renderer renderer
	stats    debugStats
	frame    uint64
}

// NewApp validates cfg and builds the cloth, camera and wind it describes.
func NewApp(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cloth, err := NewCloth(cfg.Cloth)
	if err != nil {
		return nil, err
	}
	mode, _ := ParseRenderMode(cfg.Window.RenderMode)

	wind := NewWind()
	if cfg.Wind.GustPower > 0 {
		wind.GustPower = cfg.Wind.GustPower
	}
	if cfg.Wind.GustDuration > 0 {
		wind.GustDuration = cfg.Wind.GustDuration
	}
	wind.SetPaused(cfg.Wind.Paused)

	cam := NewCamera(cfg.Camera, cfg.Window.Width, cfg.Window.Height)

	a := &App{
		cfg:           cfg,
		cloth:         cloth,
		camera:        cam,
		stepper:       NewStepper(cfg.Sim.PhysicsStep, cfg.Sim.MaxFrame),
		wind:          wind,
		grabber:       NewGrabber(),
		mode:          mode,
		material:      cfg.Cloth.Material,
		showHUD:       cfg.Window.ShowHUD,
		ScreenshotDir: cfg.Window.ScreenshotDir,
	}
	a.shader = Shader{LightPos: DefaultLightPos, Base: a.material.Color.Vec3()}
	a.SetDebugMode(cfg.Window.Debug)
	return a, nil
}

// Cloth returns the simulated cloth.
func (a *App) Cloth() *Cloth { return a.cloth }

// Camera returns the view camera.
func (a *App) Camera() *Camera { return a.camera }

// Wind returns the wind source.
func (a *App) Wind() *Wind { return a.wind }

// Grabber returns the pointer grab state.
func (a *App) Grabber() *Grabber { return a.grabber }

// RenderMode returns the current render mode.
func (a *App) RenderMode() RenderMode { return a.mode }

// Material returns the material the cloth was last built with.
func (a *App) Material() Material { return a.material }

// SetEventSink sets the optional ECS bridge.
func (a *App) SetEventSink(sink EventSink) {
	a.sink = sink
}

// SetDebugMode enables per-frame timing stats on stderr.
func (a *App) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// SetRenderMode switches the draw interpretation of the cloth.
func (a *App) SetRenderMode(mode RenderMode) {
	if mode == a.mode {
		return
	}
	a.mode = mode
	log.Printf("silk: render mode: %s", mode)
}

// SetMaterial rebuilds the cloth with m, keeping every other cloth setting.
// Any held particle is dropped.
func (a *App) SetMaterial(m Material) error {
	cfg := a.cfg.Cloth
	cfg.Material = m
	cloth, err := NewCloth(cfg)
	if err != nil {
		return fmt.Errorf("silk: set material %q: %w", m.Name, err)
	}
	a.replaceCloth(cloth)
	a.cfg.Cloth = cfg
	a.material = m
	a.shader.Base = m.Color.Vec3()
	log.Printf("silk: material: %s", m.Name)
	return nil
}

// Reset rebuilds the cloth in its rest pose. On error the current cloth is
// kept.
func (a *App) Reset() error {
	cloth, err := NewCloth(a.cfg.Cloth)
	if err != nil {
		return fmt.Errorf("silk: reset: %w", err)
	}
	a.replaceCloth(cloth)
	return nil
}

func (a *App) replaceCloth(cloth *Cloth) {
	if a.grabber.Active() {
		a.emit(EventRelease, a.grabber.Index(), mgl32.Vec3{}, a.pointer.x, a.pointer.y)
	}
	a.grabber.Reset()
	a.cloth = cloth
	a.stepper.Reset()
	a.renderer.invalidate()
}

// Update implements ebiten.Game: scripted steps, input, camera, wind, then
// fixed-step physics.
func (a *App) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	return a.update(dt, true)
}

// update is Update with an explicit frame time. When live is false no
// device input is read; only injected events and scripts drive the app.
func (a *App) update(dt float32, live bool) error {
	a.frame++
	if a.runner != nil {
		a.runner.step(a)
	}

	if live {
		keys := readKeys()
		if keys.quit {
			return ebiten.Termination
		}
		a.applyKeys(keys, dt)
	}
	a.processInput(live)

	a.camera.update(dt)
	a.wind.Update(dt)
	wind := a.wind.Vector()

	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}
	a.stats.steps = a.stepper.Advance(dt, func(h float32) {
		a.cloth.Step(h, wind)
	})
	if a.debug {
		a.stats.stepTime = time.Since(t0)
		debugCheckCloth(a.cloth)
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)

	var t0 time.Time
	if a.debug {
		t0 = time.Now()
	}
	a.stats.drawn = a.renderer.draw(screen, a.cloth, a.camera, &a.shader, a.mode, a.material.Color)
	if a.debug {
		a.stats.renderTime = time.Since(t0)
		a.stats.triangles = a.cloth.TriangleCount()
		a.debugLog(a.stats)
	}

	if a.showHUD {
		a.drawHUD(screen)
	}
	a.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The camera viewport follows the window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.camera.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (a *App) emit(t EventType, idx int, pos mgl32.Vec3, sx, sy float32) {
	if a.sink == nil {
		return
	}
	a.sink.EmitEvent(GrabEvent{Type: t, Index: idx, Position: pos, ScreenX: sx, ScreenY: sy})
}

// focusHome eases the camera back to its configured pose.
func (a *App) focusHome() {
	a.camera.FocusHome(focusDuration, ease.InOutCubic)
}

// RunConfig holds optional parameters for Run.
type RunConfig struct {
	// Script, when set, is attached before the first frame.
	Script *ScriptRunner
	// EventSink, when set, receives grab events.
	EventSink EventSink
}

// Run opens a window and runs the cloth demo until it is closed or ESC is
// pressed.
func Run(cfg Config, opts RunConfig) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	if opts.Script != nil {
		app.SetScriptRunner(opts.Script)
	}
	if opts.EventSink != nil {
		app.SetEventSink(opts.EventSink)
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(app)
}
