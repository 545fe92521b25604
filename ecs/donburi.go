package ecs

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/phanxgames/silk"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// GrabEventType is the Donburi event type for particle grab events.
// Subscribe to this in your ECS systems to receive grab, drag and release.
var GrabEventType = events.NewEventType[silk.GrabEvent]()

// ClothData is the per-entity simulation state. Each entity owns its own
// fixed-step accumulator so cloths advance independently of the frame rate.
type ClothData struct {
	Cloth   *silk.Cloth
	Stepper *silk.Stepper
	Wind    mgl32.Vec3
}

// Cloth is the component holding a simulated cloth.
var Cloth = donburi.NewComponentType[ClothData]()

var clothQuery = donburi.NewQuery(filter.Contains(Cloth))

// NewClothEntity builds a cloth from cfg and attaches it to a new entity.
func NewClothEntity(world donburi.World, cfg silk.ClothConfig) (donburi.Entity, error) {
	c, err := silk.NewCloth(cfg)
	if err != nil {
		return donburi.Null, err
	}
	e := world.Create(Cloth)
	Cloth.SetValue(world.Entry(e), ClothData{
		Cloth:   c,
		Stepper: silk.NewStepper(silk.DefaultPhysicsStep, silk.DefaultMaxFrame),
	})
	return e, nil
}

// StepCloths advances every cloth in world by elapsed seconds of wall time
// and returns the total number of physics ticks run.
func StepCloths(world donburi.World, elapsed float32) int {
	ticks := 0
	clothQuery.Each(world, func(entry *donburi.Entry) {
		data := Cloth.Get(entry)
		if data.Cloth == nil {
			return
		}
		if data.Stepper == nil {
			data.Stepper = silk.NewStepper(silk.DefaultPhysicsStep, silk.DefaultMaxFrame)
		}
		wind := data.Wind
		ticks += data.Stepper.Advance(elapsed, func(dt float32) {
			data.Cloth.Step(dt, wind)
		})
	})
	return ticks
}

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Grab events are published to GrabEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) silk.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event silk.GrabEvent) {
	GrabEventType.Publish(s.world, event)
}
