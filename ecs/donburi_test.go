package ecs

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/phanxgames/silk"

	"github.com/yohamta/donburi"
)

func smallCloth() silk.ClothConfig {
	cfg := silk.DefaultClothConfig()
	cfg.Width = 5
	cfg.Height = 5
	return cfg
}

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []silk.GrabEvent
	GrabEventType.Subscribe(world, func(w donburi.World, e silk.GrabEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(silk.GrabEvent{
		Type:     silk.EventGrab,
		Index:    12,
		Position: mgl32.Vec3{1, 2, 3},
		ScreenX:  100,
		ScreenY:  200,
	})
	sink.EmitEvent(silk.GrabEvent{Type: silk.EventRelease, Index: 12})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	GrabEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != silk.EventGrab || e0.Index != 12 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.ScreenX != 100 || e0.ScreenY != 200 {
		t.Errorf("event 0 screen: (%v,%v)", e0.ScreenX, e0.ScreenY)
	}
	if e0.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("event 0 position: %v", e0.Position)
	}
	if received[1].Type != silk.EventRelease {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestNewClothEntity(t *testing.T) {
	world := donburi.NewWorld()
	e, err := NewClothEntity(world, smallCloth())
	if err != nil {
		t.Fatalf("NewClothEntity: %v", err)
	}
	entry := world.Entry(e)
	if !entry.HasComponent(Cloth) {
		t.Fatal("entity missing Cloth component")
	}
	data := Cloth.Get(entry)
	if data.Cloth == nil || data.Cloth.Len() != 25 {
		t.Fatalf("cloth not built: %+v", data)
	}
}

func TestNewClothEntity_InvalidConfig(t *testing.T) {
	world := donburi.NewWorld()
	cfg := smallCloth()
	cfg.Width = 0
	if _, err := NewClothEntity(world, cfg); !errors.Is(err, silk.ErrInvalidDimensions) {
		t.Fatalf("err = %v, want ErrInvalidDimensions", err)
	}
	if n := world.Len(); n != 0 {
		t.Errorf("world has %d entities after failed create", n)
	}
}

func TestStepCloths(t *testing.T) {
	world := donburi.NewWorld()
	e1, err := NewClothEntity(world, smallCloth())
	if err != nil {
		t.Fatal(err)
	}
	e2, err := NewClothEntity(world, smallCloth())
	if err != nil {
		t.Fatal(err)
	}

	c1 := Cloth.Get(world.Entry(e1)).Cloth
	startY := c1.Particle(0).Position.Y()

	// 0.05s at the default 0.01s step is 5 ticks per cloth.
	ticks := StepCloths(world, 0.05)
	if ticks < 8 || ticks > 10 {
		t.Errorf("ticks = %d, want about 10", ticks)
	}
	if c1.Particle(0).Position.Y() >= startY {
		t.Error("free bottom-row particle did not fall")
	}

	c2 := Cloth.Get(world.Entry(e2)).Cloth
	if c2.Particle(0).Position != c1.Particle(0).Position {
		t.Error("identical cloths diverged")
	}
}

func TestStepCloths_Wind(t *testing.T) {
	world := donburi.NewWorld()
	e, err := NewClothEntity(world, smallCloth())
	if err != nil {
		t.Fatal(err)
	}
	data := Cloth.Get(world.Entry(e))
	data.Wind = mgl32.Vec3{0, 0, -5}

	for range 100 {
		StepCloths(world, 1.0/60)
	}
	if z := data.Cloth.Particle(0).Position.Z(); z >= 0 {
		t.Errorf("bottom corner z = %v, want pushed along -z", z)
	}
}
