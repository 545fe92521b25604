// Package silk is a real-time cloth simulator for [Ebitengine].
//
// A [Cloth] is a rectangular grid of particles joined by structural, shear
// and bending distance constraints. Each physics tick applies gravity and an
// optional wind force, integrates with Verlet, relaxes every constraint a
// fixed number of times (position-based dynamics) and rebuilds per-vertex
// normals and tangents for shading.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := silk.DefaultConfig()
//	if err := silk.Run(cfg, silk.RunConfig{}); err != nil {
//		log.Fatal(err)
//	}
//
// The simulation core has no rendering dependencies and can be stepped
// headless:
//
//	cloth, err := silk.NewCloth(silk.DefaultClothConfig())
//	if err != nil {
//		return err
//	}
//	stepper := silk.NewStepper(silk.DefaultPhysicsStep, silk.DefaultMaxFrame)
//	stepper.Advance(frameTime, func(dt float32) {
//		cloth.Step(dt, wind)
//	})
//
// # Materials
//
// [Material] bundles per-kind stiffness, damping, particle mass and color.
// [Silk], [Cotton] and [Denim] are the built-in presets; switching material
// rebuilds the cloth.
//
// # Interaction
//
// [App] implements [ebiten.Game]. The left mouse button grabs the nearest
// particle within [DefaultPickThreshold] pixels and drags it along the
// cursor ray at its original view depth. The right button rotates the
// [Camera]; WASD flies it. Synthetic pointer events ([App.InjectPress],
// [App.InjectDrag]) and JSON scripts ([LoadScript]) drive the same input
// path for automated scenarios, and [App.Screenshot] captures PNG frames.
//
// # Configuration
//
// [LoadConfig] reads TOML or YAML files on top of [DefaultConfig]; a preset
// key selects a material whose coefficients the file may then override.
//
// # ECS integration
//
// The silk/ecs submodule stores cloths as [Donburi] components, steps them
// from a system and forwards grab events through an [EventSink].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package silk
