// Package ecs provides ECS adapters for silk.
//
// [Cloth] stores a simulated cloth as a [Donburi] component and [StepCloths]
// advances every such entity on its own fixed-step accumulator.
// [NewDonburiSink] bridges grab, drag and release events from an App into
// the world as typed events; subscribe to [GrabEventType] to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	app.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
