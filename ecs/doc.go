// Package ecs connects glint sprites to a [Donburi] world.
//
// Entities carry a [SpriteComponent] describing where and how their sprite
// is drawn. [Spawn] registers the sprite with the renderer, [Sync] copies
// component state into the renderer once per frame, and [Despawn] removes
// both. Entities whose sprite disappeared from the renderer are reported
// through [SpriteLostEventType].
//
// Usage:
//
//	e := ecs.Spawn(world, r, ecs.SpriteData{Sheet: sheet, Width: 32, Height: 32, Shader: r.DefaultShader()})
//	...
//	ecs.Sync(world, r)
//	r.DrawFrame()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
