package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/glint"
)

// SpriteData is the ECS view of a glint sprite. ID is filled in by Spawn.
type SpriteData struct {
	ID            glint.SpriteID
	Sheet         glint.SpriteSheetID
	Index         int
	X, Y          int32
	Width, Height uint32
	Layer         int32
	Rotation      float32
	Flip          glint.Flip
	Shader        glint.ShaderID
}

// SpriteComponent holds an entity's sprite.
var SpriteComponent = donburi.NewComponentType[SpriteData]()

// SpriteLost is published when Sync finds an entity whose sprite is no longer
// registered with the renderer.
type SpriteLost struct {
	Entity donburi.Entity
	Sprite glint.SpriteID
}

// SpriteLostEventType queues SpriteLost events. Call ProcessEvents on it to
// deliver them to subscribers.
var SpriteLostEventType = events.NewEventType[SpriteLost]()

// Spawn registers a sprite built from data and creates an entity carrying it.
func Spawn(world donburi.World, r *glint.Renderer, data SpriteData) donburi.Entity {
	data.ID = r.AddSprite(data.Sheet, data.Index, data.X, data.Y, data.Layer, data.Width, data.Height, data.Shader)
	if s, ok := r.Sprite(data.ID); ok {
		s.SetRotation(data.Rotation)
		s.SetFlip(data.Flip)
	}
	e := world.Create(SpriteComponent)
	SpriteComponent.SetValue(world.Entry(e), data)
	return e
}

// Despawn removes the entity and its sprite. Unknown entities are ignored.
func Despawn(world donburi.World, r *glint.Renderer, e donburi.Entity) {
	if !world.Valid(e) {
		return
	}
	entry := world.Entry(e)
	if entry.HasComponent(SpriteComponent) {
		r.RemoveSprite(SpriteComponent.Get(entry).ID)
	}
	world.Remove(e)
}

// Sync writes every SpriteComponent into the renderer's registry.
func Sync(world donburi.World, r *glint.Renderer) {
	SpriteComponent.Each(world, func(entry *donburi.Entry) {
		d := SpriteComponent.Get(entry)
		s, ok := r.Sprite(d.ID)
		if !ok {
			SpriteLostEventType.Publish(world, SpriteLost{Entity: entry.Entity(), Sprite: d.ID})
			return
		}
		s.SetPosition(d.X, d.Y)
		s.SetSize(d.Width, d.Height)
		s.SetLayer(d.Layer)
		s.SetRotation(d.Rotation)
		s.SetFlip(d.Flip)
		s.SetShader(d.Shader)
		s.SetTexture(d.Sheet, d.Index)
	})
}
