package glint

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to two properties of a registered sprite together.
// Create one with TweenPosition, TweenSize or TweenRotation and either call
// Update(dt) yourself or hand it to Renderer.AddTween. If the sprite is
// removed, the group stops immediately.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	apply  func(s *Sprite, v [2]float32)
	reg    *spriteRegistry
	sprite SpriteID
	Done   bool
}

// Update advances the tweens by dt seconds and writes the values to the
// sprite.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	s, ok := g.reg.get(g.sprite)
	if !ok {
		g.Done = true
		return
	}

	var vals [2]float32
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = val
		if !finished {
			allDone = false
		}
	}
	g.apply(s, vals)
	g.Done = allDone
}

func roundI32(v float32) int32 { return int32(math.Round(float64(v))) }

func roundU32(v float32) uint32 {
	if v <= 0 {
		return 0
	}
	return uint32(math.Round(float64(v)))
}

// TweenPosition moves sprite id to (toX, toY) over duration seconds. It
// returns nil if the sprite does not exist.
func (r *Renderer) TweenPosition(id SpriteID, toX, toY int32, duration float32, fn ease.TweenFunc) *TweenGroup {
	s, ok := r.sprites.get(id)
	if !ok {
		return nil
	}
	g := &TweenGroup{count: 2, reg: r.sprites, sprite: id}
	g.tweens[0] = gween.New(float32(s.x), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(s.y), float32(toY), duration, fn)
	g.apply = func(s *Sprite, v [2]float32) {
		s.SetPosition(roundI32(v[0]), roundI32(v[1]))
	}
	return g
}

// TweenSize resizes sprite id to toW×toH over duration seconds.
func (r *Renderer) TweenSize(id SpriteID, toW, toH uint32, duration float32, fn ease.TweenFunc) *TweenGroup {
	s, ok := r.sprites.get(id)
	if !ok {
		return nil
	}
	g := &TweenGroup{count: 2, reg: r.sprites, sprite: id}
	g.tweens[0] = gween.New(float32(s.width), float32(toW), duration, fn)
	g.tweens[1] = gween.New(float32(s.height), float32(toH), duration, fn)
	g.apply = func(s *Sprite, v [2]float32) {
		s.SetSize(roundU32(v[0]), roundU32(v[1]))
	}
	return g
}

// TweenRotation turns sprite id to radians over duration seconds.
func (r *Renderer) TweenRotation(id SpriteID, radians, duration float32, fn ease.TweenFunc) *TweenGroup {
	s, ok := r.sprites.get(id)
	if !ok {
		return nil
	}
	g := &TweenGroup{count: 1, reg: r.sprites, sprite: id}
	g.tweens[0] = gween.New(s.rotation, radians, duration, fn)
	g.apply = func(s *Sprite, v [2]float32) {
		s.SetRotation(v[0])
	}
	return g
}

// AddTween schedules g to be advanced by Update. Nil groups are ignored.
func (r *Renderer) AddTween(g *TweenGroup) {
	if g == nil || g.Done {
		return
	}
	r.tweens = append(r.tweens, g)
}

// Update advances every scheduled tween by dt seconds and drops finished
// ones.
func (r *Renderer) Update(dt float32) {
	live := r.tweens[:0]
	for _, g := range r.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(r.tweens[len(live):])
	r.tweens = live
}

// ActiveTweens returns the number of scheduled, unfinished tweens.
func (r *Renderer) ActiveTweens() int { return len(r.tweens) }
