package glint

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	r, _, _ := newTestRenderer(t, testConfig())
	id := r.AddSprite(1, 0, 10, 20, 0, 8, 8, r.DefaultShader())

	g := r.TweenPosition(id, 100, 200, 1.0, ease.Linear)
	g.Update(0.5)
	s, _ := r.Sprite(id)
	if x, y := s.Position(); x != 55 || y != 110 {
		t.Errorf("halfway position = (%d, %d), want (55, 110)", x, y)
	}
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if x, y := s.Position(); x != 100 || y != 200 {
		t.Errorf("position = (%d, %d), want (100, 200)", x, y)
	}
}

func TestTweenSizeReachesTarget(t *testing.T) {
	r, _, _ := newTestRenderer(t, testConfig())
	id := r.AddSprite(1, 0, 0, 0, 0, 10, 10, r.DefaultShader())

	g := r.TweenSize(id, 40, 20, 0.5, ease.Linear)
	g.Update(0.25)
	g.Update(0.25)

	s, _ := r.Sprite(id)
	if w, h := s.Size(); w != 40 || h != 20 {
		t.Errorf("size = %dx%d, want 40x20", w, h)
	}
}

func TestTweenRotation(t *testing.T) {
	r, _, _ := newTestRenderer(t, testConfig())
	id := r.AddSprite(1, 0, 0, 0, 0, 10, 10, r.DefaultShader())

	g := r.TweenRotation(id, math.Pi, 1, ease.Linear)
	g.Update(1)
	s, _ := r.Sprite(id)
	if !near(s.Rotation(), math.Pi) {
		t.Errorf("rotation = %v, want pi", s.Rotation())
	}
}

func TestTweenUnknownSprite(t *testing.T) {
	r, _, _ := newTestRenderer(t, testConfig())
	if g := r.TweenPosition(42, 0, 0, 1, ease.Linear); g != nil {
		t.Error("tween of a missing sprite should be nil")
	}
	r.AddTween(nil)
	if r.ActiveTweens() != 0 {
		t.Error("nil tween should not be scheduled")
	}
}

func TestTweenStopsWhenSpriteRemoved(t *testing.T) {
	r, _, _ := newTestRenderer(t, testConfig())
	id := r.AddSprite(1, 0, 0, 0, 0, 10, 10, r.DefaultShader())
	g := r.TweenPosition(id, 100, 100, 1, ease.Linear)
	r.RemoveSprite(id)
	g.Update(0.1)
	if !g.Done {
		t.Error("tween should finish once its sprite is gone")
	}
}

func TestRendererUpdateDropsFinishedTweens(t *testing.T) {
	r, _, _ := newTestRenderer(t, testConfig())
	a := r.AddSprite(1, 0, 0, 0, 0, 10, 10, r.DefaultShader())
	b := r.AddSprite(1, 0, 0, 0, 0, 10, 10, r.DefaultShader())
	r.AddTween(r.TweenPosition(a, 10, 0, 0.5, ease.Linear))
	r.AddTween(r.TweenPosition(b, 10, 0, 2, ease.OutQuad))

	r.Update(0.5)
	if r.ActiveTweens() != 1 {
		t.Fatalf("active tweens = %d, want 1", r.ActiveTweens())
	}
	r.Update(1.5)
	if r.ActiveTweens() != 0 {
		t.Errorf("active tweens = %d, want 0", r.ActiveTweens())
	}
	s, _ := r.Sprite(b)
	if s.X() != 10 {
		t.Errorf("X = %d, want 10", s.X())
	}
}
