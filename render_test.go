package glint

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

func TestDrawFrameSingleBatch(t *testing.T) {
	r, dev, win := newTestRenderer(t, testConfig())
	sheet, err := r.AddSpriteSheet(testImage(64, 64), 32, 32)
	if err != nil {
		t.Fatal(err)
	}
	const n = 5
	for i := 0; i < n; i++ {
		r.AddSprite(sheet, i%4, int32(i*10), 0, 0, 10, 10, r.DefaultShader())
	}
	r.DrawFrame()
	assertNoDeviceErrors(t, dev)

	if len(dev.draws) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(dev.draws))
	}
	d := dev.draws[0]
	if d.count != 6*n {
		t.Errorf("index count = %d, want %d", d.count, 6*n)
	}
	indices := DecodeUint32s(d.indices, 6*n)
	seen := make(map[uint32]int)
	for q := 0; q < n; q++ {
		quad := indices[q*6 : q*6+6]
		base := uint32(4 * q)
		want := []uint32{base, base + 1, base + 2, base + 2, base + 1, base + 3}
		for i := range want {
			if quad[i] != want[i] {
				t.Fatalf("quad %d indices = %v, want %v", q, quad, want)
			}
		}
		for _, idx := range quad {
			seen[idx]++
		}
	}
	if len(seen) != 4*n {
		t.Errorf("%d distinct vertices, want %d", len(seen), 4*n)
	}
	if d.textures[0] != uint32(sheet) {
		t.Errorf("bound texture = %d, want %d", d.textures[0], sheet)
	}
	if win.swaps != 1 {
		t.Errorf("swaps = %d, want 1", win.swaps)
	}
	if len(dev.clears) != 1 || dev.clears[0] != ColorBlack {
		t.Errorf("clears = %v, want one black clear", dev.clears)
	}

	st := r.Stats()
	if st.Sprites != n || st.Batches != 1 || st.DrawCalls != 1 || st.Skipped != 0 {
		t.Errorf("stats = %+v", st)
	}
}

func TestDrawFrameVertexData(t *testing.T) {
	r, dev, _ := newTestRenderer(t, testConfig())
	sheet, err := r.AddSpriteSheet(testImage(64, 64), 32, 32)
	if err != nil {
		t.Fatal(err)
	}
	r.AddSprite(sheet, 1, 400, 300, 0, 200, 150, r.DefaultShader())
	r.DrawFrame()

	d := dev.draws[0]
	assertVec2Near(t, "bottom-left position", d.vec2(16, 0, 0), [2]float32{0, 0})
	assertVec2Near(t, "top-right position", d.vec2(16, 3, 0), [2]float32{0.5, 0.5})
	assertVec2Near(t, "bottom-left uv", d.vec2(16, 0, 8), [2]float32{0.5, 0.5})
	assertVec2Near(t, "top-right uv", d.vec2(16, 3, 8), [2]float32{1, 0})
}

func TestDrawFrameLayerOrder(t *testing.T) {
	r, dev, _ := newTestRenderer(t, testConfig())
	sheet, err := r.AddSpriteSheet(testImage(32, 32), 32, 32)
	if err != nil {
		t.Fatal(err)
	}
	// Added high layer first; it must still draw last.
	r.AddSprite(sheet, 0, 400, 0, 5, 10, 10, r.DefaultShader())
	r.AddSprite(sheet, 0, 0, 0, -2, 10, 10, r.DefaultShader())
	r.DrawFrame()

	if len(dev.draws) != 2 {
		t.Fatalf("draw calls = %d, want 2", len(dev.draws))
	}
	first := dev.draws[0].vec2(16, 0, 0)
	second := dev.draws[1].vec2(16, 0, 0)
	if first[0] != -1 || second[0] != 0 {
		t.Errorf("first draw x = %v, second draw x = %v; lower layer should draw first", first[0], second[0])
	}
}

func TestDrawFrameBatchesByShaderAndSheet(t *testing.T) {
	r, dev, _ := newTestRenderer(t, testConfig())
	a, _ := r.AddSpriteSheet(testImage(32, 32), 32, 32)
	b, _ := r.AddSpriteSheet(testImage(32, 32), 32, 32)
	custom, err := r.AddShaderProgram("vs", "fs", vec2Attrs(), []Uniform{SpriteSheetTextureUniform("tex")})
	if err != nil {
		t.Fatal(err)
	}
	r.AddSprite(a, 0, 0, 0, 0, 1, 1, r.DefaultShader())
	r.AddSprite(b, 0, 0, 0, 0, 1, 1, r.DefaultShader())
	r.AddSprite(a, 0, 0, 0, 0, 1, 1, custom)
	r.AddSprite(a, 0, 0, 0, 0, 1, 1, r.DefaultShader())
	r.DrawFrame()

	if len(dev.draws) != 3 {
		t.Fatalf("draw calls = %d, want 3", len(dev.draws))
	}
	if dev.draws[0].count != 12 || dev.draws[0].textures[0] != uint32(a) {
		t.Errorf("first batch = %d indices on texture %d, want 12 on %d", dev.draws[0].count, dev.draws[0].textures[0], a)
	}
	if dev.draws[1].textures[0] != uint32(b) {
		t.Errorf("second batch texture = %d, want %d", dev.draws[1].textures[0], b)
	}
	if dev.draws[2].program != uint32(custom) {
		t.Errorf("third batch program = %d, want %d", dev.draws[2].program, custom)
	}
}

func TestDrawFrameSplitsAtCapacity(t *testing.T) {
	cfg := testConfig()
	cfg.BatchCapacity = 2
	r, dev, _ := newTestRenderer(t, cfg)
	sheet, _ := r.AddSpriteSheet(testImage(32, 32), 32, 32)
	for i := 0; i < 5; i++ {
		r.AddSprite(sheet, 0, 0, 0, 0, 1, 1, r.DefaultShader())
	}
	r.DrawFrame()
	assertNoDeviceErrors(t, dev)

	if len(dev.draws) != 3 {
		t.Fatalf("draw calls = %d, want 3", len(dev.draws))
	}
	counts := []int{dev.draws[0].count, dev.draws[1].count, dev.draws[2].count}
	if counts[0] != 12 || counts[1] != 12 || counts[2] != 6 {
		t.Errorf("index counts = %v, want [12 12 6]", counts)
	}
	if st := r.Stats(); st.Batches != 1 || st.DrawCalls != 3 {
		t.Errorf("stats = %+v, want 1 batch in 3 draw calls", st)
	}
}

func TestDrawFrameRemovedSheet(t *testing.T) {
	logs := captureLog(t)
	r, dev, _ := newTestRenderer(t, testConfig())
	keep, _ := r.AddSpriteSheet(testImage(32, 32), 32, 32)
	gone, _ := r.AddSpriteSheet(testImage(32, 32), 32, 32)
	r.AddSprite(keep, 0, 0, 0, 0, 1, 1, r.DefaultShader())
	orphan := r.AddSprite(gone, 0, 0, 0, 0, 1, 1, r.DefaultShader())
	r.RemoveSpriteSheet(gone)

	r.DrawFrame()
	r.DrawFrame()

	if len(dev.draws) != 2 {
		t.Fatalf("draw calls = %d, want one per frame", len(dev.draws))
	}
	if dev.draws[0].count != 6 {
		t.Errorf("index count = %d, want 6", dev.draws[0].count)
	}
	if st := r.Stats(); st.Skipped != 1 || st.Sprites != 1 {
		t.Errorf("stats = %+v, want 1 drawn 1 skipped", st)
	}
	if got := strings.Count(logs.String(), "sprite sheet"); got != 1 {
		t.Errorf("missing sheet logged %d times, want once:\n%s", got, logs)
	}
	if _, ok := r.Sprite(orphan); !ok {
		t.Error("skipped sprite should stay registered")
	}
}

func TestDrawFrameMissingShaderAndIndex(t *testing.T) {
	logs := captureLog(t)
	r, dev, _ := newTestRenderer(t, testConfig())
	sheet, _ := r.AddSpriteSheet(testImage(32, 32), 32, 32)
	r.AddSprite(sheet, 0, 0, 0, 0, 1, 1, 999)
	r.AddSprite(sheet, 7, 0, 0, 0, 1, 1, r.DefaultShader())
	r.DrawFrame()

	if len(dev.draws) != 0 {
		t.Errorf("draw calls = %d, want 0", len(dev.draws))
	}
	out := logs.String()
	if !strings.Contains(out, "missing shader 999") || !strings.Contains(out, "missing sheet index 7") {
		t.Errorf("log = %q", out)
	}
}

func TestDrawFrameEmpty(t *testing.T) {
	r, dev, win := newTestRenderer(t, testConfig())
	r.DrawFrame()
	if len(dev.draws) != 0 || win.swaps != 1 {
		t.Errorf("draws = %d swaps = %d, want 0 and 1", len(dev.draws), win.swaps)
	}
}

func TestDrawFrameRefreshesContext(t *testing.T) {
	r, _, win := newTestRenderer(t, testConfig())
	clock := &fakeClock{t: time.Unix(100, 0)}
	r.clock = clock.now
	r.start = clock.t
	clock.t = clock.t.Add(2 * time.Second)
	win.width, win.height = 1024, 512

	r.DrawFrame()
	ctx := r.Context()
	if w, h := ctx.WindowSize(); w != 1024 || h != 512 {
		t.Errorf("WindowSize() = %dx%d, want 1024x512", w, h)
	}
	if ctx.Elapsed() != 2*time.Second {
		t.Errorf("Elapsed() = %v, want 2s", ctx.Elapsed())
	}
	if ctx.Frame() != 1 {
		t.Errorf("Frame() = %d, want 1", ctx.Frame())
	}
}

func TestDrawFrameUniformsPerBatch(t *testing.T) {
	r, dev, _ := newTestRenderer(t, testConfig())
	sheet, _ := r.AddSpriteSheet(testImage(32, 32), 32, 32)
	calls := 0
	layerUniform := NewUniform("layer", UniformInt(func(_ *RenderContext, s Sprite) int32 {
		calls++
		return s.Layer()
	}))
	id, err := r.AddShaderProgram("vs", "fs", vec2Attrs(), []Uniform{layerUniform})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		r.AddSprite(sheet, 0, 0, 0, 4, 1, 1, id)
	}
	r.AddSprite(sheet, 0, 0, 0, 9, 1, 1, id)
	r.DrawFrame()

	if calls != 2 {
		t.Errorf("uniform evaluated %d times, want once per batch", calls)
	}
	loc := dev.locations["layer"]
	if got := DecodeInt32s(dev.draws[1].uniforms[loc], 1)[0]; got != 9 {
		t.Errorf("second batch layer uniform = %d, want 9", got)
	}
}
