package glint

import (
	"fmt"
	"log"
	"os"
	"time"
)

// drawState is the frame driver's scratch space. Callbacks never see it.
type drawState struct {
	sprites []Sprite // live, drawable sprites in batch order
	sortBuf []Sprite
	verts   []byte
	stats   FrameStats
}

// DrawFrame renders every live sprite, presents the frame and then waits
// until the target frame duration has passed since the previous frame.
// Sprites whose shader, sheet or cell is missing are skipped and reported
// once through the log.
func (r *Renderer) DrawFrame() {
	r.refreshContext()
	r.dev.Clear(r.cfg.ClearColor)

	st := &r.state
	st.stats = FrameStats{}

	t0 := time.Now()
	r.collect()
	t1 := time.Now()
	st.sortBuf = mergeSort(st.sprites, st.sortBuf)
	t2 := time.Now()
	r.submitBatches()
	t3 := time.Now()

	st.stats.Sprites = len(st.sprites)
	st.stats.CollectTime = t1.Sub(t0)
	st.stats.SortTime = t2.Sub(t1)
	st.stats.SubmitTime = t3.Sub(t2)
	r.debugLog(st.stats)

	r.win.SwapBuffers()
	r.pacer.wait()
	r.ctx.frame++
}

// refreshContext updates the frame-level state callbacks read.
func (r *Renderer) refreshContext() {
	r.ctx.width, r.ctx.height = r.win.FramebufferSize()
	r.ctx.elapsed = r.clock().Sub(r.start)
}

// collect gathers drawable sprites into the draw state.
func (r *Renderer) collect() {
	st := &r.state
	st.sprites = st.sprites[:0]
	for _, s := range r.sprites.sprites {
		if err := r.checkResources(s); err != nil {
			st.stats.Skipped++
			r.warnMissing(err)
			continue
		}
		if len(r.warned) > 0 {
			delete(r.warned, s.id)
		}
		st.sprites = append(st.sprites, *s)
	}
}

func (r *Renderer) checkResources(s *Sprite) *MissingResourceError {
	if _, ok := r.shaders.get(s.shader); !ok {
		return &MissingResourceError{Sprite: s.id, Resource: MissingShader, ID: uint32(s.shader)}
	}
	sheet, ok := r.sheets.get(s.sheet)
	if !ok {
		return &MissingResourceError{Sprite: s.id, Resource: MissingSpriteSheet, ID: uint32(s.sheet)}
	}
	if s.index < 0 || s.index >= sheet.Len() {
		return &MissingResourceError{Sprite: s.id, Resource: MissingSheetIndex, ID: uint32(s.index)}
	}
	return nil
}

// warnMissing logs err the first time its sprite is skipped.
func (r *Renderer) warnMissing(err *MissingResourceError) {
	if _, seen := r.warned[err.Sprite]; seen {
		return
	}
	r.warned[err.Sprite] = struct{}{}
	log.Printf("%v; skipping", err)
}

// submitBatches issues one draw per batch, or several when a batch is larger
// than its program's capacity.
func (r *Renderer) submitBatches() {
	st := &r.state
	for i := 0; i < len(st.sprites); {
		j := nextBatch(st.sprites, i)
		prog, _ := r.shaders.get(st.sprites[i].shader)
		if r.cfg.Debug && j-i > prog.Capacity() {
			_, _ = fmt.Fprintf(os.Stderr, "[glint] warning: batch of %d sprites exceeds capacity %d (shader %d)\n",
				j-i, prog.Capacity(), prog.ID())
		}
		st.stats.Batches++
		st.stats.DrawCalls += prog.draw(&r.ctx, st.sprites[i:j], &st.verts)
		i = j
	}
}
