package glint

import (
	"fmt"
	"os"
	"time"
)

// FrameStats describes the most recent frame.
type FrameStats struct {
	Sprites   int // sprites drawn
	Skipped   int // sprites skipped for missing resources
	Batches   int
	DrawCalls int

	CollectTime time.Duration
	SortTime    time.Duration
	SubmitTime  time.Duration
}

// debugLog prints timing and draw-call stats to stderr.
func (r *Renderer) debugLog(stats FrameStats) {
	if !r.cfg.Debug {
		return
	}
	total := stats.CollectTime + stats.SortTime + stats.SubmitTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[glint] collect: %v | sort: %v | submit: %v | total: %v\n",
		stats.CollectTime, stats.SortTime, stats.SubmitTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[glint] sprites: %d | skipped: %d | batches: %d | draw calls: %d\n",
		stats.Sprites, stats.Skipped, stats.Batches, stats.DrawCalls)
}
