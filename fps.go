package glint

import (
	"log"
	"runtime"
	"time"
)

// fpsWindow is how often the measured frame rate is refreshed.
const fpsWindow = 500 * time.Millisecond

// framePacer holds DrawFrame until the target frame duration has passed since
// the previous frame, and measures the achieved frame rate.
type framePacer struct {
	target time.Duration // zero disables pacing
	now    func() time.Time
	yield  func()

	last        time.Time
	windowStart time.Time
	frames      int
	fps         float64
	show        bool
}

func newFramePacer(targetFPS int, show bool) framePacer {
	p := framePacer{now: time.Now, yield: runtime.Gosched, show: show}
	p.setTarget(targetFPS)
	return p
}

func (p *framePacer) setTarget(fps int) {
	if fps <= 0 {
		p.target = 0
		return
	}
	p.target = time.Second / time.Duration(fps)
}

// wait yields the processor until the frame's time slice is used up, then
// starts the next slice.
func (p *framePacer) wait() {
	if p.target > 0 && !p.last.IsZero() {
		for p.now().Sub(p.last) < p.target {
			p.yield()
		}
	}
	now := p.now()
	p.last = now
	p.tick(now)
}

// tick counts a finished frame and refreshes the rate every fpsWindow.
func (p *framePacer) tick(now time.Time) {
	if p.windowStart.IsZero() {
		p.windowStart = now
		return
	}
	p.frames++
	elapsed := now.Sub(p.windowStart)
	if elapsed < fpsWindow {
		return
	}
	p.fps = float64(p.frames) / elapsed.Seconds()
	p.frames = 0
	p.windowStart = now
	if p.show {
		log.Printf("glint: %.1f fps", p.fps)
	}
}
