package ebitenhost

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/glint"
)

// Options configures the Ebitengine window and per-tick callbacks.
type Options struct {
	Title         string
	Width, Height int
	// Resizable lets the user resize the window. The logical screen follows
	// the window size.
	Resizable bool
	// ScreenshotDir receives Screenshot captures. Defaults to "screenshots".
	ScreenshotDir string

	// Update runs once per tick, before tweens advance. Returning
	// ebiten.Termination ends Run without error.
	Update func(r *glint.Renderer, dt float32) error
	// Draw runs after the renderer has drawn the frame.
	Draw func(screen *ebiten.Image)
}

// surface is the glint.Window for a logical Ebitengine screen. Ebitengine
// presents frames itself, so SwapBuffers does nothing.
type surface struct {
	w, h int
}

func (s *surface) FramebufferSize() (int, int) { return s.w, s.h }
func (s *surface) SwapBuffers()                {}

// Host is an ebiten.Game driving a glint Renderer.
type Host struct {
	r    *glint.Renderer
	dev  *Device
	surf *surface
	opts Options

	tps     int
	showFPS bool
	shots   []string
}

var _ ebiten.Game = (*Host)(nil)

// New creates a renderer on an Ebitengine device. cfg.TargetFPS becomes the
// tick rate and cfg.ShowFPS draws an on-screen counter; the renderer itself
// runs unpaced since Ebitengine schedules frames.
func New(cfg glint.Config, opts Options) (*Host, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("ebitenhost: invalid screen size %dx%d", opts.Width, opts.Height)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := &Host{
		dev:     NewDevice(),
		surf:    &surface{w: opts.Width, h: opts.Height},
		opts:    opts,
		tps:     cfg.TargetFPS,
		showFPS: cfg.ShowFPS,
	}
	cfg.TargetFPS = 0
	cfg.ShowFPS = false
	r, err := glint.NewRenderer(h.dev, h.surf, cfg)
	if err != nil {
		return nil, err
	}
	h.r = r
	return h, nil
}

// Renderer returns the hosted renderer.
func (h *Host) Renderer() *glint.Renderer { return h.r }

// Device returns the Ebitengine device the renderer draws with.
func (h *Host) Device() *Device { return h.dev }

// SetShowFPS toggles the on-screen frame counter.
func (h *Host) SetShowFPS(show bool) { h.showFPS = show }

func (h *Host) tickSeconds() float32 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 0
	}
	return 1 / float32(tps)
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	dt := h.tickSeconds()
	if h.opts.Update != nil {
		if err := h.opts.Update(h.r, dt); err != nil {
			return err
		}
	}
	h.r.Update(dt)
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	h.dev.SetTarget(screen)
	h.r.DrawFrame()
	h.dev.SetTarget(nil)
	if h.opts.Draw != nil {
		h.opts.Draw(screen)
	}
	if h.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	h.captureScreenshots(screen)
}

// Layout implements ebiten.Game. Fixed-size hosts keep their logical size;
// resizable hosts track the window.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.opts.Resizable && outsideWidth > 0 && outsideHeight > 0 {
		h.surf.w, h.surf.h = outsideWidth, outsideHeight
	}
	return h.surf.w, h.surf.h
}

// Run opens the window and blocks until the game ends, then releases the
// renderer's resources.
func (h *Host) Run() error {
	ebiten.SetWindowTitle(h.opts.Title)
	ebiten.SetWindowSize(h.opts.Width, h.opts.Height)
	if h.opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if h.tps > 0 {
		ebiten.SetTPS(h.tps)
	}
	err := ebiten.RunGame(h)
	if cerr := h.r.Close(); err == nil {
		err = cerr
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
