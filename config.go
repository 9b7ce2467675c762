package glint

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Config configures a Renderer.
type Config struct {
	// TargetFPS caps the frame rate. Zero disables pacing.
	TargetFPS int `toml:"target_fps"`
	// ShowFPS logs the measured frame rate twice a second.
	ShowFPS bool `toml:"show_fps"`
	// ClearColor fills the framebuffer at the start of every frame.
	ClearColor Color `toml:"clear_color"`
	// BatchCapacity is the number of sprites each shader program's buffers
	// hold. Longer batches are split into several draw calls.
	BatchCapacity int `toml:"batch_capacity"`
	// TextureFilter selects sampling for sprite sheet textures.
	TextureFilter TextureFilter `toml:"texture_filter"`
	// Debug prints per-frame timing and draw-call stats to stderr.
	Debug bool `toml:"debug"`

	// Decoder turns encoded image bytes into pixels for LoadSpriteSheet.
	// Set it to asset.Decode or any compatible function.
	Decoder ImageDecoder `toml:"-"`
}

// DefaultConfig returns the settings NewRenderer uses for a zero Config.
func DefaultConfig() Config {
	return Config{
		TargetFPS:     60,
		ClearColor:    ColorBlack,
		BatchCapacity: DefaultBatchCapacity,
		TextureFilter: FilterNearest,
	}
}

// Validate checks the config and fills unset fields with defaults.
func (c *Config) Validate() error {
	if c.TargetFPS < 0 {
		return fmt.Errorf("%w: target_fps %d is negative", ErrInvalidConfig, c.TargetFPS)
	}
	if c.BatchCapacity < 0 {
		return fmt.Errorf("%w: batch_capacity %d is negative", ErrInvalidConfig, c.BatchCapacity)
	}
	if c.BatchCapacity == 0 {
		c.BatchCapacity = DefaultBatchCapacity
	}
	if c.TextureFilter > FilterLinear {
		return fmt.Errorf("%w: unknown texture filter %d", ErrInvalidConfig, c.TextureFilter)
	}
	return nil
}

// LoadConfig parses TOML on top of DefaultConfig. Unknown keys are rejected.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
