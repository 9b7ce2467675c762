package glint

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSpriteDimensions is matched by *SpriteSheetDimensionError.
	ErrInvalidSpriteDimensions = errors.New("glint: image dimensions not divisible by cell size")

	// ErrInvalidConfig is wrapped by every Config validation failure.
	ErrInvalidConfig = errors.New("glint: invalid config")
)

// SpriteSheetDimensionError reports an image that cannot be cut into whole
// cells of the requested size.
type SpriteSheetDimensionError struct {
	Width, Height         int
	CellWidth, CellHeight int
}

func (e *SpriteSheetDimensionError) Error() string {
	return fmt.Sprintf("glint: %dx%d image cannot be divided into %dx%d cells",
		e.Width, e.Height, e.CellWidth, e.CellHeight)
}

func (e *SpriteSheetDimensionError) Is(target error) bool {
	return target == ErrInvalidSpriteDimensions
}

// TextureCreationError reports a texture the device could not create.
type TextureCreationError struct {
	Reason string
}

func (e *TextureCreationError) Error() string {
	return "glint: texture creation failed: " + e.Reason
}

// ShaderErrorKind distinguishes compile from link failures.
type ShaderErrorKind uint8

const (
	CompilationError ShaderErrorKind = iota
	LinkingError
)

func (k ShaderErrorKind) String() string {
	if k == LinkingError {
		return "link"
	}
	return "compile"
}

// ShaderError carries the driver's diagnostic log for a failed shader program.
// Stage is meaningful only for CompilationError.
type ShaderError struct {
	Kind  ShaderErrorKind
	Stage ShaderStage
	Log   string
}

func (e *ShaderError) Error() string {
	if e.Kind == LinkingError {
		return "glint: shader link failed: " + e.Log
	}
	return fmt.Sprintf("glint: %s shader compile failed: %s", e.Stage, e.Log)
}

// ResourceKind names what a sprite referenced but the renderer could not find.
type ResourceKind uint8

const (
	MissingShader ResourceKind = iota
	MissingSpriteSheet
	MissingSheetIndex
)

func (k ResourceKind) String() string {
	switch k {
	case MissingShader:
		return "shader"
	case MissingSpriteSheet:
		return "sprite sheet"
	default:
		return "sheet index"
	}
}

// MissingResourceError describes a sprite skipped at draw time. It is logged,
// never returned from DrawFrame.
type MissingResourceError struct {
	Sprite   SpriteID
	Resource ResourceKind
	ID       uint32
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("glint: sprite %d references missing %s %d", e.Sprite, e.Resource, e.ID)
}
