package glint

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// toNDC maps a window pixel coordinate to normalized device coordinates.
func toNDC(ctx *RenderContext, px, py float32) mgl32.Vec2 {
	w, h := ctx.WindowSize()
	if w == 0 || h == 0 {
		return mgl32.Vec2{-1, -1}
	}
	return mgl32.Vec2{2*px/float32(w) - 1, 2*py/float32(h) - 1}
}

func spritePosition(ctx *RenderContext, s Sprite) [4]mgl32.Vec2 {
	x0, y0 := float32(s.x), float32(s.y)
	x1, y1 := x0+float32(s.width), y0+float32(s.height)
	return [4]mgl32.Vec2{
		toNDC(ctx, x0, y0),
		toNDC(ctx, x1, y0),
		toNDC(ctx, x0, y1),
		toNDC(ctx, x1, y1),
	}
}

func rotatedSpritePosition(ctx *RenderContext, s Sprite) [4]mgl32.Vec2 {
	if s.rotation == 0 {
		return spritePosition(ctx, s)
	}
	hw, hh := float32(s.width)/2, float32(s.height)/2
	cx, cy := float32(s.x)+hw, float32(s.y)+hh
	sin, cos := math32.Sin(s.rotation), math32.Cos(s.rotation)
	corners := [4][2]float32{{-hw, -hh}, {hw, -hh}, {-hw, hh}, {hw, hh}}
	var out [4]mgl32.Vec2
	for i, c := range corners {
		out[i] = toNDC(ctx, cx+c[0]*cos-c[1]*sin, cy+c[0]*sin+c[1]*cos)
	}
	return out
}

func uvCorners(r UVRect) [4]mgl32.Vec2 {
	return [4]mgl32.Vec2{
		{r.UMin, r.VMin},
		{r.UMax, r.VMin},
		{r.UMin, r.VMax},
		{r.UMax, r.VMax},
	}
}

func spriteUV(ctx *RenderContext, s Sprite) [4]mgl32.Vec2 {
	r, _ := ctx.UV(s.sheet, s.index)
	return uvCorners(r)
}

func flippedSpriteUV(ctx *RenderContext, s Sprite) [4]mgl32.Vec2 {
	r, _ := ctx.UV(s.sheet, s.index)
	switch s.flip {
	case FlipX:
		r.UMin, r.UMax = r.UMax, r.UMin
	case FlipY:
		r.VMin, r.VMax = r.VMax, r.VMin
	case FlipXY:
		r.UMin, r.UMax = r.UMax, r.UMin
		r.VMin, r.VMax = r.VMax, r.VMin
	}
	return uvCorners(r)
}

// PositionAttribute emits the sprite's corners in normalized device
// coordinates, scaling each axis by the window size.
func PositionAttribute(name string, location uint32) Attribute {
	return NewAttribute(name, location, AttrFloatVec2(spritePosition))
}

// RotatedPositionAttribute is PositionAttribute with the corners rotated
// about the sprite centre. Rotation happens in pixel space so the result is
// not stretched by the window's aspect ratio.
func RotatedPositionAttribute(name string, location uint32) Attribute {
	return NewAttribute(name, location, AttrFloatVec2(rotatedSpritePosition))
}

// TextureUVAttribute emits the corners of the sprite's sheet cell.
func TextureUVAttribute(name string, location uint32) Attribute {
	return NewAttribute(name, location, AttrFloatVec2(spriteUV))
}

// FlippedTextureUVAttribute is TextureUVAttribute with the sprite's Flip
// applied.
func FlippedTextureUVAttribute(name string, location uint32) Attribute {
	return NewAttribute(name, location, AttrFloatVec2(flippedSpriteUV))
}

// RotationAttribute emits the sprite rotation in radians at every corner.
func RotationAttribute(name string, location uint32) Attribute {
	return NewAttribute(name, location, AttrFloat(func(_ *RenderContext, s Sprite) [4]float32 {
		r := s.rotation
		return [4]float32{r, r, r, r}
	}))
}

// FlipAttribute emits the sprite's flip as a (x, y) pair of 0/1 flags.
func FlipAttribute(name string, location uint32) Attribute {
	return NewAttribute(name, location, AttrFloatVec2(func(_ *RenderContext, s Sprite) [4]mgl32.Vec2 {
		x, y := s.flip.Flags()
		v := mgl32.Vec2{x, y}
		return [4]mgl32.Vec2{v, v, v, v}
	}))
}

// ElapsedTimeUniform uploads the seconds since the renderer started.
func ElapsedTimeUniform(name string) Uniform {
	return NewUniform(name, UniformFloat(func(ctx *RenderContext, _ Sprite) float32 {
		return ctx.ElapsedSeconds()
	}))
}

// AspectRatioUniform uploads the window's width/height ratio.
func AspectRatioUniform(name string) Uniform {
	return NewUniform(name, UniformFloat(func(ctx *RenderContext, _ Sprite) float32 {
		return ctx.AspectRatio()
	}))
}

// SpriteSheetTextureUniform samples the texture of the batch's sprite sheet.
func SpriteSheetTextureUniform(name string) Uniform {
	return NewUniform(name, UniformSampler2D(func(ctx *RenderContext, s Sprite) uint32 {
		tex, _ := ctx.Texture(s.sheet)
		return tex
	}))
}
