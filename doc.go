// Package glint is a small real-time 2D sprite renderer.
//
// Glint turns positioned, textured rectangles into as few GPU draw calls as
// it can and lets callers feed their own shaders with per-vertex and
// per-draw data through typed callbacks.
//
// # Quick start
//
// The renderer talks to the GPU through a [Device] and presents through a
// [Window]. The glbackend package provides both on OpenGL 3.3 with GLFW;
// ebitenhost runs the renderer inside an Ebitengine game loop. The asset
// package decodes image files for [Config.Decoder], and the ecs module keeps
// sprites in step with a Donburi world.
//
//	win, dev, err := glbackend.NewWindow(glbackend.WindowConfig{
//		Title: "demo", Width: 800, Height: 600,
//	})
//	cfg := glint.DefaultConfig()
//	cfg.Decoder = asset.Decode
//	r, err := glint.NewRenderer(dev, win, cfg)
//	defer r.Close()
//
//	sheet, err := r.LoadSpriteSheet(png, 32, 32)
//	r.AddSprite(sheet, 0, 100, 100, 0, 64, 64, r.DefaultShader())
//	for !win.ShouldClose() {
//		win.PollEvents()
//		r.DrawFrame()
//	}
//
// # Coordinates
//
// Sprite positions are window pixels with the origin at the bottom-left and
// Y increasing upward. A sprite's position is its bottom-left corner.
// Sprite sheet cells are numbered row by row from the top of the image.
//
// # Batching
//
// Every frame the live sprites are sorted by layer, then shader, then sprite
// sheet, then id. Each run sharing all three becomes one draw call (or
// several, if the run is larger than the program's buffer capacity). Lower
// layers always draw before higher ones.
//
// # Shader data
//
// An [Attribute] binds a vertex input location to an [AttributeData]
// callback returning one value per quad corner: bottom-left, bottom-right,
// top-left, top-right. A [Uniform] binds a uniform name to a [UniformData]
// callback evaluated once per draw call against the batch's first sprite.
// Both callbacks receive a read-only [RenderContext] and the [Sprite] by
// value.
//
//	brightness := glint.NewUniform("brightness",
//		glint.UniformFloat(func(ctx *glint.RenderContext, _ glint.Sprite) float32 {
//			return 0.5 + 0.5*math32.Sin(ctx.ElapsedSeconds())
//		}))
//
// Built-in bindings cover the common cases: [PositionAttribute],
// [RotatedPositionAttribute], [TextureUVAttribute],
// [FlippedTextureUVAttribute], [RotationAttribute], [FlipAttribute],
// [ElapsedTimeUniform], [AspectRatioUniform] and
// [SpriteSheetTextureUniform].
//
// # Tweens
//
// [Renderer.TweenPosition], [Renderer.TweenSize] and
// [Renderer.TweenRotation] animate a sprite with [gween] easing functions.
// Schedule them with [Renderer.AddTween] and advance with [Renderer.Update].
//
// [gween]: https://github.com/tanema/gween
package glint
