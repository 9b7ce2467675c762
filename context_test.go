package glint

import "testing"

func TestRenderContextAspectRatio(t *testing.T) {
	if got := NewRenderContext(1920, 1080, 0).AspectRatio(); !near(got, 16.0/9.0) {
		t.Errorf("AspectRatio() = %v, want %v", got, 16.0/9.0)
	}
	if got := NewRenderContext(100, 0, 0).AspectRatio(); got != 1 {
		t.Errorf("degenerate AspectRatio() = %v, want 1", got)
	}
}

func TestRenderContextLookups(t *testing.T) {
	sheet := testSheet(t)
	ctx := NewRenderContext(10, 10, 0, sheet)

	if tex, ok := ctx.Texture(sheet.ID()); !ok || tex != 7 {
		t.Errorf("Texture() = %d, %v, want 7, true", tex, ok)
	}
	if _, ok := ctx.Texture(99); ok {
		t.Error("unknown sheet should not resolve")
	}
	if _, ok := ctx.UV(sheet.ID(), 4); ok {
		t.Error("index past the last cell should not resolve")
	}
	if r, ok := ctx.UV(sheet.ID(), 3); !ok || r.UMin != 0.5 || r.VMax != 0.5 {
		t.Errorf("UV(3) = %+v, %v", r, ok)
	}
}
