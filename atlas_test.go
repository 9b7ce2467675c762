package glint

import (
	"strings"
	"testing"
)

const hashAtlas = `{
	"frames": {
		"walk_1": {"frame": {"x": 32, "y": 0, "w": 32, "h": 32}, "rotated": false},
		"idle":   {"frame": {"x": 0, "y": 0, "w": 32, "h": 64}, "rotated": false}
	},
	"meta": {"size": {"w": 64, "h": 64}}
}`

const arrayAtlas = `{
	"frames": [
		{"filename": "b", "frame": {"x": 0, "y": 32, "w": 16, "h": 16}},
		{"filename": "a", "frame": {"x": 16, "y": 32, "w": 16, "h": 16}}
	]
}`

func TestPackedSheetHashFormat(t *testing.T) {
	s, err := NewPackedSpriteSheet(3, 64, 64, []byte(hashAtlas))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	i, ok := s.Index("walk_1")
	if !ok || i != 1 {
		t.Fatalf("Index(walk_1) = %d, %v, want 1, true", i, ok)
	}
	r, _ := s.UV(i)
	want := UVRect{UMin: 0.5, UMax: 1, VMin: 0.5, VMax: 0}
	if r != want {
		t.Errorf("UV = %+v, want %+v", r, want)
	}
	if names := s.Names(); names[0] != "idle" || names[1] != "walk_1" {
		t.Errorf("Names() = %v, want [idle walk_1]", names)
	}
}

func TestPackedSheetArrayFormat(t *testing.T) {
	s, err := NewPackedSpriteSheet(3, 64, 64, []byte(arrayAtlas))
	if err != nil {
		t.Fatal(err)
	}
	i, ok := s.Index("a")
	if !ok || i != 0 {
		t.Fatalf("Index(a) = %d, %v, want 0, true", i, ok)
	}
	r, _ := s.UV(i)
	if r.UMin != 0.25 || r.VMin != 0.75 || r.VMax != 0.5 {
		t.Errorf("UV = %+v", r)
	}
}

func TestPackedSheetTexturesFormat(t *testing.T) {
	doc := `{"textures": [{"image": "page0.png", "frames": {"x": {"frame": {"x": 0, "y": 0, "w": 8, "h": 8}}}}]}`
	s, err := NewPackedSpriteSheet(1, 8, 8, []byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if r, _ := s.UV(0); r != (UVRect{0, 1, 1, 0}) {
		t.Errorf("UV = %+v, want full cell", r)
	}
}

func TestPackedSheetErrors(t *testing.T) {
	tests := []struct {
		name, doc, want string
	}{
		{"not json", `{`, "parse atlas JSON"},
		{"no frames", `{"meta": {}}`, "neither"},
		{"empty", `{"frames": {}}`, "no frames"},
		{"rotated", `{"frames": {"r": {"frame": {"x": 0, "y": 0, "w": 8, "h": 8}, "rotated": true}}}`, "rotated"},
		{"outside", `{"frames": {"o": {"frame": {"x": 60, "y": 0, "w": 8, "h": 8}}}}`, "outside"},
		{"two pages", `{"textures": [{"frames": {}}, {"frames": {}}]}`, "2 pages"},
		{"unnamed", `{"frames": [{"frame": {"x": 0, "y": 0, "w": 8, "h": 8}}]}`, "no filename"},
	}
	for _, tt := range tests {
		_, err := NewPackedSpriteSheet(1, 64, 64, []byte(tt.doc))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.want)
		}
	}
}
