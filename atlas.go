package glint

import (
	"encoding/json"
	"fmt"
	"sort"
)

// NewPackedSpriteSheet describes an already uploaded width×height texture
// laid out by a TexturePacker JSON atlas. Both the hash format ("frames"
// object), the array format ("frames" list) and single-page "textures"
// documents are accepted. Cells are indexed in frame-name order; use
// SpriteSheet.Index to look them up by name.
func NewPackedSpriteSheet(texture uint32, width, height int, atlasJSON []byte) (*SpriteSheet, error) {
	frames, err := parseAtlas(atlasJSON)
	if err != nil {
		return nil, err
	}
	return packedSheet(texture, width, height, frames)
}

type packedFrame struct {
	name string
	rect jsonRect
}

func packedSheet(texture uint32, width, height int, frames []packedFrame) (*SpriteSheet, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("glint: invalid atlas page size %dx%d", width, height)
	}
	s := &SpriteSheet{
		texture: texture,
		width:   width,
		height:  height,
		uvs:     make([]UVRect, len(frames)),
		names:   make(map[string]int, len(frames)),
	}
	w, h := float32(width), float32(height)
	for i, f := range frames {
		r := f.rect
		if r.X < 0 || r.Y < 0 || r.W <= 0 || r.H <= 0 || r.X+r.W > width || r.Y+r.H > height {
			return nil, fmt.Errorf("glint: atlas frame %q (%d,%d %dx%d) outside %dx%d page",
				f.name, r.X, r.Y, r.W, r.H, width, height)
		}
		s.uvs[i] = UVRect{
			UMin: float32(r.X) / w,
			UMax: float32(r.X+r.W) / w,
			VMin: float32(r.Y+r.H) / h,
			VMax: float32(r.Y) / h,
		}
		s.names[f.name] = i
	}
	return s, nil
}

// parseAtlas reads a TexturePacker document into frames sorted by name.
func parseAtlas(data []byte) ([]packedFrame, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("glint: failed to parse atlas JSON: %w", err)
	}

	var frames map[string]jsonFrame
	var err error
	switch {
	case probe.Textures != nil:
		frames, err = parseTexturePages(probe.Textures)
	case probe.Frames != nil:
		frames, err = parseFrames(probe.Frames)
	default:
		return nil, fmt.Errorf("glint: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("glint: atlas has no frames")
	}

	out := make([]packedFrame, 0, len(frames))
	for name, f := range frames {
		if f.Rotated {
			return nil, fmt.Errorf("glint: atlas frame %q is rotated; export without rotation", name)
		}
		out = append(out, packedFrame{name: name, rect: f.Frame})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Filename string   `json:"filename"`
	Frame    jsonRect `json:"frame"`
	Rotated  bool     `json:"rotated"`
}

type jsonTexturePage struct {
	Image  string          `json:"image"`
	Frames json.RawMessage `json:"frames"`
}

// parseFrames accepts both {"name": {...}} and [{"filename": "name", ...}].
func parseFrames(raw json.RawMessage) (map[string]jsonFrame, error) {
	var hash map[string]jsonFrame
	if err := json.Unmarshal(raw, &hash); err == nil {
		return hash, nil
	}
	var list []jsonFrame
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("glint: failed to parse atlas frames: %w", err)
	}
	out := make(map[string]jsonFrame, len(list))
	for i, f := range list {
		if f.Filename == "" {
			return nil, fmt.Errorf("glint: atlas frame %d has no filename", i)
		}
		if _, dup := out[f.Filename]; dup {
			return nil, fmt.Errorf("glint: duplicate atlas frame %q", f.Filename)
		}
		out[f.Filename] = f
	}
	return out, nil
}

func parseTexturePages(raw json.RawMessage) (map[string]jsonFrame, error) {
	var pages []jsonTexturePage
	if err := json.Unmarshal(raw, &pages); err != nil {
		return nil, fmt.Errorf("glint: failed to parse atlas textures array: %w", err)
	}
	if len(pages) != 1 {
		return nil, fmt.Errorf("glint: atlas has %d pages, a sprite sheet holds exactly one", len(pages))
	}
	return parseFrames(pages[0].Frames)
}
