package glint

import (
	"fmt"
	"sort"
)

// SpriteSheet is a texture divided into cells, each addressed by index and
// described by a UV rectangle.
type SpriteSheet struct {
	texture uint32
	width   int
	height  int
	uvs     []UVRect
	names   map[string]int // packed sheets only
}

// NewGridSpriteSheet describes an already uploaded width×height texture cut
// into cellWidth×cellHeight cells. Cells are numbered row by row from the top
// of the image, left to right within a row.
func NewGridSpriteSheet(texture uint32, width, height, cellWidth, cellHeight int) (*SpriteSheet, error) {
	uvs, err := gridUVs(width, height, cellWidth, cellHeight)
	if err != nil {
		return nil, err
	}
	return &SpriteSheet{texture: texture, width: width, height: height, uvs: uvs}, nil
}

func gridUVs(width, height, cellWidth, cellHeight int) ([]UVRect, error) {
	if width <= 0 || height <= 0 || cellWidth <= 0 || cellHeight <= 0 ||
		width%cellWidth != 0 || height%cellHeight != 0 {
		return nil, &SpriteSheetDimensionError{
			Width: width, Height: height,
			CellWidth: cellWidth, CellHeight: cellHeight,
		}
	}
	cols := width / cellWidth
	rows := height / cellHeight
	w, h := float32(width), float32(height)
	uvs := make([]UVRect, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			uvs = append(uvs, UVRect{
				UMin: float32(col*cellWidth) / w,
				UMax: float32((col+1)*cellWidth) / w,
				VMin: float32((row+1)*cellHeight) / h,
				VMax: float32(row*cellHeight) / h,
			})
		}
	}
	return uvs, nil
}

// Texture returns the device texture handle.
func (s *SpriteSheet) Texture() uint32 { return s.texture }

// ID returns the sheet's id, which is its texture handle.
func (s *SpriteSheet) ID() SpriteSheetID { return SpriteSheetID(s.texture) }

// Size returns the texture size in pixels.
func (s *SpriteSheet) Size() (width, height int) { return s.width, s.height }

// Len returns the number of cells.
func (s *SpriteSheet) Len() int { return len(s.uvs) }

// UV returns the rectangle of cell index.
func (s *SpriteSheet) UV(index int) (UVRect, bool) {
	if index < 0 || index >= len(s.uvs) {
		return UVRect{}, false
	}
	return s.uvs[index], true
}

// Index returns the cell index of a named frame in a packed sheet.
func (s *SpriteSheet) Index(name string) (int, bool) {
	i, ok := s.names[name]
	return i, ok
}

// Names returns the frame names of a packed sheet in index order.
func (s *SpriteSheet) Names() []string {
	out := make([]string, len(s.names))
	for name, i := range s.names {
		out[i] = name
	}
	return out
}

// solidSheet is a 1×1 texture covering the full UV range.
func solidSheet(texture uint32) *SpriteSheet {
	return &SpriteSheet{texture: texture, width: 1, height: 1, uvs: []UVRect{FullUV}}
}

func checkPixels(img Image) error {
	if img.Width <= 0 || img.Height <= 0 {
		return &TextureCreationError{Reason: fmt.Sprintf("invalid image size %dx%d", img.Width, img.Height)}
	}
	if want := img.Width * img.Height * 4; len(img.Pix) != want {
		return &TextureCreationError{Reason: fmt.Sprintf("pixel buffer is %d bytes, want %d", len(img.Pix), want)}
	}
	return nil
}

// sheetRegistry maps sheet ids to sheets.
type sheetRegistry struct {
	sheets map[SpriteSheetID]*SpriteSheet
}

func newSheetRegistry() *sheetRegistry {
	return &sheetRegistry{sheets: make(map[SpriteSheetID]*SpriteSheet)}
}

func (r *sheetRegistry) add(s *SpriteSheet) SpriteSheetID {
	id := s.ID()
	r.sheets[id] = s
	return id
}

func (r *sheetRegistry) get(id SpriteSheetID) (*SpriteSheet, bool) {
	if r == nil {
		return nil, false
	}
	s, ok := r.sheets[id]
	return s, ok
}

func (r *sheetRegistry) remove(id SpriteSheetID) (*SpriteSheet, bool) {
	s, ok := r.sheets[id]
	if ok {
		delete(r.sheets, id)
	}
	return s, ok
}

// ids returns the registered ids in ascending order.
func (r *sheetRegistry) ids() []SpriteSheetID {
	out := make([]SpriteSheetID, 0, len(r.sheets))
	for id := range r.sheets {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
