// Package asset decodes image files into the straight-alpha RGBA buffers
// glint uploads as sprite sheet textures.
//
// png, jpeg, gif, bmp, tiff and webp are supported.
package asset

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/phanxgames/glint"
)

var _ glint.ImageDecoder = Decode

// Decode decodes an encoded image into tightly packed, non-premultiplied
// RGBA rows, top row first. It has the glint.ImageDecoder signature and can
// be set as Config.Decoder.
func Decode(data []byte) (width, height int, pix []byte, err error) {
	img, err := Read(bytes.NewReader(data))
	if err != nil {
		return 0, 0, nil, err
	}
	return img.Width, img.Height, img.Pix, nil
}

// Read decodes an image from r.
func Read(r io.Reader) (glint.Image, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		return glint.Image{}, fmt.Errorf("asset: decode: %w", err)
	}
	img := FromImage(src)
	if img.Width == 0 || img.Height == 0 {
		return glint.Image{}, fmt.Errorf("asset: empty %s image", format)
	}
	return img, nil
}

// Open decodes the image file at path.
func Open(path string) (glint.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return glint.Image{}, err
	}
	defer f.Close()
	return Read(f)
}

// OpenFS decodes the image at name in fsys, e.g. an embed.FS.
func OpenFS(fsys fs.FS, name string) (glint.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return glint.Image{}, err
	}
	defer f.Close()
	return Read(f)
}

// FromImage converts any image to a glint.Image. NRGBA images whose rows are
// already tightly packed are copied directly.
func FromImage(src image.Image) glint.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if n, ok := src.(*image.NRGBA); ok && n.Stride == 4*w {
		return glint.Image{Width: w, Height: h, Pix: append([]byte(nil), n.Pix[:4*w*h]...)}
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return glint.Image{Width: w, Height: h, Pix: dst.Pix}
}
