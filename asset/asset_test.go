package asset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"golang.org/x/image/bmp"
)

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 128})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{0, 0, 0, 0})
	return img
}

func encodePNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, checker()); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	w, h, pix, err := Decode(encodePNG(t))
	if err != nil {
		t.Fatal(err)
	}
	if w != 2 || h != 2 || len(pix) != 16 {
		t.Fatalf("got %dx%d with %d bytes", w, h, len(pix))
	}
	want := []byte{255, 0, 0, 255, 0, 255, 0, 128, 0, 0, 255, 255, 0, 0, 0, 0}
	if !bytes.Equal(pix, want) {
		t.Errorf("pix = %v, want %v", pix, want)
	}
}

func TestDecodeBMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 1))
	src.Set(2, 0, color.RGBA{10, 20, 30, 255})
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	w, h, pix, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if w != 3 || h != 1 {
		t.Fatalf("size = %dx%d", w, h)
	}
	if got := pix[8:12]; !bytes.Equal(got, []byte{10, 20, 30, 255}) {
		t.Errorf("last pixel = %v", got)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, _, _, err := Decode([]byte("not an image")); err == nil {
		t.Error("expected an error")
	}
}

func TestFromImageSubImage(t *testing.T) {
	sub := checker().SubImage(image.Rect(1, 0, 2, 2))
	img := FromImage(sub)
	if img.Width != 1 || img.Height != 2 {
		t.Fatalf("size = %dx%d", img.Width, img.Height)
	}
	want := []byte{0, 255, 0, 128, 0, 0, 0, 0}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("pix = %v, want %v", img.Pix, want)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	if err := os.WriteFile(path, encodePNG(t), 0o644); err != nil {
		t.Fatal(err)
	}
	img, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 2 {
		t.Errorf("width = %d", img.Width)
	}
	if _, err := Open(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{"art/sheet.png": {Data: encodePNG(t)}}
	img, err := OpenFS(fsys, "art/sheet.png")
	if err != nil {
		t.Fatal(err)
	}
	if img.Height != 2 {
		t.Errorf("height = %d", img.Height)
	}
}
