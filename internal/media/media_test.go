package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestCompressPhoto_Downscale(t *testing.T) {
	out, err := CompressPhoto(pngBytes(t, 2048, 1024))
	if err != nil {
		t.Fatalf("CompressPhoto() error = %v", err)
	}

	img, err := webp.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not webp: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 1024 || b.Dy() != 512 {
		t.Errorf("size = %dx%d, want 1024x512", b.Dx(), b.Dy())
	}
}

func TestCompressPhoto_SmallImageKeepsSize(t *testing.T) {
	out, err := CompressPhoto(pngBytes(t, 200, 100))
	if err != nil {
		t.Fatalf("CompressPhoto() error = %v", err)
	}

	img, err := webp.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not webp: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("size = %dx%d, want 200x100", b.Dx(), b.Dy())
	}
}

func TestCompressPhoto_RejectsGarbage(t *testing.T) {
	if _, err := CompressPhoto([]byte("not an image")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestPublicURL(t *testing.T) {
	s := &Storage{baseURL: "https://cdn.example.com/"}
	if got := s.PublicURL("masters/3.webp"); got != "https://cdn.example.com/media/masters/3.webp" {
		t.Errorf("PublicURL = %q", got)
	}

	s = &Storage{}
	if got := s.PublicURL("masters/3.webp"); got != "/media/masters/3.webp" {
		t.Errorf("relative PublicURL = %q", got)
	}
}

func TestPhotoKey(t *testing.T) {
	if got := PhotoKey(7); got != "masters/7.webp" {
		t.Errorf("PhotoKey(7) = %q", got)
	}
}
