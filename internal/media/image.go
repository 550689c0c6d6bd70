package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// Hard limit on the raw upload, before compression.
	MaxUploadBytes = 10 << 20

	maxSide     = 1024
	webpQuality = 82
)

// CompressPhoto decodes an uploaded image, downscales it to at most
// maxSide on the longer edge and re-encodes as webp.
func CompressPhoto(raw []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		// webp uploads are not covered by the stdlib decoders
		img, err = webp.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxSide || h > maxSide {
		scale := float64(maxSide) / float64(max(w, h))
		nw := max(int(float64(w)*scale), 1)
		nh := max(int(float64(h)*scale), 1)

		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}

	return buf.Bytes(), nil
}

// PhotoKey is the storage key for a master photo, one per master.
func PhotoKey(masterID uint) string {
	return fmt.Sprintf("masters/%d.webp", masterID)
}
