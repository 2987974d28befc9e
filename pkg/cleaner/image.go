package cleaner

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

const jpegQuality = 95

// decodeImage opens and decodes a supported image, returning the pixel data
// and the format it should be re-encoded as.
func decodeImage(path string) (image.Image, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".jpg", ".jpeg":
		img, err := jpeg.Decode(file)
		return img, "jpeg", err
	case ".png":
		img, err := png.Decode(file)
		return img, "png", err
	case ".bmp":
		img, err := bmp.Decode(file)
		return img, "bmp", err
	case ".tiff":
		img, err := tiff.Decode(file)
		return img, "tiff", err
	default:
		return nil, "", fmt.Errorf("unsupported image format: %s", ext)
	}
}

// encodeImage writes pixel data back to disk in the given format. Only the
// pixels survive the round trip; EXIF and other ancillary blocks present in
// the source file do not.
func encodeImage(img image.Image, path string, format string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	switch format {
	case "jpeg":
		return jpeg.Encode(file, img, &jpeg.Options{Quality: jpegQuality})
	case "png":
		return png.Encode(file, img)
	case "bmp":
		return bmp.Encode(file, img)
	case "tiff":
		return tiff.Encode(file, img, nil)
	default:
		return fmt.Errorf("unsupported image format: %s", format)
	}
}

// addPixelNoise perturbs roughly intensity*N of the image's pixels by up to
// ±2 per channel, clamped to the valid range. The returned image is a copy.
func addPixelNoise(img image.Image, intensity float64) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}

	width := bounds.Dx()
	height := bounds.Dy()
	pixelCount := width * height
	toChange := int(float64(pixelCount) * intensity)

	for i := 0; i < toChange; i++ {
		idx := rand.Intn(pixelCount)
		x := bounds.Min.X + idx%width
		y := bounds.Min.Y + idx/width

		offset := out.PixOffset(x, y)
		for c := 0; c < 3; c++ {
			noise := rand.Intn(5) - 2 // [-2, 2]
			out.Pix[offset+c] = clampByte(int(out.Pix[offset+c]) + noise)
		}
	}

	return out
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
