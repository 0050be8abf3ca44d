package plot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

// WritePNG encodes img as an 8-bit grayscale PNG, one pixel per cell.
// Values are mapped through the fixed [VMin, VMax] range; the first data
// row ends up at the bottom of the picture.
func WritePNG(w io.Writer, img Image) error {
	if err := img.validate(); err != nil {
		return err
	}

	ny, nx := len(img.Data), len(img.Data[0])
	gray := image.NewGray(image.Rect(0, 0, nx, ny))
	for i := 0; i < ny; i++ {
		row := ny - 1 - i // flip Y so up is up
		for j := 0; j < nx; j++ {
			n := img.normalize(img.Data[i][j])
			gray.SetGray(j, row, color.Gray{Y: uint8(math.Round(n * 255))})
		}
	}

	if err := png.Encode(w, gray); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
