package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/cwbudde/algo-imgproc/imgproc/grid"
	"github.com/cwbudde/algo-imgproc/imgproc/levels"
)

// loadGray decodes an image file and converts it to luminance in [0, 255].
func loadGray(path string) (*grid.Real, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return toGray(img), format, nil
}

func toGray(img image.Image) *grid.Real {
	b := img.Bounds()
	g := grid.MustNew[float64](b.Dy(), b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := g.Row(y - b.Min.Y)
		for x := b.Min.X; x < b.Max.X; x++ {
			v := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
			row[x-b.Min.X] = float64(v.Y) / 257
		}
	}
	return g
}

// savePNG writes g as an 8-bit grayscale PNG. Samples are rounded and
// clamped to [0, 255]; callers normalize beforehand when needed.
func savePNG(path string, g *grid.Real) error {
	pix, err := levels.Quantize(g)
	if err != nil {
		return err
	}
	img := &image.Gray{
		Pix:    pix,
		Stride: g.Width(),
		Rect:   image.Rect(0, 0, g.Width(), g.Height()),
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// saveMask writes a binary mask as a black/white PNG.
func saveMask(path string, m *grid.Mask) error {
	return savePNG(path, grid.Map(m, func(on bool) float64 {
		if on {
			return 255
		}
		return 0
	}))
}
