package assets

import (
	"embed"
	"image"
	"image/color"
	"log"
	"math"
)

//go:embed data/*.yaml
var projectAssets embed.FS

// DefaultConfig returns the embedded default settings file.
func DefaultConfig() []byte {
	data, err := projectAssets.ReadFile("data/starfield.yaml")
	if err != nil {
		log.Fatalf("Failed to read embedded config: %v", err)
	}
	return data
}

// GlowSprite builds a white radial halo of the given diameter. Alpha falls
// off quadratically from the center to the edge, which reads as a blur
// once the sprite is scaled and tinted. Pixels are premultiplied.
func GlowSprite(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			if d >= 1 {
				continue
			}
			a := uint8(math.Round((1 - d) * (1 - d) * 255))
			img.SetRGBA(x, y, color.RGBA{a, a, a, a})
		}
	}
	return img
}
