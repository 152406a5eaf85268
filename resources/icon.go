package resources

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
)

var (
	iconOnce     sync.Once
	iconResource fyne.Resource
)

// AppIcon returns the application icon, rendered once and cached. The repo
// ships no binary art; the icon is three concentric breathing rings.
func AppIcon() fyne.Resource {
	iconOnce.Do(func() {
		iconResource = fyne.NewStaticResource("tummo-icon.png", renderIcon(256))
	})
	return iconResource
}

func renderIcon(size int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	background := color.RGBA{R: 16, G: 42, B: 67, A: 255}
	rings := []struct {
		radius float64
		shade  color.RGBA
	}{
		{radius: 0.46, shade: color.RGBA{R: 52, G: 120, B: 168, A: 255}},
		{radius: 0.32, shade: color.RGBA{R: 99, G: 171, B: 209, A: 255}},
		{radius: 0.18, shade: color.RGBA{R: 186, G: 224, B: 240, A: 255}},
	}

	center := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			distance := dx*dx + dy*dy

			shade := background
			for _, ring := range rings {
				limit := ring.radius * float64(size)
				if distance <= limit*limit {
					shade = ring.shade
				}
			}
			img.SetRGBA(x, y, shade)
		}
	}

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, img); err != nil {
		// Encoding an in-memory RGBA image cannot fail with valid bounds.
		panic(err)
	}
	return buffer.Bytes()
}
