package icons

import (
	"image"

	"github.com/wiloon/enxkit/pkg/errors"
)

// Sizes are the icon edge lengths in pixels, in output order
var Sizes = []int{16, 32, 48, 128}

// Layout returns the shapes of a size×size icon in paint order
func Layout(size int) ([]Shape, error) {
	if size < 1 {
		return nil, errors.Newf(errors.ErrInvalidInput, "icon size must be positive, got %d", size).
			WithDetail("size", size)
	}

	lineWidth := max(1, size/10)
	margin := size / 4
	full := size - 2*margin

	shapes := []Shape{
		RoundedRect{X0: 0, Y0: 0, X1: size - 1, Y1: size - 1, Radius: max(3, size/5), Color: Background},
	}

	bars := []struct{ y, length int }{
		{margin, full},
		{size/2 - lineWidth/2, int(float64(full) * 0.75)},
		{size - margin, full},
	}
	for _, b := range bars {
		shapes = append(shapes, RoundedRect{
			X0:     margin,
			Y0:     b.y,
			X1:     margin + b.length,
			Y1:     b.y + lineWidth,
			Radius: lineWidth / 2,
			Color:  Bar,
		})
	}

	shapes = append(shapes, Circle{
		CX:    size - margin/2,
		CY:    margin / 2,
		R:     max(3, size/8),
		Color: Accent,
	})
	return shapes, nil
}

// Render rasterizes the icon of the given size on a transparent canvas.
// Pixels outside the canvas are clipped.
func Render(size int) (*image.NRGBA, error) {
	shapes, err := Layout(size)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for _, shape := range shapes {
		fill := shape.Fill()
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if shape.Contains(x, y) {
					img.SetNRGBA(x, y, fill)
				}
			}
		}
	}
	return img, nil
}
