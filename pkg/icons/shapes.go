package icons

import (
	"image/color"
	"math"
)

// Palette
var (
	Background = color.NRGBA{R: 0x66, G: 0x7e, B: 0xea, A: 0xff}
	Bar        = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Accent     = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
)

// Shape is one filled primitive of the icon layout
type Shape interface {
	// Contains reports whether the pixel at (x, y) is covered. A pixel is
	// covered when its centre lies inside the shape.
	Contains(x, y int) bool
	// Fill returns the paint colour
	Fill() color.NRGBA
}

// RoundedRect covers the inclusive pixel box (X0,Y0)-(X1,Y1) with corners of
// the given radius. The radius is clamped to half the shorter side.
type RoundedRect struct {
	X0, Y0, X1, Y1 int
	Radius         int
	Color          color.NRGBA
}

// Fill implements Shape
func (r RoundedRect) Fill() color.NRGBA { return r.Color }

// Bounds returns the box in continuous coordinates: left, top, width, height
func (r RoundedRect) Bounds() (x, y, w, h float64) {
	return float64(r.X0), float64(r.Y0), float64(r.X1-r.X0+1), float64(r.Y1-r.Y0+1)
}

// EffectiveRadius is the corner radius after clamping
func (r RoundedRect) EffectiveRadius() float64 {
	_, _, w, h := r.Bounds()
	return math.Max(0, math.Min(float64(r.Radius), math.Min(w, h)/2))
}

// Contains implements Shape
func (r RoundedRect) Contains(x, y int) bool {
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return false
	}
	left, top, w, h := r.Bounds()
	rad := r.EffectiveRadius()
	if rad == 0 {
		return true
	}

	px, py := float64(x)+0.5, float64(y)+0.5
	cx := clamp(px, left+rad, left+w-rad)
	cy := clamp(py, top+rad, top+h-rad)
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= rad*rad
}

// Circle covers the inclusive pixel box (CX-R,CY-R)-(CX+R,CY+R)
type Circle struct {
	CX, CY, R int
	Color     color.NRGBA
}

// Fill implements Shape
func (c Circle) Fill() color.NRGBA { return c.Color }

// Centre returns the centre and radius in continuous coordinates
func (c Circle) Centre() (x, y, r float64) {
	return float64(c.CX) + 0.5, float64(c.CY) + 0.5, float64(c.R) + 0.5
}

// Contains implements Shape
func (c Circle) Contains(x, y int) bool {
	cx, cy, r := c.Centre()
	dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
	return dx*dx+dy*dy <= r*r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
