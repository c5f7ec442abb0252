package common

import "image"

type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Image rounds the rectangle to integer pixel bounds.
func (r Rect) Image() image.Rectangle {
	x0 := int(r.X + 0.5)
	y0 := int(r.Y + 0.5)
	x1 := int(r.Right() + 0.5)
	y1 := int(r.Bottom() + 0.5)
	return image.Rect(x0, y0, x1, y1)
}
