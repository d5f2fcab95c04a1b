package vmath

import "math"

// RectF is an axis-aligned rectangle, X/Y is the top-left corner
type RectF struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge
func (r RectF) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r RectF) Bottom() float64 { return r.Y + r.Height }

// RectInset shrinks r by dx on the left and right and dy on the top and bottom
func RectInset(r RectF, dx, dy float64) RectF {
	return RectF{
		X:      r.X + dx,
		Y:      r.Y + dy,
		Width:  r.Width - 2*dx,
		Height: r.Height - 2*dy,
	}
}

// RectsOverlap reports whether a and b share interior or boundary area
// Touching edges count as overlap so a zero-width swept span lying on a hitbox edge still registers
func RectsOverlap(a, b RectF) bool {
	return a.X <= b.Right() && a.Right() >= b.X &&
		a.Y <= b.Bottom() && a.Bottom() >= b.Y
}

// SweptSpanX builds the rectangle covered horizontally between two x positions at fixed y
// Left edge is the smaller x, width is the absolute distance travelled
func SweptSpanX(prevX, currX, y, height float64) RectF {
	return RectF{
		X:      math.Min(prevX, currX),
		Y:      y,
		Width:  math.Abs(currX - prevX),
		Height: height,
	}
}
