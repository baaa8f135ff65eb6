package ui

import "image/color"

// Surface is a fixed-resolution 2D canvas. Coordinates are in canvas
// pixels with the origin at the top left.
type Surface interface {
	Size() (w, h float32)
	Begin()
	End()
	Clear(c color.NRGBA)
	FillRect(x, y, w, h float32, c color.NRGBA)
	FillCircle(cx, cy, r float32, c color.NRGBA)
	Line(x1, y1, x2, y2, width float32, c color.NRGBA)
	// SetGlow applies a halo of the given blur radius to fills drawn after
	// it. A radius of 0 turns the halo off.
	SetGlow(blur float32, c color.NRGBA)
}
