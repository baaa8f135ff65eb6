package ui

import (
	"image/color"
	"math"

	"snake-groove/game"
	"snake-groove/game/manager"
)

// Palette holds the board colours.
type Palette struct {
	Background color.NRGBA
	GridLine   color.NRGBA
	Food       color.NRGBA
	Head       color.NRGBA
	Body       color.NRGBA // alpha is replaced per segment
}

// DefaultPalette is the dark emerald theme.
func DefaultPalette() Palette {
	return Palette{
		Background: color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff},
		GridLine:   color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff},
		Food:       color.NRGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff},
		Head:       color.NRGBA{R: 0x34, G: 0xd3, B: 0x99, A: 0xff},
		Body:       color.NRGBA{R: 16, G: 185, B: 129, A: 0xff},
	}
}

const (
	foodGlow       = 15
	segmentInset   = 1
	minTailOpacity = 0.3
)

// Renderer projects engine frames onto a Surface. It keeps no game state.
type Renderer struct {
	surface Surface
	palette Palette
}

func NewRenderer(surface Surface, palette Palette) *Renderer {
	return &Renderer{
		surface: surface,
		palette: palette,
	}
}

// Draw implements game.View.
func (r *Renderer) Draw(f game.Frame) {
	s := r.surface
	s.Begin()
	defer s.End()

	w, h := s.Size()
	cols, rows := f.Grid.Width, f.Grid.Height
	if cols <= 0 || rows <= 0 {
		s.Clear(r.palette.Background)
		return
	}
	tileW := w / float32(cols)
	tileH := h / float32(rows)

	s.Clear(r.palette.Background)

	for i := 0; i <= cols; i++ {
		x := float32(i) * tileW
		s.Line(x, 0, x, h, 1, r.palette.GridLine)
	}
	for i := 0; i <= rows; i++ {
		y := float32(i) * tileH
		s.Line(0, y, w, y, 1, r.palette.GridLine)
	}

	if f.State == manager.Menu {
		return
	}

	s.SetGlow(foodGlow, r.palette.Food)
	s.FillCircle(
		float32(f.Food.X)*tileW+tileW/2,
		float32(f.Food.Y)*tileH+tileH/2,
		tileW/2.5,
		r.palette.Food,
	)
	s.SetGlow(0, color.NRGBA{})

	n := len(f.Snake)
	for i, seg := range f.Snake {
		c := r.palette.Head
		if i > 0 {
			c = withOpacity(r.palette.Body, SegmentOpacity(i, n))
		}
		s.FillRect(
			float32(seg.X)*tileW+segmentInset,
			float32(seg.Y)*tileH+segmentInset,
			tileW-2*segmentInset,
			tileH-2*segmentInset,
			c,
		)
	}
}

// SegmentOpacity fades body segments toward the tail, never below 0.3.
func SegmentOpacity(i, n int) float64 {
	if n <= 0 {
		return 1
	}
	return math.Max(minTailOpacity, 1-float64(i)/float64(n))
}

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(math.Round(opacity * 255))
	return c
}
