// Package desktop hosts the engine in a raylib window.
package desktop

import (
	"errors"
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibSurface draws into an off-screen render texture that keeps the
// last frame until it is redrawn.
type RaylibSurface struct {
	target    rl.RenderTexture2D
	size      int32
	glow      float32
	glowColor rl.Color
}

// NewRaylibSurface needs an open window.
func NewRaylibSurface(size int32) (*RaylibSurface, error) {
	if size <= 0 {
		return nil, fmt.Errorf("desktop: invalid canvas size %d", size)
	}
	if !rl.IsWindowReady() {
		return nil, errors.New("desktop: window not initialised")
	}
	target := rl.LoadRenderTexture(size, size)
	if target.ID == 0 {
		return nil, fmt.Errorf("desktop: could not create %dx%d render texture", size, size)
	}
	rl.SetTextureFilter(target.Texture, rl.FilterBilinear)
	return &RaylibSurface{target: target, size: size}, nil
}

func toRL(c color.NRGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (s *RaylibSurface) Size() (float32, float32) {
	return float32(s.size), float32(s.size)
}

func (s *RaylibSurface) Begin() {
	rl.BeginTextureMode(s.target)
}

func (s *RaylibSurface) End() {
	rl.EndTextureMode()
}

func (s *RaylibSurface) Clear(c color.NRGBA) {
	rl.ClearBackground(toRL(c))
}

func (s *RaylibSurface) FillRect(x, y, w, h float32, c color.NRGBA) {
	if s.glow > 0 {
		halo := s.glowColor
		halo.A /= 3
		rl.DrawRectangleRec(rl.Rectangle{X: x - s.glow/2, Y: y - s.glow/2, Width: w + s.glow, Height: h + s.glow}, halo)
	}
	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, toRL(c))
}

func (s *RaylibSurface) FillCircle(cx, cy, r float32, c color.NRGBA) {
	if s.glow > 0 {
		inner := s.glowColor
		inner.A = uint8(float32(inner.A) * 0.6)
		outer := s.glowColor
		outer.A = 0
		rl.DrawCircleGradient(int32(cx), int32(cy), r+s.glow, inner, outer)
	}
	rl.DrawCircleV(rl.Vector2{X: cx, Y: cy}, r, toRL(c))
}

func (s *RaylibSurface) Line(x1, y1, x2, y2, width float32, c color.NRGBA) {
	rl.DrawLineEx(rl.Vector2{X: x1, Y: y1}, rl.Vector2{X: x2, Y: y2}, width, toRL(c))
}

func (s *RaylibSurface) SetGlow(blur float32, c color.NRGBA) {
	s.glow = blur
	s.glowColor = toRL(c)
}

// Present scales the canvas into dst on the screen. Call between
// rl.BeginDrawing and rl.EndDrawing.
func (s *RaylibSurface) Present(dst rl.Rectangle) {
	// Render textures are stored upside down.
	src := rl.Rectangle{
		X:      0,
		Y:      0,
		Width:  float32(s.size),
		Height: -float32(s.size),
	}
	rl.DrawTexturePro(s.target.Texture, src, dst, rl.Vector2{}, 0, rl.White)
}

func (s *RaylibSurface) Unload() {
	rl.UnloadRenderTexture(s.target)
}
