package desktop

import (
	"fmt"

	"snake-groove/game/manager"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const HUDHeight = 56

var (
	hudBackground = rl.Color{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff}
	hudMuted      = rl.Color{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	hudAccent     = rl.Color{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	hudDanger     = rl.Color{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	overlayShade  = rl.Color{R: 0, G: 0, B: 0, A: 204}
)

// Status is the read-only engine state the HUD shows.
type Status interface {
	Score() int
	HighScore() int
	State() manager.State
}

// DrawHUD draws the score header above the board and the state overlay on
// top of it. board is the on-screen rectangle the canvas was presented in.
func DrawHUD(st Status, board rl.Rectangle) {
	width := int32(rl.GetScreenWidth())
	rl.DrawRectangle(0, 0, width, HUDHeight, hudBackground)

	rl.DrawText("SCORE", 12, 8, 10, hudMuted)
	rl.DrawText(fmt.Sprintf("%d", st.Score()), 12, 22, 24, hudAccent)

	best := fmt.Sprintf("%d", st.HighScore())
	bestW := rl.MeasureText(best, 24)
	labelW := rl.MeasureText("HIGH SCORE", 10)
	rl.DrawText("HIGH SCORE", width-12-labelW, 8, 10, hudMuted)
	rl.DrawText(best, width-12-bestW, 22, 24, rl.White)

	var title, hint string
	titleColor := rl.White
	switch st.State() {
	case manager.Playing:
		return
	case manager.Menu:
		title, hint = "Ready to Play?", "Arrows or WASD to move, SPACE to start"
	case manager.Paused:
		title, hint = "Paused", "SPACE to resume"
	case manager.GameOver:
		title = "Game Over"
		hint = fmt.Sprintf("You scored %d points. SPACE to play again", st.Score())
		titleColor = hudDanger
	}

	rl.DrawRectangleRec(board, overlayShade)
	cx := int32(board.X + board.Width/2)
	cy := int32(board.Y + board.Height/2)
	titleW := rl.MeasureText(title, 32)
	rl.DrawText(title, cx-titleW/2, cy-32, 32, titleColor)
	hintW := rl.MeasureText(hint, 16)
	rl.DrawText(hint, cx-hintW/2, cy+12, 16, hudMuted)
}
