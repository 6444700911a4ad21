package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

const (
	cellWidth = 2 // terminal columns per board cell, so cells look square
	hudHeight = 2 // status line + separator
)

const tooSmallTitle = "Window too small"

// Overlay is a two-line message drawn over the board once the game is over.
type Overlay struct {
	Title  string
	Prompt string
}

// GameOverOverlay is shown when a played run ends. The prompt names the
// given restart keys.
func GameOverOverlay(restart []string) Overlay {
	over := Overlay{Title: "Game Over! D:"}
	if label := restartLabel(restart); label != "" {
		over.Prompt = fmt.Sprintf("Press '%s' to Try Again! :D", label)
	}
	return over
}

// restartLabel joins the restart keys, folding a lower-case key into its
// upper-case twin when both are bound.
func restartLabel(keys []string) string {
	var shown []string
	for _, k := range keys {
		if up := strings.ToUpper(k); up != k && slices.Contains(keys, up) {
			continue
		}
		shown = append(shown, k)
	}
	return strings.Join(shown, "/")
}

// Theme holds the glyphs and colors used to draw a board.
type Theme struct {
	Head, Body, Food rune

	HeadColor   core.Color
	BodyColor   core.Color
	FoodColor   core.Color
	BorderColor core.Color
}

// ThemeFromConfig converts config glyph strings and color names.
// Empty glyphs fall back to the built-in theme.
func ThemeFromConfig(c config.ThemeConfig) Theme {
	def := DefaultTheme()
	return Theme{
		Head:        firstRune(c.Head, def.Head),
		Body:        firstRune(c.Body, def.Body),
		Food:        firstRune(c.Food, def.Food),
		HeadColor:   core.ParseColor(c.HeadColor),
		BodyColor:   core.ParseColor(c.BodyColor),
		FoodColor:   core.ParseColor(c.FoodColor),
		BorderColor: core.ParseColor(c.BorderColor),
	}
}

// DefaultTheme returns the theme of the embedded config.
func DefaultTheme() Theme {
	return Theme{
		Head:        '@',
		Body:        'o',
		Food:        '*',
		HeadColor:   core.ColorBrightGreen,
		BodyColor:   core.ColorGreen,
		FoodColor:   core.ColorBrightRed,
		BorderColor: core.ColorGray,
	}
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// MinScreenSize returns the terminal size needed to draw the board with its
// border and HUD.
func MinScreenSize(b snake.Board) (w, h int) {
	return b.Width*cellWidth + 2, b.Height + 2 + hudHeight
}

// boardRect places the bordered board below the HUD, centered horizontally.
func boardRect(dst *core.Screen, width, height int) core.Rect {
	w, h := width*cellWidth+2, height+2
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, h)
}

// DrawBoard clears dst and draws the HUD and the board for snap, with over on
// top when the game has ended.
func DrawBoard(dst *core.Screen, snap snake.Snapshot, theme Theme, title string, over Overlay) {
	dst.Clear()

	drawHUD(dst, snap, title)

	frame := boardRect(dst, snap.Width, snap.Height)
	if !dst.Bounds().Inside(frame) {
		w, h := MinScreenSize(snake.Board{Width: snap.Width, Height: snap.Height})
		drawOverlay(dst, tooSmallTitle, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
		return
	}

	dst.DrawBox(frame, theme.BorderColor)

	if snap.HasFood {
		drawCell(dst, frame, snap.Food, theme.Food, theme.FoodColor)
	}
	// Head drawn last.
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		if i == 0 {
			drawCell(dst, frame, snap.Segments[i], theme.Head, theme.HeadColor)
		} else {
			drawCell(dst, frame, snap.Segments[i], theme.Body, theme.BodyColor)
		}
	}

	if snap.GameOver && over.Title != "" {
		drawOverlay(dst, over.Title, over.Prompt)
	}
}

// drawCell fills both columns of a board cell. Cells outside the board are skipped.
func drawCell(dst *core.Screen, frame core.Rect, p snake.Position, r rune, c core.Color) {
	if p.X < 0 || p.Y < 0 || p.X >= (frame.W-2)/cellWidth || p.Y >= frame.H-2 {
		return
	}
	x := frame.X + 1 + p.X*cellWidth
	y := frame.Y + 1 + p.Y
	for i := 0; i < cellWidth; i++ {
		dst.SetColored(x+i, y, r, c)
	}
}

func drawHUD(dst *core.Screen, snap snake.Snapshot, title string) {
	status := "running"
	if snap.GameOver {
		status = "over (" + snap.Outcome.String() + ")"
	}
	hud := fmt.Sprintf(" %s  Length: %d  Heading: %s  Tick: %d  %s",
		title, snap.Length(), snap.Direction, snap.Tick, status)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// drawOverlay draws a boxed two-line message centered on the screen.
func drawOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
