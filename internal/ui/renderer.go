package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

const helpLine = "w/a/s/d or arrows: move   e: wait   q: quit"

// Status is the information shown under the map.
type Status struct {
	Level    int
	Treasure int
	Turns    int
	Message  string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the grid and status lines to the screen.
func (r *Renderer) Render(grid *world.Grid, status Status) {
	r.screen.Clear()

	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			tile := grid.At(world.Pos{Row: row, Col: col})
			r.screen.SetContent(col, row, tile.Glyph(), r.palette.Style(tile))
		}
	}

	y := grid.Height() + 1
	info := fmt.Sprintf("Level %d   Treasure %d   Turn %d", status.Level, status.Treasure, status.Turns)
	r.screen.DrawText(0, y, info, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	if status.Message != "" {
		r.screen.DrawText(0, y+1, status.Message, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	r.screen.DrawText(0, y+3, helpLine, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// RenderMessage displays a message at row y, leaving the rest of the screen as is.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	r.screen.Show()
}
