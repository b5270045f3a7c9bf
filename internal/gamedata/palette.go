package gamedata

import (
	"encoding/json"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// TileStyleDef defines how one tile is drawn, loaded from JSON.
type TileStyleDef struct {
	Tile  string `json:"tile"`  // Tile name as returned by world.Tile.String (e.g., "monster")
	Color string `json:"color"` // Hex color code (e.g., "#FF3030")
	Bold  bool   `json:"bold"`  // Draw the glyph in bold
}

// PaletteFile represents the structure of tiles.json.
type PaletteFile struct {
	Tiles []TileStyleDef `json:"tiles"`
}

// Palette maps tiles to their screen style.
type Palette struct {
	styles map[world.Tile]tcell.Style
}

// NewPalette builds a palette from tile style definitions.
func NewPalette(defs []TileStyleDef) (*Palette, error) {
	byName := make(map[string]world.Tile, len(world.Tiles))
	for _, t := range world.Tiles {
		byName[t.String()] = t
	}

	p := &Palette{styles: make(map[world.Tile]tcell.Style, len(defs))}
	for _, def := range defs {
		tile, ok := byName[def.Tile]
		if !ok {
			return nil, fmt.Errorf("unknown tile %q in palette", def.Tile)
		}
		color, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", def.Tile, err)
		}
		p.styles[tile] = tcell.StyleDefault.Foreground(color).Bold(def.Bold)
	}
	return p, nil
}

// LoadPalette loads the tile palette from the embedded tiles.json file.
func LoadPalette() (*Palette, error) {
	file, err := load[PaletteFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(file.Tiles)
}

// Style returns the style for a tile, or the default style if the palette has none.
func (p *Palette) Style(t world.Tile) tcell.Style {
	if style, ok := p.styles[t]; ok {
		return style
	}
	return tcell.StyleDefault
}

// Len returns the number of tiles with a defined style.
func (p *Palette) Len() int {
	return len(p.styles)
}

// load reads and unmarshals a JSON file from the embedded filesystem.
func load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded %s: %w", filename, err)
	}
	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse %s: %w", filename, err)
	}
	return result, nil
}
