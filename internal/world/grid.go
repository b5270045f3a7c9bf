package world

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

// MaxCells caps the number of cells a single grid may hold.
const MaxCells = 1 << 22

var (
	// ErrGridAllocation is returned when a grid cannot be allocated.
	ErrGridAllocation = errors.New("grid allocation failed")
	// ErrGridReleased is the panic value for access to a released grid.
	ErrGridReleased = errors.New("grid used after release")
)

// Grid is the rectangular tile map for one dungeon level.
type Grid struct {
	height int
	width  int
	cells  [][]Tile
}

// NewGrid creates a height x width grid filled with open tiles.
// Every row is allocated separately so no two rows share storage.
func NewGrid(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrGridAllocation, height, width)
	}
	if height > MaxCells/width {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrGridAllocation, height, width, MaxCells)
	}

	cells := make([][]Tile, height)
	for row := range cells {
		cells[row] = make([]Tile, width)
		for col := range cells[row] {
			cells[row][col] = TileOpen
		}
	}

	return &Grid{
		height: height,
		width:  width,
		cells:  cells,
	}, nil
}

// Release drops the grid's storage. The grid must not be used afterwards;
// calling Release again is a no-op.
func (g *Grid) Release() {
	if g.cells == nil {
		return
	}
	for row := range g.cells {
		g.cells[row] = nil
	}
	g.cells = nil
	g.height = 0
	g.width = 0
}

// Released reports whether Release has been called.
func (g *Grid) Released() bool {
	return g.cells == nil
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// InBounds returns true if p addresses a cell of the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// At returns the tile at p. p must be in bounds.
func (g *Grid) At(p Pos) Tile {
	g.mustBeLive()
	return g.cells[p.Row][p.Col]
}

// Set stores t at p. p must be in bounds.
func (g *Grid) Set(p Pos, t Tile) {
	g.mustBeLive()
	g.cells[p.Row][p.Col] = t
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == t {
				n++
			}
		}
	}
	return n
}

// Find returns the first position holding t in row-major order.
func (g *Grid) Find(t Tile) (Pos, bool) {
	for r, row := range g.cells {
		for c, cell := range row {
			if cell == t {
				return Pos{Row: r, Col: c}, true
			}
		}
	}
	return Pos{}, false
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	g.mustBeLive()
	cells := make([][]Tile, g.height)
	for r := range cells {
		cells[r] = make([]Tile, g.width)
		copy(cells[r], g.cells[r])
	}
	return &Grid{height: g.height, width: g.width, cells: cells}
}

// Rows renders each row as a string of tile glyphs.
func (g *Grid) Rows() []string {
	rows := make([]string, 0, g.height)
	var sb strings.Builder
	for _, row := range g.cells {
		sb.Reset()
		for _, cell := range row {
			sb.WriteRune(cell.Glyph())
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Resize returns a grid with both dimensions doubled. The top-left quadrant is an
// exact copy of g; the other three quadrants repeat g with the player erased, so
// the player appears only once. g is released before returning.
func (g *Grid) Resize(ctx context.Context) (*Grid, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "grid.resize")
	defer span.End()

	g.mustBeLive()
	height, width := g.height, g.width

	grown, err := NewGrid(height*2, width*2)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("resize %dx%d: %w", height, width, err)
	}

	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			tile := g.cells[r][c]
			grown.cells[r][c] = tile

			if tile == TilePlayer {
				tile = TileOpen
			}
			grown.cells[r][c+width] = tile
			grown.cells[r+height][c] = tile
			grown.cells[r+height][c+width] = tile
		}
	}

	g.Release()

	span.SetAttributes(
		attribute.Int("grid.old_height", height),
		attribute.Int("grid.old_width", width),
		attribute.Int("grid.height", grown.height),
		attribute.Int("grid.width", grown.width),
	)

	return grown, nil
}

func (g *Grid) mustBeLive() {
	if g.cells == nil {
		panic(ErrGridReleased)
	}
}
