// Package level loads dungeon level descriptions into a grid and a player.
package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

var (
	// ErrMalformed is returned when a level description cannot be parsed.
	ErrMalformed = errors.New("malformed level")
	// ErrNotFound is returned when a source has no level with the requested number.
	ErrNotFound = errors.New("level not found")
)

// Level is a parsed dungeon level ready to play.
type Level struct {
	Number int
	Grid   *world.Grid
	Player *entity.Player
}

// Parse reads a level description:
//
//	<height> <width>
//	<start row> <start col>
//	<height*width tile glyphs, packed per row or whitespace separated>
//
// The start cell always becomes the player; any other player glyph is cleared
// so the level holds exactly one player. Content after the last cell is ignored.
func Parse(r io.Reader) (*Level, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	header := make([]int, 4)
	names := []string{"height", "width", "start row", "start col"}
	for i := range header {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("read level: %w", err)
			}
			return nil, fmt.Errorf("%w: missing %s", ErrMalformed, names[i])
		}
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: invalid %s %q", ErrMalformed, names[i], scanner.Text())
		}
		header[i] = v
	}
	height, width := header[0], header[1]
	start := world.Pos{Row: header[2], Col: header[3]}

	grid, err := world.NewGrid(height, width)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if !grid.InBounds(start) {
		grid.Release()
		return nil, fmt.Errorf("%w: start %v outside %dx%d grid", ErrMalformed, start, height, width)
	}

	total := height * width
	filled := 0
	for filled < total && scanner.Scan() {
		for _, ch := range scanner.Text() {
			if filled == total {
				break
			}
			tile, err := world.ParseTile(ch)
			if err != nil {
				grid.Release()
				return nil, fmt.Errorf("%w: cell %d: %w", ErrMalformed, filled, err)
			}
			if tile == world.TilePlayer {
				tile = world.TileOpen
			}
			grid.Set(world.Pos{Row: filled / width, Col: filled % width}, tile)
			filled++
		}
	}
	if err := scanner.Err(); err != nil {
		grid.Release()
		return nil, fmt.Errorf("read level: %w", err)
	}
	if filled < total {
		grid.Release()
		return nil, fmt.Errorf("%w: got %d of %d cells", ErrMalformed, filled, total)
	}

	grid.Set(start, world.TilePlayer)

	return &Level{
		Grid:   grid,
		Player: entity.NewPlayer(start.Row, start.Col),
	}, nil
}

// ParseString parses a level held in memory.
func ParseString(s string) (*Level, error) {
	return Parse(strings.NewReader(s))
}

// Format writes the level back in the form Parse reads, one grid row per line.
func Format(lvl *Level) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d\n", lvl.Grid.Height(), lvl.Grid.Width())
	fmt.Fprintf(&sb, "%d %d\n", lvl.Player.Row, lvl.Player.Col)
	for _, row := range lvl.Grid.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Name returns the conventional file name for level n.
func Name(n int) string {
	return "level" + strconv.Itoa(n) + ".txt"
}

// Number extracts n from a name produced by Name, reporting false otherwise.
func Number(name string) (int, bool) {
	rest, ok := strings.CutPrefix(name, "level")
	if !ok {
		return 0, false
	}
	rest, ok = strings.CutSuffix(rest, ".txt")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
