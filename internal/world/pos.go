package world

import (
	"fmt"
	"iter"
)

// Pos is a (row, col) cell coordinate. Row grows downward.
type Pos struct {
	Row, Col int
}

// String returns the coordinate as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p offset by the given deltas.
func (p Pos) Add(dRow, dCol int) Pos {
	return Pos{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Step returns the neighbouring position in direction d.
func (p Pos) Step(d Direction) Pos {
	dRow, dCol := d.Delta()
	return p.Add(dRow, dCol)
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the cardinal directions in scan order.
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the (row, col) change for one step in d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the direction facing back along d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Ray yields the cells walking outward from origin in direction d, starting one
// step away and stopping at the grid edge. The origin itself is never yielded, so
// an origin on the edge facing off the grid yields nothing.
func (g *Grid) Ray(origin Pos, d Direction) iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for p := origin.Step(d); g.InBounds(p); p = p.Step(d) {
			if !yield(p) {
				return
			}
		}
	}
}
