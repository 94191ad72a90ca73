// Package board holds the pure board model for a 6x6 pentago grid:
// cell/quadrant topology, the quadrant rotation permutation, and the
// win/tie detector. Nothing in this package carries state or touches
// the event bus; everything is a total function over small values.
package board

import "fmt"

// Size is the board edge length in cells.
const Size = 6

// QuadrantSize is the edge length of one rotatable quadrant.
const QuadrantSize = 3

// NumQuadrants is the number of rotatable quadrants on the board.
const NumQuadrants = 4

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

var directionNames = map[Direction]string{
	DirectionUp:    "UP",
	DirectionDown:  "DOWN",
	DirectionLeft:  "LEFT",
	DirectionRight: "RIGHT",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DIRECTION_%d", int(d))
}

// Rotation is the direction of a quadrant quarter-turn. RotationNone is
// the "not yet chosen" value used by the rotation cursor.
type Rotation int

const (
	RotationNone Rotation = iota
	RotationLeft
	RotationRight
)

var rotationNames = map[Rotation]string{
	RotationNone:  "NONE",
	RotationLeft:  "LEFT",
	RotationRight: "RIGHT",
}

func (r Rotation) String() string {
	if name, ok := rotationNames[r]; ok {
		return name
	}
	return fmt.Sprintf("ROTATION_%d", int(r))
}

// Position identifies one of the 36 board cells. X grows rightward,
// Y grows downward, both in [0, Size).
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Quadrant identifies one of the four 3x3 blocks:
// 0 = top-left, 1 = top-right, 2 = bottom-left, 3 = bottom-right.
type Quadrant int

// Player is an immutable participant value. Two players exist for a
// game's lifetime; the Color is a display hint for the presentation
// layer, the core never interprets it.
type Player struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Board maps occupied cells to their owners. A key is present exactly
// when the cell holds a marker.
type Board map[Position]Player

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	nb := make(Board, len(b))
	for p, owner := range b {
		nb[p] = owner
	}
	return nb
}

// Full reports whether every cell is occupied.
func (b Board) Full() bool {
	return len(b) == Size*Size
}

// InBounds reports whether p lies on the board.
func InBounds(p Position) bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// QuadrantOf returns the quadrant containing p. The caller must pass an
// in-bounds position.
func QuadrantOf(p Position) Quadrant {
	q := Quadrant(0)
	if p.X >= QuadrantSize {
		q++
	}
	if p.Y >= QuadrantSize {
		q += 2
	}
	return q
}

// Center returns the center cell of a quadrant, the fixed point of its
// rotation.
func Center(q Quadrant) Position {
	c := Position{X: 1, Y: 1}
	if q == 1 || q == 3 {
		c.X += QuadrantSize
	}
	if q >= 2 {
		c.Y += QuadrantSize
	}
	return c
}

// LocalPosition translates p into quadrant-local coordinates, each in
// [0, QuadrantSize).
func LocalPosition(p Position, q Quadrant) (lx, ly int) {
	lx, ly = p.X, p.Y
	if q == 1 || q == 3 {
		lx -= QuadrantSize
	}
	if q >= 2 {
		ly -= QuadrantSize
	}
	return lx, ly
}

// quadrantNeighbors wires the quadrants into a 2x2 grid with no
// wraparound.
var quadrantNeighbors = map[Quadrant]map[Direction]Quadrant{
	0: {DirectionRight: 1, DirectionDown: 2},
	1: {DirectionLeft: 0, DirectionDown: 3},
	2: {DirectionUp: 0, DirectionRight: 3},
	3: {DirectionUp: 1, DirectionLeft: 2},
}

// QuadrantNeighbor returns the quadrant adjacent to q in the given
// direction, or false when q sits on that edge.
func QuadrantNeighbor(q Quadrant, d Direction) (Quadrant, bool) {
	n, ok := quadrantNeighbors[q][d]
	return n, ok
}

// Neighbor returns the cell adjacent to p in the given direction, or
// false when the move would leave the board.
func Neighbor(p Position, d Direction) (Position, bool) {
	switch d {
	case DirectionUp:
		p.Y--
	case DirectionDown:
		p.Y++
	case DirectionLeft:
		p.X--
	case DirectionRight:
		p.X++
	}
	if !InBounds(p) {
		return Position{}, false
	}
	return p, true
}
