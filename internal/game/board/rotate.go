package board

// A quarter-turn moves the 8 ring cells around a quadrant center one
// notch along a single 8-cycle and leaves the center fixed. The cycle
// is materialized as one lookup table per quadrant so the permutation
// is closed by construction instead of being recomputed per move.

// ringCycle maps each ring offset from the center to its clockwise
// destination offset: N→E, E→S, S→W, W→N, NW→NE, NE→SE, SE→SW, SW→NW.
// Y grows downward, so clockwise is clockwise on screen.
var ringCycle = map[[2]int][2]int{
	{0, -1}:  {1, 0},
	{1, 0}:   {0, 1},
	{0, 1}:   {-1, 0},
	{-1, 0}:  {0, -1},
	{-1, -1}: {1, -1},
	{1, -1}:  {1, 1},
	{1, 1}:   {-1, 1},
	{-1, 1}:  {-1, -1},
}

var (
	rightPerm [NumQuadrants]map[Position]Position
	leftPerm  [NumQuadrants]map[Position]Position
)

func init() {
	for q := Quadrant(0); q < NumQuadrants; q++ {
		c := Center(q)
		right := make(map[Position]Position, QuadrantSize*QuadrantSize)
		left := make(map[Position]Position, QuadrantSize*QuadrantSize)
		right[c] = c
		left[c] = c
		for src, dst := range ringCycle {
			s := Position{X: c.X + src[0], Y: c.Y + src[1]}
			d := Position{X: c.X + dst[0], Y: c.Y + dst[1]}
			right[s] = d
			left[d] = s
		}
		rightPerm[q] = right
		leftPerm[q] = left
	}
}

// Rotate returns a new board with quadrant q turned one notch in the
// given direction. Cells outside the quadrant's 9-cell footprint are
// copied unchanged; the input board is never mutated. The result holds
// exactly the same multiset of owners as the input.
func Rotate(b Board, q Quadrant, r Rotation) Board {
	perm := rightPerm[q]
	if r == RotationLeft {
		perm = leftPerm[q]
	}
	nb := make(Board, len(b))
	for p, owner := range b {
		if dst, ok := perm[p]; ok {
			nb[dst] = owner
		} else {
			nb[p] = owner
		}
	}
	return nb
}
