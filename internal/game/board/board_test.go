package board

import "testing"

func TestQuadrantOf(t *testing.T) {
	cases := []struct {
		pos  Position
		want Quadrant
	}{
		{Position{0, 0}, 0},
		{Position{2, 2}, 0},
		{Position{3, 0}, 1},
		{Position{5, 2}, 1},
		{Position{0, 3}, 2},
		{Position{2, 5}, 2},
		{Position{3, 3}, 3},
		{Position{5, 5}, 3},
	}
	for _, c := range cases {
		if got := QuadrantOf(c.pos); got != c.want {
			t.Errorf("QuadrantOf(%v) = %d, want %d", c.pos, got, c.want)
		}
	}
}

func TestCenter(t *testing.T) {
	want := [NumQuadrants]Position{
		{1, 1}, {4, 1}, {1, 4}, {4, 4},
	}
	for q := Quadrant(0); q < NumQuadrants; q++ {
		if got := Center(q); got != want[q] {
			t.Errorf("Center(%d) = %v, want %v", q, got, want[q])
		}
	}
}

func TestLocalPosition(t *testing.T) {
	cases := []struct {
		pos    Position
		q      Quadrant
		lx, ly int
	}{
		{Position{0, 0}, 0, 0, 0},
		{Position{2, 1}, 0, 2, 1},
		{Position{3, 0}, 1, 0, 0},
		{Position{5, 2}, 1, 2, 2},
		{Position{1, 4}, 2, 1, 1},
		{Position{4, 4}, 3, 1, 1},
		{Position{5, 5}, 3, 2, 2},
	}
	for _, c := range cases {
		lx, ly := LocalPosition(c.pos, c.q)
		if lx != c.lx || ly != c.ly {
			t.Errorf("LocalPosition(%v, %d) = (%d, %d), want (%d, %d)", c.pos, c.q, lx, ly, c.lx, c.ly)
		}
	}
}

func TestQuadrantNeighbor(t *testing.T) {
	type key struct {
		q Quadrant
		d Direction
	}
	want := map[key]Quadrant{
		{0, DirectionRight}: 1,
		{0, DirectionDown}:  2,
		{1, DirectionLeft}:  0,
		{1, DirectionDown}:  3,
		{2, DirectionUp}:    0,
		{2, DirectionRight}: 3,
		{3, DirectionUp}:    1,
		{3, DirectionLeft}:  2,
	}
	for q := Quadrant(0); q < NumQuadrants; q++ {
		for _, d := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
			got, ok := QuadrantNeighbor(q, d)
			expect, exists := want[key{q, d}]
			if ok != exists {
				t.Errorf("QuadrantNeighbor(%d, %s): present = %v, want %v", q, d, ok, exists)
				continue
			}
			if ok && got != expect {
				t.Errorf("QuadrantNeighbor(%d, %s) = %d, want %d", q, d, got, expect)
			}
		}
	}
}

func TestNeighborInterior(t *testing.T) {
	cases := []struct {
		d    Direction
		want Position
	}{
		{DirectionUp, Position{2, 1}},
		{DirectionDown, Position{2, 3}},
		{DirectionLeft, Position{1, 2}},
		{DirectionRight, Position{3, 2}},
	}
	for _, c := range cases {
		got, ok := Neighbor(Position{2, 2}, c.d)
		if !ok || got != c.want {
			t.Errorf("Neighbor((2, 2), %s) = %v, %v; want %v, true", c.d, got, ok, c.want)
		}
	}
}

func TestNeighborEdges(t *testing.T) {
	cases := []struct {
		pos Position
		d   Direction
	}{
		{Position{0, 0}, DirectionUp},
		{Position{0, 0}, DirectionLeft},
		{Position{5, 5}, DirectionDown},
		{Position{5, 5}, DirectionRight},
		{Position{3, 0}, DirectionUp},
		{Position{0, 3}, DirectionLeft},
	}
	for _, c := range cases {
		if _, ok := Neighbor(c.pos, c.d); ok {
			t.Errorf("Neighbor(%v, %s): expected no neighbor off-board", c.pos, c.d)
		}
	}
}

func TestBoardClone(t *testing.T) {
	white := Player{Name: "White", Color: "#ffffff"}
	b := Board{Position{0, 0}: white}
	clone := b.Clone()
	clone[Position{1, 1}] = white
	if len(b) != 1 {
		t.Errorf("mutating a clone changed the original: %d cells", len(b))
	}
	if len(clone) != 2 {
		t.Errorf("expected 2 cells in clone, got %d", len(clone))
	}
}
