package rules

import (
	"testing"

	"github.com/openpentago/pentago-server-go/internal/game/board"
)

var (
	white = board.Player{Name: "White", Color: "#ffffff"}
	black = board.Player{Name: "Black", Color: "#000000"}
)

// recorder collects every event of the given types posted on the bus.
type recorder struct {
	events []Event
}

func record(bus *Bus, types ...EventType) *recorder {
	r := &recorder{}
	wanted := make(map[EventType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}
	bus.Subscribe(func(e Event) {
		if len(wanted) == 0 || wanted[e.Type] {
			r.events = append(r.events, e)
		}
	})
	return r
}

func (r *recorder) count(eventType EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

func (r *recorder) last() Event {
	return r.events[len(r.events)-1]
}

func TestCellCursorPlaceStartsAtCenter(t *testing.T) {
	bus := NewBus()
	c := NewCellCursor(bus, nil)
	rec := record(bus, EventCellCursorPlaced)

	c.Place(white)

	if rec.count(EventCellCursorPlaced) != 1 {
		t.Fatalf("expected one Placed event, got %d", rec.count(EventCellCursorPlaced))
	}
	snap := rec.last().Cursor
	if !snap.Active || snap.Player != white || snap.Cell != (board.Position{X: 2, Y: 2}) {
		t.Errorf("unexpected snapshot after place: %+v", snap)
	}

	// Placing while already active is a no-op.
	c.Place(black)
	if rec.count(EventCellCursorPlaced) != 1 {
		t.Error("place while active must not emit another Placed event")
	}
	if c.Snapshot().Player != white {
		t.Error("place while active must not change the owner")
	}
}

func TestCellCursorMove(t *testing.T) {
	bus := NewBus()
	c := NewCellCursor(bus, nil)
	rec := record(bus, EventCellCursorMoved)

	// Inactive cursor ignores moves.
	c.Move(board.DirectionUp)
	if len(rec.events) != 0 {
		t.Fatal("inactive cursor must not emit Moved events")
	}

	c.Place(white)
	c.Move(board.DirectionRight)
	if got := c.Snapshot().Cell; got != (board.Position{X: 3, Y: 2}) {
		t.Errorf("expected cursor at (3, 2), got %v", got)
	}
	if rec.count(EventCellCursorMoved) != 1 {
		t.Errorf("expected one Moved event, got %d", rec.count(EventCellCursorMoved))
	}

	// Walking off the edge changes nothing and stays silent.
	for i := 0; i < 10; i++ {
		c.Move(board.DirectionUp)
	}
	if got := c.Snapshot().Cell; got != (board.Position{X: 3, Y: 0}) {
		t.Errorf("expected cursor pinned at (3, 0), got %v", got)
	}
	if rec.count(EventCellCursorMoved) != 3 {
		t.Errorf("expected 3 Moved events, got %d", rec.count(EventCellCursorMoved))
	}
}

func TestCellCursorSelect(t *testing.T) {
	bus := NewBus()
	c := NewCellCursor(bus, nil)
	rec := record(bus, EventCellCursorSelected)

	// Select on an inactive cursor never posts.
	c.Select()
	if len(rec.events) != 0 {
		t.Fatal("inactive cursor must not emit Selected events")
	}

	c.Place(white)
	c.Select()
	if rec.count(EventCellCursorSelected) != 1 {
		t.Fatalf("expected one Selected event, got %d", rec.count(EventCellCursorSelected))
	}
	if rec.last().Cursor.Cell != (board.Position{X: 2, Y: 2}) {
		t.Errorf("selected cell should be the start cell, got %v", rec.last().Cursor.Cell)
	}
	if c.Snapshot().Active {
		t.Error("select must deactivate the cursor")
	}
}

func TestCellCursorHide(t *testing.T) {
	bus := NewBus()
	c := NewCellCursor(bus, nil)
	rec := record(bus, EventCellCursorHidden)

	// Hiding an inactive cursor is a no-op.
	c.Hide()
	if len(rec.events) != 0 {
		t.Fatal("hide on an inactive cursor must not emit events")
	}

	// Hiding an active cursor deactivates it and notifies once.
	c.Place(white)
	c.Hide()
	if rec.count(EventCellCursorHidden) != 1 {
		t.Fatalf("expected one Hidden event, got %d", rec.count(EventCellCursorHidden))
	}
	if c.Snapshot().Active {
		t.Error("hide must deactivate an active cursor")
	}
	c.Hide()
	if rec.count(EventCellCursorHidden) != 1 {
		t.Error("second hide must be a no-op")
	}
}

func TestBlockCursorMoveFollowsQuadrantTopology(t *testing.T) {
	bus := NewBus()
	c := NewBlockCursor(bus, nil)
	rec := record(bus, EventBlockCursorMoved)

	c.Place(white)
	if c.Snapshot().Quadrant != 0 {
		t.Fatalf("block cursor must start on quadrant 0, got %d", c.Snapshot().Quadrant)
	}

	// No wraparound: moving up or left from quadrant 0 does nothing.
	c.Move(board.DirectionUp)
	c.Move(board.DirectionLeft)
	if len(rec.events) != 0 {
		t.Fatal("edge moves must stay silent")
	}

	c.Move(board.DirectionRight)
	if c.Snapshot().Quadrant != 1 {
		t.Errorf("expected quadrant 1, got %d", c.Snapshot().Quadrant)
	}
	c.Move(board.DirectionDown)
	if c.Snapshot().Quadrant != 3 {
		t.Errorf("expected quadrant 3, got %d", c.Snapshot().Quadrant)
	}
	c.Move(board.DirectionLeft)
	if c.Snapshot().Quadrant != 2 {
		t.Errorf("expected quadrant 2, got %d", c.Snapshot().Quadrant)
	}
	c.Move(board.DirectionUp)
	if c.Snapshot().Quadrant != 0 {
		t.Errorf("expected quadrant 0, got %d", c.Snapshot().Quadrant)
	}
	if rec.count(EventBlockCursorMoved) != 4 {
		t.Errorf("expected 4 Moved events, got %d", rec.count(EventBlockCursorMoved))
	}
}

func TestDirectionCursorRequiresAChoice(t *testing.T) {
	bus := NewBus()
	c := NewDirectionCursor(bus, nil)
	rec := record(bus, EventDirectionCursorSelected, EventDirectionCursorMoved)

	c.Place(white)
	if c.Snapshot().Rotation != board.RotationNone {
		t.Fatalf("direction must start unset, got %s", c.Snapshot().Rotation)
	}

	// Confirming before choosing a direction is a no-op.
	c.Select()
	if rec.count(EventDirectionCursorSelected) != 0 {
		t.Fatal("select without a chosen direction must not post")
	}
	if !c.Snapshot().Active {
		t.Fatal("failed select must leave the cursor active")
	}

	// Up and down are not rotation directions.
	c.Move(board.DirectionUp)
	c.Move(board.DirectionDown)
	if rec.count(EventDirectionCursorMoved) != 0 {
		t.Fatal("vertical input must be ignored")
	}

	c.Move(board.DirectionLeft)
	if c.Snapshot().Rotation != board.RotationLeft {
		t.Errorf("expected rotation LEFT, got %s", c.Snapshot().Rotation)
	}

	// Repeating the same direction still notifies: the view redraws
	// its indicator on every Moved event.
	c.Move(board.DirectionLeft)
	if rec.count(EventDirectionCursorMoved) != 2 {
		t.Errorf("expected 2 Moved events, got %d", rec.count(EventDirectionCursorMoved))
	}

	c.Select()
	if rec.count(EventDirectionCursorSelected) != 1 {
		t.Fatalf("expected one Selected event, got %d", rec.count(EventDirectionCursorSelected))
	}
	if rec.last().Cursor.Rotation != board.RotationLeft {
		t.Errorf("selected rotation should be LEFT, got %s", rec.last().Cursor.Rotation)
	}
	if c.Snapshot().Active {
		t.Error("select must deactivate the cursor")
	}
}
