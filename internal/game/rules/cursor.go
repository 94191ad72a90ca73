package rules

import (
	"go.uber.org/zap"

	"github.com/openpentago/pentago-server-go/internal/game/board"
)

// cellCursorStart is where the cell cursor appears when placed.
var cellCursorStart = board.Position{X: 2, Y: 2}

// blockCursorStart is the quadrant the block cursor appears on.
const blockCursorStart = board.Quadrant(0)

// The three cursors share one lifecycle: Place activates the cursor
// for the player whose turn it is and resets the selection to its
// start value, Move adjusts the selection against the board topology,
// Select deactivates the cursor and reports the selection, and Hide
// deactivates without selecting. Hide is a no-op when the cursor is
// already inactive, as are Move and Select while inactive. Each cursor
// subscribes to the phase notifications and activates itself for the
// phase it serves.

// CellCursor selects the cell for the next marker placement.
type CellCursor struct {
	bus    *Bus
	logger *zap.Logger

	active bool
	player board.Player
	cell   board.Position
}

// NewCellCursor creates a cell cursor subscribed to the bus.
func NewCellCursor(bus *Bus, logger *zap.Logger) *CellCursor {
	c := &CellCursor{bus: bus, logger: logger}
	bus.Subscribe(c.handleEvent)
	return c
}

func (c *CellCursor) handleEvent(event Event) {
	switch event.Type {
	case EventAwaitingMove:
		c.Place(event.Player)
	case EventAwaitingBlockSelection, EventAwaitingRotation, EventGameFinished:
		c.Hide()
	}
}

func (c *CellCursor) snapshot() CursorSnapshot {
	return CursorSnapshot{Active: c.active, Player: c.player, Cell: c.cell}
}

// Snapshot returns the cursor's current state.
func (c *CellCursor) Snapshot() CursorSnapshot {
	return c.snapshot()
}

func (c *CellCursor) post(eventType EventType) {
	evt := NewEvent(eventType)
	evt.Player = c.player
	evt.Cursor = c.snapshot()
	c.bus.Post(evt)
}

// Place activates the cursor for player at the start cell. No-op while
// already active.
func (c *CellCursor) Place(player board.Player) {
	if c.active {
		return
	}
	c.active = true
	c.player = player
	c.cell = cellCursorStart
	if c.logger != nil {
		c.logger.Debug("cell cursor placed", zap.String("player", player.Name))
	}
	c.post(EventCellCursorPlaced)
}

// Hide deactivates the cursor without selecting.
func (c *CellCursor) Hide() {
	if !c.active {
		return
	}
	c.active = false
	c.post(EventCellCursorHidden)
}

// Move shifts the selection one cell. Silently ignored while inactive
// or when no cell exists in that direction.
func (c *CellCursor) Move(d board.Direction) {
	if !c.active {
		return
	}
	dst, ok := board.Neighbor(c.cell, d)
	if !ok {
		return
	}
	c.cell = dst
	c.post(EventCellCursorMoved)
}

// Select deactivates the cursor and reports the selected cell.
func (c *CellCursor) Select() {
	if !c.active {
		return
	}
	c.active = false
	if c.logger != nil {
		c.logger.Debug("cell cursor selected",
			zap.String("player", c.player.Name),
			zap.String("cell", c.cell.String()),
		)
	}
	c.post(EventCellCursorSelected)
}

// BlockCursor selects the quadrant for the turn's rotation.
type BlockCursor struct {
	bus    *Bus
	logger *zap.Logger

	active   bool
	player   board.Player
	quadrant board.Quadrant
}

// NewBlockCursor creates a block cursor subscribed to the bus.
func NewBlockCursor(bus *Bus, logger *zap.Logger) *BlockCursor {
	c := &BlockCursor{bus: bus, logger: logger}
	bus.Subscribe(c.handleEvent)
	return c
}

func (c *BlockCursor) handleEvent(event Event) {
	switch event.Type {
	case EventAwaitingBlockSelection:
		c.Place(event.Player)
	case EventAwaitingMove, EventAwaitingRotation, EventGameFinished:
		c.Hide()
	}
}

func (c *BlockCursor) snapshot() CursorSnapshot {
	return CursorSnapshot{Active: c.active, Player: c.player, Quadrant: c.quadrant}
}

// Snapshot returns the cursor's current state.
func (c *BlockCursor) Snapshot() CursorSnapshot {
	return c.snapshot()
}

func (c *BlockCursor) post(eventType EventType) {
	evt := NewEvent(eventType)
	evt.Player = c.player
	evt.Cursor = c.snapshot()
	c.bus.Post(evt)
}

// Place activates the cursor for player at the start quadrant. No-op
// while already active.
func (c *BlockCursor) Place(player board.Player) {
	if c.active {
		return
	}
	c.active = true
	c.player = player
	c.quadrant = blockCursorStart
	if c.logger != nil {
		c.logger.Debug("block cursor placed", zap.String("player", player.Name))
	}
	c.post(EventBlockCursorPlaced)
}

// Hide deactivates the cursor without selecting.
func (c *BlockCursor) Hide() {
	if !c.active {
		return
	}
	c.active = false
	c.post(EventBlockCursorHidden)
}

// Move shifts the selection to the adjacent quadrant. Silently ignored
// while inactive or on the board edge.
func (c *BlockCursor) Move(d board.Direction) {
	if !c.active {
		return
	}
	dst, ok := board.QuadrantNeighbor(c.quadrant, d)
	if !ok {
		return
	}
	c.quadrant = dst
	c.post(EventBlockCursorMoved)
}

// Select deactivates the cursor and reports the selected quadrant.
func (c *BlockCursor) Select() {
	if !c.active {
		return
	}
	c.active = false
	if c.logger != nil {
		c.logger.Debug("block cursor selected",
			zap.String("player", c.player.Name),
			zap.Int("quadrant", int(c.quadrant)),
		)
	}
	c.post(EventBlockCursorSelected)
}

// DirectionCursor selects the rotation direction. Unlike the other two
// cursors its selection starts unset and must be chosen before it can
// be confirmed.
type DirectionCursor struct {
	bus    *Bus
	logger *zap.Logger

	active   bool
	player   board.Player
	rotation board.Rotation
}

// NewDirectionCursor creates a direction cursor subscribed to the bus.
func NewDirectionCursor(bus *Bus, logger *zap.Logger) *DirectionCursor {
	c := &DirectionCursor{bus: bus, logger: logger}
	bus.Subscribe(c.handleEvent)
	return c
}

func (c *DirectionCursor) handleEvent(event Event) {
	switch event.Type {
	case EventAwaitingRotation:
		c.Place(event.Player)
	case EventAwaitingMove, EventAwaitingBlockSelection, EventGameFinished:
		c.Hide()
	}
}

func (c *DirectionCursor) snapshot() CursorSnapshot {
	return CursorSnapshot{Active: c.active, Player: c.player, Rotation: c.rotation}
}

// Snapshot returns the cursor's current state.
func (c *DirectionCursor) Snapshot() CursorSnapshot {
	return c.snapshot()
}

func (c *DirectionCursor) post(eventType EventType) {
	evt := NewEvent(eventType)
	evt.Player = c.player
	evt.Cursor = c.snapshot()
	c.bus.Post(evt)
}

// Place activates the cursor for player with the direction unset.
// No-op while already active.
func (c *DirectionCursor) Place(player board.Player) {
	if c.active {
		return
	}
	c.active = true
	c.player = player
	c.rotation = board.RotationNone
	if c.logger != nil {
		c.logger.Debug("direction cursor placed", zap.String("player", player.Name))
	}
	c.post(EventDirectionCursorPlaced)
}

// Hide deactivates the cursor without selecting.
func (c *DirectionCursor) Hide() {
	if !c.active {
		return
	}
	c.active = false
	c.post(EventDirectionCursorHidden)
}

// Move records the rotation direction. Only Left and Right are
// accepted. A Moved notification is posted even when the recorded
// direction did not change, so the view redraws its indicator.
func (c *DirectionCursor) Move(d board.Direction) {
	if !c.active {
		return
	}
	switch d {
	case board.DirectionLeft:
		c.rotation = board.RotationLeft
	case board.DirectionRight:
		c.rotation = board.RotationRight
	default:
		return
	}
	c.post(EventDirectionCursorMoved)
}

// Select deactivates the cursor and reports the chosen rotation.
// No-op while no direction has been chosen yet.
func (c *DirectionCursor) Select() {
	if !c.active || c.rotation == board.RotationNone {
		return
	}
	c.active = false
	if c.logger != nil {
		c.logger.Debug("direction cursor selected",
			zap.String("player", c.player.Name),
			zap.String("rotation", c.rotation.String()),
		)
	}
	c.post(EventDirectionCursorSelected)
}
