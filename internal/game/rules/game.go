package rules

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/openpentago/pentago-server-go/internal/game/board"
)

// Phase represents the stage of the current turn.
type Phase int

const (
	PhasePreparing Phase = iota
	PhaseAwaitingMove
	PhaseAwaitingBlockSelection
	PhaseAwaitingRotation
	PhaseFinished
)

var phaseNames = map[Phase]string{
	PhasePreparing:              "PREPARING",
	PhaseAwaitingMove:           "AWAITING_MOVE",
	PhaseAwaitingBlockSelection: "AWAITING_BLOCK_SELECTION",
	PhaseAwaitingRotation:       "AWAITING_ROTATION",
	PhaseFinished:               "FINISHED",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

var phaseEvents = map[Phase]EventType{
	PhaseAwaitingMove:           EventAwaitingMove,
	PhaseAwaitingBlockSelection: EventAwaitingBlockSelection,
	PhaseAwaitingRotation:       EventAwaitingRotation,
	PhaseFinished:               EventGameFinished,
}

// Game is the turn state machine. It owns the authoritative board and
// is its only writer; the three cursors collect the turn's inputs and
// feed their selections back over the bus. Raw move/select requests
// are routed to whichever cursor serves the current phase — the game
// never sees key codes, only the request taxonomy.
//
// A turn is: place a marker on an empty cell, then rotate one quadrant
// a quarter-turn in a chosen direction. The win check runs after the
// placement (a placement can end the game on its own) and after the
// rotation; a conclusive check moves the game to its terminal phase,
// otherwise the other player takes over.
type Game struct {
	bus    *Bus
	logger *zap.Logger

	phase    Phase
	players  [2]board.Player
	current  int
	b        board.Board
	quadrant board.Quadrant
	moves    int
	message  string
	outcome  board.Outcome

	cell      *CellCursor
	block     *BlockCursor
	direction *DirectionCursor
}

// NewGame creates a game with its three cursors and subscribes them to
// the bus. The game registers first, so it observes every cursor
// notification before external subscribers registered afterwards.
func NewGame(bus *Bus, players [2]board.Player, logger *zap.Logger) *Game {
	g := &Game{
		bus:     bus,
		logger:  logger,
		phase:   PhasePreparing,
		players: players,
	}
	bus.Subscribe(g.handleEvent)
	g.cell = NewCellCursor(bus, logger)
	g.block = NewBlockCursor(bus, logger)
	g.direction = NewDirectionCursor(bus, logger)
	return g
}

// Phase returns the current turn phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Players returns the two fixed players in move order.
func (g *Game) Players() [2]board.Player {
	return g.players
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() board.Player {
	return g.players[g.current]
}

// Board returns a copy of the authoritative board.
func (g *Game) Board() board.Board {
	return g.b.Clone()
}

// Moves returns the number of completed full turns.
func (g *Game) Moves() int {
	return g.moves
}

// Message returns the current human-readable status line.
func (g *Game) Message() string {
	return g.message
}

// Outcome returns the verdict; meaningful once the game is finished.
func (g *Game) Outcome() board.Outcome {
	return g.outcome
}

// CellCursor returns the game's cell cursor.
func (g *Game) CellCursor() *CellCursor { return g.cell }

// BlockCursor returns the game's block cursor.
func (g *Game) BlockCursor() *BlockCursor { return g.block }

// DirectionCursor returns the game's direction cursor.
func (g *Game) DirectionCursor() *DirectionCursor { return g.direction }

func (g *Game) handleEvent(event Event) {
	switch event.Type {
	case EventTick:
		if g.phase == PhasePreparing {
			g.start()
		}
	case EventMoveRequested:
		g.routeMove(event.Direction)
	case EventSelectRequested:
		g.routeSelect()
	case EventCellCursorSelected:
		if g.phase == PhaseAwaitingMove {
			g.placeMarker(event.Cursor.Cell)
		}
	case EventBlockCursorSelected:
		if g.phase == PhaseAwaitingBlockSelection {
			g.quadrant = event.Cursor.Quadrant
			g.setPhase(PhaseAwaitingRotation)
		}
	case EventDirectionCursorSelected:
		if g.phase == PhaseAwaitingRotation {
			g.applyRotation(event.Cursor.Rotation)
		}
	}
}

// start builds the empty board on the first tick and opens the first
// move phase.
func (g *Game) start() {
	g.b = make(board.Board)
	if g.logger != nil {
		g.logger.Info("game started",
			zap.String("first_player", g.players[0].Name),
			zap.String("second_player", g.players[1].Name),
		)
	}
	evt := NewEvent(EventBoardReady)
	evt.Board = g.b.Clone()
	g.bus.Post(evt)
	g.setPhase(PhaseAwaitingMove)
}

// routeMove forwards a directional request to the cursor serving the
// current phase. Outside an input phase the request is dropped.
func (g *Game) routeMove(d board.Direction) {
	switch g.phase {
	case PhaseAwaitingMove:
		g.cell.Move(d)
	case PhaseAwaitingBlockSelection:
		g.block.Move(d)
	case PhaseAwaitingRotation:
		g.direction.Move(d)
	}
}

// routeSelect forwards a confirm request to the cursor serving the
// current phase.
func (g *Game) routeSelect() {
	switch g.phase {
	case PhaseAwaitingMove:
		g.cell.Select()
	case PhaseAwaitingBlockSelection:
		g.block.Select()
	case PhaseAwaitingRotation:
		g.direction.Select()
	}
}

// placeMarker commits the mover's marker to the selected cell. A
// selection of an occupied cell is rejected: the phase does not
// advance and the cell cursor is re-armed for another attempt.
func (g *Game) placeMarker(cell board.Position) {
	mover := g.players[g.current]
	if _, occupied := g.b[cell]; occupied {
		if g.logger != nil {
			g.logger.Debug("invalid move rejected",
				zap.String("player", mover.Name),
				zap.String("cell", cell.String()),
			)
		}
		g.postMessage(fmt.Sprintf("Invalid move: %s is occupied. %s's turn: place a marker.", cell, mover.Name))
		g.cell.Place(mover)
		return
	}

	g.b[cell] = mover
	if g.logger != nil {
		g.logger.Debug("marker placed",
			zap.String("player", mover.Name),
			zap.String("cell", cell.String()),
		)
	}

	// A placement can finish the game on its own; only then is the
	// mandatory rotation skipped.
	if out := board.Winner(g.b, g.players); out.Result != board.ResultNone {
		g.finish(out)
		return
	}
	g.setPhase(PhaseAwaitingBlockSelection)
}

// applyRotation rewrites the board with the selected quadrant rotated,
// runs the win check, and either finishes the game or hands the turn
// to the other player.
func (g *Game) applyRotation(r board.Rotation) {
	g.b = board.Rotate(g.b, g.quadrant, r)
	if g.logger != nil {
		g.logger.Debug("quadrant rotated",
			zap.Int("quadrant", int(g.quadrant)),
			zap.String("rotation", r.String()),
		)
	}

	if out := board.Winner(g.b, g.players); out.Result != board.ResultNone {
		g.finish(out)
		return
	}

	g.moves++
	g.current = 1 - g.current
	g.setPhase(PhaseAwaitingMove)
}

func (g *Game) setPhase(phase Phase) {
	g.phase = phase
	evt := NewEvent(phaseEvents[phase])
	evt.Phase = phase
	evt.Player = g.players[g.current]
	g.bus.Post(evt)
	g.postMessage(g.statusMessage())
}

func (g *Game) finish(out board.Outcome) {
	g.outcome = out
	g.phase = PhaseFinished
	if g.logger != nil {
		g.logger.Info("game finished",
			zap.String("result", out.Result.String()),
			zap.String("winner", out.Winner.Name),
			zap.Int("moves", g.moves),
		)
	}
	evt := NewEvent(EventGameFinished)
	evt.Phase = PhaseFinished
	evt.Player = out.Winner
	evt.Outcome = out
	evt.Board = g.b.Clone()
	g.bus.Post(evt)
	g.postMessage(g.statusMessage())
}

// statusMessage renders the line shown to the players for the current
// phase.
func (g *Game) statusMessage() string {
	name := g.players[g.current].Name
	switch g.phase {
	case PhasePreparing:
		return "Preparing the board."
	case PhaseAwaitingMove:
		return fmt.Sprintf("%s's turn: place a marker.", name)
	case PhaseAwaitingBlockSelection:
		return fmt.Sprintf("%s's turn: select a block to rotate.", name)
	case PhaseAwaitingRotation:
		return fmt.Sprintf("%s's turn: choose a rotation direction.", name)
	case PhaseFinished:
		if g.outcome.Result == board.ResultWin {
			return fmt.Sprintf("%s wins.", g.outcome.Winner.Name)
		}
		return "The game is a tie."
	}
	return ""
}

func (g *Game) postMessage(message string) {
	g.message = message
	evt := NewEvent(EventStatusMessage)
	evt.Message = message
	g.bus.Post(evt)
}
