// Package game provides the session-level surface over the rule core:
// an engine facade per game, a manager for concurrent sessions, and
// snapshot views for the presentation boundary.
package game

import (
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openpentago/pentago-server-go/internal/game/board"
	"github.com/openpentago/pentago-server-go/internal/game/rules"
)

// Engine wires one game session together: a private bus, the turn
// state machine and its cursors. Callers drive it with Tick and the
// request methods and observe it through Subscribe and View. The
// engine itself is not goroutine-safe; the caller serializes access,
// matching the core's single-threaded dispatch discipline.
type Engine struct {
	id     string
	logger *zap.Logger
	bus    *rules.Bus
	game   *rules.Game
}

// NewEngine creates a session for the two players.
func NewEngine(players [2]board.Player, logger *zap.Logger) *Engine {
	id := uuid.NewString()
	bus := rules.NewBus()
	e := &Engine{
		id:     id,
		logger: logger,
		bus:    bus,
		game:   rules.NewGame(bus, players, logger),
	}
	if logger != nil {
		logger.Info("engine created",
			zap.String("game_id", id),
			zap.String("first_player", players[0].Name),
			zap.String("second_player", players[1].Name),
		)
	}
	return e
}

// ID returns the session id.
func (e *Engine) ID() string {
	return e.id
}

// Subscribe registers a listener on the session bus and returns its
// handle. Listeners registered here run after the core's own, so they
// observe state that already reflects the notification.
func (e *Engine) Subscribe(listener rules.Listener) int {
	return e.bus.Subscribe(listener)
}

// Unsubscribe removes a listener registered with Subscribe.
func (e *Engine) Unsubscribe(handle int) {
	e.bus.Unsubscribe(handle)
}

// Tick posts one tick, the signal that drives the turn machine.
func (e *Engine) Tick() {
	e.bus.Post(rules.NewEvent(rules.EventTick))
}

// RequestMove posts a raw directional input request.
func (e *Engine) RequestMove(d board.Direction) {
	e.bus.Post(rules.NewMoveRequest(d))
}

// RequestSelect posts a raw confirm input request.
func (e *Engine) RequestSelect() {
	e.bus.Post(rules.NewEvent(rules.EventSelectRequested))
}

// RequestQuit posts a quit request. The core ignores it; the session
// owner (ticker, gateway) reacts.
func (e *Engine) RequestQuit() {
	e.bus.Post(rules.NewEvent(rules.EventQuitRequested))
}

// Game exposes the underlying state machine for white-box inspection.
func (e *Engine) Game() *rules.Game {
	return e.game
}

// PlayerView is a player in a snapshot.
type PlayerView struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CellView is one occupied cell in a snapshot.
type CellView struct {
	X      int        `json:"x"`
	Y      int        `json:"y"`
	Player PlayerView `json:"player"`
}

// CursorView is a cursor in a snapshot. X/Y, Quadrant and Rotation are
// meaningful per cursor kind.
type CursorView struct {
	Active   bool       `json:"active"`
	Player   PlayerView `json:"player"`
	X        int        `json:"x"`
	Y        int        `json:"y"`
	Quadrant int        `json:"quadrant"`
	Rotation string     `json:"rotation"`
}

// GameView is the complete session snapshot handed to the
// presentation layer.
type GameView struct {
	GameID          string       `json:"game_id"`
	Phase           string       `json:"phase"`
	CurrentPlayer   PlayerView   `json:"current_player"`
	Players         []PlayerView `json:"players"`
	Cells           []CellView   `json:"cells"`
	Moves           int          `json:"moves"`
	Message         string       `json:"message"`
	Finished        bool         `json:"finished"`
	Result          string       `json:"result"`
	Winner          *PlayerView  `json:"winner,omitempty"`
	CellCursor      CursorView   `json:"cell_cursor"`
	BlockCursor     CursorView   `json:"block_cursor"`
	DirectionCursor CursorView   `json:"direction_cursor"`
}

func playerView(p board.Player) PlayerView {
	return PlayerView{Name: p.Name, Color: p.Color}
}

func cursorView(s rules.CursorSnapshot) CursorView {
	return CursorView{
		Active:   s.Active,
		Player:   playerView(s.Player),
		X:        s.Cell.X,
		Y:        s.Cell.Y,
		Quadrant: int(s.Quadrant),
		Rotation: s.Rotation.String(),
	}
}

// View builds a snapshot of the session. Cells are ordered row-major
// so the encoding is deterministic.
func (e *Engine) View() GameView {
	g := e.game
	players := g.Players()
	b := g.Board()

	cells := make([]CellView, 0, len(b))
	for pos, owner := range b {
		cells = append(cells, CellView{X: pos.X, Y: pos.Y, Player: playerView(owner)})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})

	view := GameView{
		GameID:          e.id,
		Phase:           g.Phase().String(),
		CurrentPlayer:   playerView(g.CurrentPlayer()),
		Players:         []PlayerView{playerView(players[0]), playerView(players[1])},
		Cells:           cells,
		Moves:           g.Moves(),
		Message:         g.Message(),
		Finished:        g.Phase() == rules.PhaseFinished,
		Result:          g.Outcome().Result.String(),
		CellCursor:      cursorView(g.CellCursor().Snapshot()),
		BlockCursor:     cursorView(g.BlockCursor().Snapshot()),
		DirectionCursor: cursorView(g.DirectionCursor().Snapshot()),
	}
	if g.Outcome().Result == board.ResultWin {
		w := playerView(g.Outcome().Winner)
		view.Winner = &w
	}
	return view
}
