// Package server exposes a game session over a websocket: one
// connection drives one session. Inbound JSON messages map onto the
// core's request taxonomy, every core notification is streamed back
// with a fresh view, and a per-session ticker supplies the tick signal
// that drives the turn machine.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/openpentago/pentago-server-go/internal/config"
	"github.com/openpentago/pentago-server-go/internal/game"
	"github.com/openpentago/pentago-server-go/internal/game/board"
	"github.com/openpentago/pentago-server-go/internal/game/rules"
)

// ClientMessage is a request from the connected client.
type ClientMessage struct {
	Type      string `json:"type"` // "move", "select", "snapshot", "quit"
	Direction string `json:"direction,omitempty"`
}

// ServerMessage is a frame streamed to the client.
type ServerMessage struct {
	Type     string          `json:"type"` // "notification", "snapshot", "error"
	Event    string          `json:"event,omitempty"`
	Message  string          `json:"message,omitempty"`
	View     *game.GameView  `json:"view,omitempty"`
	Snapshot json.RawMessage `json:"snapshot,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// Server is the websocket gateway.
type Server struct {
	cfg      config.ServerConfig
	gameCfg  config.GameConfig
	manager  *game.Manager
	logger   *zap.Logger
	upgrader websocket.Upgrader
	httpSrv  *http.Server
}

// New creates a gateway serving sessions from the manager.
func New(cfg config.ServerConfig, gameCfg config.GameConfig, manager *game.Manager, logger *zap.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		gameCfg: gameCfg,
		manager: manager,
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	s.httpSrv = &http.Server{Addr: cfg.Address, Handler: mux}
	return s
}

// Start serves until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("starting websocket server", zap.String("address", s.cfg.Address))
	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and drains the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) players() [2]board.Player {
	return [2]board.Player{
		{Name: s.gameCfg.FirstPlayer.Name, Color: s.gameCfg.FirstPlayer.Color},
		{Name: s.gameCfg.SecondPlayer.Name, Color: s.gameCfg.SecondPlayer.Color},
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	if s.cfg.ReadLimit > 0 {
		conn.SetReadLimit(s.cfg.ReadLimit)
	}

	engine := s.manager.CreateGame(s.players())
	logger := s.logger.With(zap.String("game_id", engine.ID()))
	logger.Info("client connected", zap.String("remote", conn.RemoteAddr().String()))

	defer func() {
		s.manager.RemoveGame(engine.ID())
		conn.Close()
		logger.Info("client disconnected")
	}()

	outbound := make(chan ServerMessage, 64)
	defer close(outbound)
	go func() {
		for msg := range outbound {
			if err := conn.WriteJSON(msg); err != nil {
				return
			}
		}
	}()

	// The subscriber runs on the session goroutine: Tick and the
	// request methods are only ever called below.
	engine.Subscribe(func(evt rules.Event) {
		if !Forwardable(evt.Type) {
			return
		}
		view := engine.View()
		msg := ServerMessage{
			Type:    "notification",
			Event:   string(evt.Type),
			Message: evt.Message,
			View:    &view,
		}
		select {
		case outbound <- msg:
		default:
			logger.Warn("dropping notification, client too slow", zap.String("event", msg.Event))
		}
	})

	requests := make(chan ClientMessage, 16)
	go func() {
		defer close(requests)
		for {
			var msg ClientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			requests <- msg
		}
	}()

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			engine.Tick()
		case msg, ok := <-requests:
			if !ok {
				return
			}
			reply, quit := HandleClientMessage(engine, msg)
			if reply != nil {
				select {
				case outbound <- *reply:
				default:
				}
			}
			if quit {
				return
			}
		}
	}
}

// Forwardable reports whether an event type is an outbound
// notification for the presentation layer. Inbound requests and the
// tick are the client's own traffic and are not echoed.
func Forwardable(t rules.EventType) bool {
	switch t {
	case rules.EventTick,
		rules.EventMoveRequested,
		rules.EventSelectRequested,
		rules.EventQuitRequested:
		return false
	}
	return true
}

// ParseDirection maps a wire direction onto the board taxonomy.
func ParseDirection(s string) (board.Direction, bool) {
	switch s {
	case "up":
		return board.DirectionUp, true
	case "down":
		return board.DirectionDown, true
	case "left":
		return board.DirectionLeft, true
	case "right":
		return board.DirectionRight, true
	}
	return 0, false
}

// HandleClientMessage applies one client request to the session and
// returns an optional direct reply plus whether the session should
// end.
func HandleClientMessage(engine *game.Engine, msg ClientMessage) (*ServerMessage, bool) {
	switch msg.Type {
	case "move":
		d, ok := ParseDirection(msg.Direction)
		if !ok {
			return &ServerMessage{Type: "error", Error: "unknown direction: " + msg.Direction}, false
		}
		engine.RequestMove(d)
		return nil, false
	case "select":
		engine.RequestSelect()
		return nil, false
	case "snapshot":
		data, err := game.MarshalSnapshot(engine.View())
		if err != nil {
			return &ServerMessage{Type: "error", Error: err.Error()}, false
		}
		return &ServerMessage{Type: "snapshot", Snapshot: data}, false
	case "quit":
		engine.RequestQuit()
		return nil, true
	}
	return &ServerMessage{Type: "error", Error: "unknown message type: " + msg.Type}, false
}
