// Package rules implements the game-state machine: the event bus and
// its closed notification taxonomy, the three input cursors, and the
// turn state machine that owns the board.
package rules

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openpentago/pentago-server-go/internal/game/board"
)

// EventType indicates the category of a bus event. The set is closed;
// every subscriber dispatches with a switch over it.
type EventType string

const (
	// Inbound requests, produced by the input collaborator.
	EventTick            EventType = "TICK"
	EventMoveRequested   EventType = "MOVE_REQUESTED"
	EventSelectRequested EventType = "SELECT_REQUESTED"
	EventQuitRequested   EventType = "QUIT_REQUESTED"

	// Board notifications.
	EventBoardReady EventType = "BOARD_READY"

	// Phase notifications, one per phase entry. Each carries the
	// player whose turn it is.
	EventAwaitingMove           EventType = "AWAITING_MOVE"
	EventAwaitingBlockSelection EventType = "AWAITING_BLOCK_SELECTION"
	EventAwaitingRotation       EventType = "AWAITING_ROTATION"
	EventGameFinished           EventType = "GAME_FINISHED"

	// Cell cursor notifications.
	EventCellCursorPlaced   EventType = "CELL_CURSOR_PLACED"
	EventCellCursorMoved    EventType = "CELL_CURSOR_MOVED"
	EventCellCursorHidden   EventType = "CELL_CURSOR_HIDDEN"
	EventCellCursorSelected EventType = "CELL_CURSOR_SELECTED"

	// Block cursor notifications.
	EventBlockCursorPlaced   EventType = "BLOCK_CURSOR_PLACED"
	EventBlockCursorMoved    EventType = "BLOCK_CURSOR_MOVED"
	EventBlockCursorHidden   EventType = "BLOCK_CURSOR_HIDDEN"
	EventBlockCursorSelected EventType = "BLOCK_CURSOR_SELECTED"

	// Rotation direction cursor notifications.
	EventDirectionCursorPlaced   EventType = "DIRECTION_CURSOR_PLACED"
	EventDirectionCursorMoved    EventType = "DIRECTION_CURSOR_MOVED"
	EventDirectionCursorHidden   EventType = "DIRECTION_CURSOR_HIDDEN"
	EventDirectionCursorSelected EventType = "DIRECTION_CURSOR_SELECTED"

	// Status line for the presentation layer.
	EventStatusMessage EventType = "STATUS_MESSAGE_CHANGED"
)

// CursorSnapshot is the immutable view of a cursor attached to its
// notifications. Cell, Quadrant and Rotation are each meaningful only
// for the cursor kind that emitted the snapshot.
type CursorSnapshot struct {
	Active   bool
	Player   board.Player
	Cell     board.Position
	Quadrant board.Quadrant
	Rotation board.Rotation
}

// Event is the single payload type passed through the bus. Fields
// beyond Type and ID are populated per event kind; an event is
// immutable once posted.
type Event struct {
	Type      EventType
	ID        string
	Player    board.Player
	Direction board.Direction
	Phase     Phase
	Cursor    CursorSnapshot
	Board     board.Board
	Outcome   board.Outcome
	Message   string
	Timestamp time.Time
}

// NewEvent creates an event with identity fields populated.
func NewEvent(eventType EventType) Event {
	return Event{
		Type:      eventType,
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
	}
}

// NewMoveRequest creates a directional input request.
func NewMoveRequest(d board.Direction) Event {
	evt := NewEvent(EventMoveRequested)
	evt.Direction = d
	return evt
}

// Listener defines a callback that reacts to incoming events.
type Listener func(Event)

type subscription struct {
	handle   int
	listener Listener
}

// Bus is a synchronous publish/subscribe dispatcher. Posting invokes
// every subscriber in registration order before control returns to the
// poster; there is no queueing or background delivery. Subscribers are
// held in an owned, insertion-ordered list so dispatch order is
// reproducible for a given registration sequence.
type Bus struct {
	mu         sync.Mutex
	subs       []subscription
	nextHandle int
}

// NewBus constructs a fresh bus instance.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a listener and returns a handle for removal.
func (b *Bus) Subscribe(listener Listener) int {
	if listener == nil {
		return -1
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	handle := b.nextHandle
	b.nextHandle++
	b.subs = append(b.subs, subscription{handle: handle, listener: listener})
	return handle
}

// Unsubscribe removes the listener identified by the provided handle.
func (b *Bus) Unsubscribe(handle int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subs {
		if sub.handle == handle {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Post delivers the event to all subscribers in registration order.
// Listeners may post follow-up events; dispatch re-enters the bus
// recursively against a snapshot of the subscriber list taken when the
// post began.
func (b *Bus) Post(event Event) {
	b.mu.Lock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, sub := range subs {
		sub.listener(event)
	}
}
