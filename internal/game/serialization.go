package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// snapshotVersion guards forward compatibility of the wire format.
const snapshotVersion = 1

// Snapshot is a self-describing serialization of a session view. The
// checksum covers the deterministic fields of the view, so two
// snapshots of identical game states compare equal regardless of
// session ids or transmission order.
type Snapshot struct {
	Version  int      `json:"version"`
	Checksum string   `json:"checksum"`
	View     GameView `json:"view"`
}

// checksum computes a SHA-256 hash of a canonical representation of
// the game state, excluding non-deterministic fields (the session id).
func checksum(view GameView) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "GAME:%s|%s|%d|%s|%t|%s\n",
		view.Phase,
		view.CurrentPlayer.Name,
		view.Moves,
		view.Message,
		view.Finished,
		view.Result,
	)
	for _, p := range view.Players {
		fmt.Fprintf(&buf, "PLAYER:%s|%s\n", p.Name, p.Color)
	}
	// Cells are already row-major ordered by View.
	for _, c := range view.Cells {
		fmt.Fprintf(&buf, "CELL:%d,%d|%s\n", c.X, c.Y, c.Player.Name)
	}
	for _, cur := range []CursorView{view.CellCursor, view.BlockCursor, view.DirectionCursor} {
		fmt.Fprintf(&buf, "CURSOR:%t|%s|%d,%d|%d|%s\n",
			cur.Active, cur.Player.Name, cur.X, cur.Y, cur.Quadrant, cur.Rotation)
	}

	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}

// MarshalSnapshot encodes the view with its integrity checksum.
func MarshalSnapshot(view GameView) ([]byte, error) {
	snap := Snapshot{
		Version:  snapshotVersion,
		Checksum: checksum(view),
		View:     view,
	}
	return json.Marshal(snap)
}

// UnmarshalSnapshot decodes a snapshot and verifies its checksum.
func UnmarshalSnapshot(data []byte) (GameView, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return GameView{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return GameView{}, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	if got := checksum(snap.View); got != snap.Checksum {
		return GameView{}, fmt.Errorf("snapshot checksum mismatch: %s != %s", got, snap.Checksum)
	}
	return snap.View, nil
}
