package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openpentago/pentago-server-go/internal/game/board"
)

func midGameView(t *testing.T) GameView {
	t.Helper()
	e := NewEngine(testPlayers, zap.NewNop())
	e.Tick()
	e.RequestMove(board.DirectionLeft)
	e.RequestSelect()
	return e.View()
}

func TestSnapshotRoundTrip(t *testing.T) {
	view := midGameView(t)

	data, err := MarshalSnapshot(view)
	require.NoError(t, err)

	got, err := UnmarshalSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, view, got)
}

func TestSnapshotChecksumIgnoresSessionID(t *testing.T) {
	// Two sessions that took the same moves have different ids but the
	// same checksummed state.
	a := midGameView(t)
	b := midGameView(t)
	require.NotEqual(t, a.GameID, b.GameID)
	assert.Equal(t, checksum(a), checksum(b))
}

func TestSnapshotDetectsTampering(t *testing.T) {
	view := midGameView(t)
	data, err := MarshalSnapshot(view)
	require.NoError(t, err)

	tampered := []byte(string(data))
	// Flip the mover's name inside the payload.
	for i := 0; i+5 < len(tampered); i++ {
		if string(tampered[i:i+5]) == "White" {
			copy(tampered[i:], "Wt1te")
			break
		}
	}
	_, err = UnmarshalSnapshot(tampered)
	assert.Error(t, err)
}

func TestSnapshotRejectsBadInput(t *testing.T) {
	_, err := UnmarshalSnapshot([]byte("{not json"))
	assert.Error(t, err)

	_, err = UnmarshalSnapshot([]byte(`{"version":99,"checksum":"","view":{}}`))
	assert.Error(t, err)
}
