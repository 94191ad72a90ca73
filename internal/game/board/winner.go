package board

// WinRun is the run length that wins the game.
const WinRun = 5

// Result classifies the outcome of a win check.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultTie
)

var resultNames = map[Result]string{
	ResultNone: "NONE",
	ResultWin:  "WIN",
	ResultTie:  "TIE",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

// Outcome is the verdict of Winner. Winner is meaningful only when
// Result is ResultWin.
type Outcome struct {
	Result Result
	Winner Player
}

// lines enumerates every scan line that can contain a winning run:
// 6 rows, 6 columns, and the 6 diagonals of length >= WinRun (offsets
// -1, 0, +1 from each main diagonal). Built once.
var lines = buildLines()

func buildLines() [][]Position {
	var out [][]Position

	for y := 0; y < Size; y++ {
		row := make([]Position, 0, Size)
		for x := 0; x < Size; x++ {
			row = append(row, Position{X: x, Y: y})
		}
		out = append(out, row)
	}
	for x := 0; x < Size; x++ {
		col := make([]Position, 0, Size)
		for y := 0; y < Size; y++ {
			col = append(col, Position{X: x, Y: y})
		}
		out = append(out, col)
	}
	for k := -1; k <= 1; k++ {
		// descending: down-right, y = x + k
		var desc []Position
		for x := 0; x < Size; x++ {
			p := Position{X: x, Y: x + k}
			if InBounds(p) {
				desc = append(desc, p)
			}
		}
		out = append(out, desc)

		// ascending: up-right, y = Size - 1 - x + k
		var asc []Position
		for x := 0; x < Size; x++ {
			p := Position{X: x, Y: Size - 1 - x + k}
			if InBounds(p) {
				asc = append(asc, p)
			}
		}
		out = append(out, asc)
	}
	return out
}

// hasRun reports whether p owns WinRun contiguous cells on any line.
// A run resets on an empty cell or one owned by the opponent.
func hasRun(b Board, p Player) bool {
	for _, line := range lines {
		run := 0
		for _, pos := range line {
			if owner, ok := b[pos]; ok && owner == p {
				run++
				if run >= WinRun {
					return true
				}
			} else {
				run = 0
			}
		}
	}
	return false
}

// Winner scans the board for each player's winning run and resolves
// the outcome. A full board is a tie before any line is considered,
// even when it contains a winning run. When both players complete a
// run at once (possible after a rotation), the result is a tie.
func Winner(b Board, players [2]Player) Outcome {
	if b.Full() {
		return Outcome{Result: ResultTie}
	}
	first := hasRun(b, players[0])
	second := hasRun(b, players[1])
	switch {
	case first && second:
		return Outcome{Result: ResultTie}
	case first:
		return Outcome{Result: ResultWin, Winner: players[0]}
	case second:
		return Outcome{Result: ResultWin, Winner: players[1]}
	}
	return Outcome{Result: ResultNone}
}
