// Command console-demo plays a scripted game against the rule engine
// and prints the board after every turn. It exercises the full turn
// cycle without a network in the way: each turn walks the cell cursor
// from its start position, picks a quadrant and spins it.
package main

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/openpentago/pentago-server-go/internal/game"
	"github.com/openpentago/pentago-server-go/internal/game/board"
	"github.com/openpentago/pentago-server-go/internal/game/rules"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	players := [2]board.Player{
		{Name: "White", Color: "#ffffff"},
		{Name: "Black", Color: "#000000"},
	}
	engine := game.NewEngine(players, logger)

	engine.Subscribe(func(evt rules.Event) {
		if evt.Type == rules.EventStatusMessage {
			fmt.Println(">>", evt.Message)
		}
	})

	engine.Tick()
	printBoard(engine)

	// White builds a run along the top row while Black fills the
	// bottom-left quadrant. Both spin the empty bottom-right
	// quadrant, so no placed marker ever moves.
	turns := [][]board.Direction{
		{board.DirectionUp, board.DirectionUp, board.DirectionLeft, board.DirectionLeft},      // White (0,0)
		{board.DirectionLeft, board.DirectionLeft, board.DirectionDown},                       // Black (0,3)
		{board.DirectionUp, board.DirectionUp, board.DirectionLeft},                           // White (1,0)
		{board.DirectionLeft, board.DirectionLeft, board.DirectionDown, board.DirectionDown},  // Black (0,4)
		{board.DirectionUp, board.DirectionUp},                                                // White (2,0)
		{board.DirectionLeft, board.DirectionLeft, board.DirectionDown, board.DirectionDown, board.DirectionDown}, // Black (0,5)
		{board.DirectionUp, board.DirectionUp, board.DirectionRight},                          // White (3,0)
		{board.DirectionLeft, board.DirectionDown},                                            // Black (1,3)
		{board.DirectionUp, board.DirectionUp, board.DirectionRight, board.DirectionRight},    // White (4,0) wins
	}

	for _, walk := range turns {
		playTurn(engine, walk)
		printBoard(engine)
		if engine.View().Finished {
			break
		}
	}

	view := engine.View()
	if view.Winner != nil {
		fmt.Printf("Result: %s wins in %d moves.\n", view.Winner.Name, view.Moves+1)
	} else {
		fmt.Println("Result:", view.Result)
	}
}

// playTurn places a marker at the end of the walk, then spins the
// bottom-right quadrant counterclockwise. The rotation step is
// skipped automatically when the placement ends the game.
func playTurn(engine *game.Engine, walk []board.Direction) {
	for _, d := range walk {
		engine.RequestMove(d)
	}
	engine.RequestSelect()
	if engine.View().Finished {
		return
	}
	engine.RequestMove(board.DirectionRight) // quadrant 0 -> 1
	engine.RequestMove(board.DirectionDown)  // quadrant 1 -> 3
	engine.RequestSelect()
	engine.RequestMove(board.DirectionLeft) // counterclockwise
	engine.RequestSelect()
}

func printBoard(engine *game.Engine) {
	view := engine.View()
	grid := [board.Size][board.Size]byte{}
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = '.'
		}
	}
	for _, c := range view.Cells {
		grid[c.Y][c.X] = c.Player.Name[0]
	}

	var sb strings.Builder
	sb.WriteString("  0 1 2 3 4 5\n")
	for y := 0; y < board.Size; y++ {
		fmt.Fprintf(&sb, "%d", y)
		for x := 0; x < board.Size; x++ {
			sb.WriteByte(' ')
			sb.WriteByte(grid[y][x])
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
	fmt.Println()
}
