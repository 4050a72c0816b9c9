// play is a minimal synchronous line-protocol REPL around the rules
// engine: no search, no AI, just board state exercised one command at a
// time, for manual driving and CI smoke tests.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pyidrissa/chessgame/pkg/board"
	"github.com/pyidrissa/chessgame/pkg/board/fen"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var position = flag.String("fen", "", "Start position (default to standard)")

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: play [options]

play is a line-protocol REPL over a chess position.
Commands:
  move <from><to>   make a move, e.g. "move e2e4" (promotion is always to queen)
  moves             list legal moves in the current position
  undo              undo the last move
  fen               print the current position as FEN
  result            print the game result
  quit              exit

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *position == "" {
		*position = fen.Initial
	}

	pos, noprogress, fullmoves, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	logw.Infof(ctx, "play %v ready at %v", version, *position)

	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if !handle(ctx, pos, &noprogress, &fullmoves, line) {
			return
		}
	}
}

// handle executes one REPL command. Returns false to exit the loop.
func handle(ctx context.Context, pos *board.State, noprogress, fullmoves *int, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		return false

	case "move":
		if len(fields) != 2 {
			logw.Errorf(ctx, "usage: move <from><to>")
			return true
		}
		m, err := board.ParseMove(fields[1])
		if err != nil {
			logw.Errorf(ctx, "Invalid move %q: %v", fields[1], err)
			return true
		}
		if !pos.MakeMove(m) {
			logw.Errorf(ctx, "Illegal move: %v", fields[1])
			return true
		}
		*fullmoves = pos.MoveCount()/2 + 1
		fmt.Println(fen.Encode(pos, *noprogress, *fullmoves))

	case "moves":
		for _, m := range board.GenerateLegalMoves(pos) {
			fmt.Println(m)
		}

	case "undo":
		if !pos.UndoMove() {
			logw.Errorf(ctx, "Nothing to undo")
		}

	case "fen":
		fmt.Println(fen.Encode(pos, *noprogress, *fullmoves))

	case "result":
		fmt.Println(board.GameResult(pos))

	default:
		logw.Errorf(ctx, "Unknown command: %v", fields[0])
	}
	return true
}
