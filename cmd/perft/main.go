// perft is a movegen debugging tool. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/pyidrissa/chessgame/pkg/board"
	"github.com/pyidrissa/chessgame/pkg/board/fen"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	pos, _, _, err := fen.Decode(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(ctx, pos, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v,%v", *position, i, nodes, duration.Microseconds()))
	}
}

// search walks the legal move tree to depth via make/undo, so a single
// State is mutated and restored rather than copied at each ply.
func search(ctx context.Context, pos *board.State, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}
	if contextx.IsCancelled(ctx) {
		return 0
	}

	var nodes int64
	for _, m := range board.GenerateLegalMoves(pos) {
		if !pos.MakeMove(m) {
			continue
		}
		count := search(ctx, pos, depth-1, false)
		pos.UndoMove()

		if d {
			println(fmt.Sprintf("%v: %v", m, count))
		}
		nodes += count
	}
	return nodes
}
