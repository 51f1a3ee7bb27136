// Command perft is a debugging tool: it walks chesscore's pseudo-legal
// move-generation tree to a fixed depth, filtering out moves that leave
// the mover's king in check, and reports the leaf-node count. It is
// excluded from the chesscore module's import surface; chesscore users
// cannot import this package.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/kagamihex/chesscore"
)

func main() {
	fen := flag.String("fen", chesscore.InitialPositionFEN, "FEN of the position to search")
	depth := flag.Int("depth", 4, "perft search depth")
	verbose := flag.Bool("verbose", false, "print the board before searching")
	flag.Parse()

	chesscore.InitTables()
	chesscore.InitZobristTable()

	b, err := chesscore.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("perft: %v", err)
	}

	if *verbose {
		fmt.Print(renderBoard(b))
	}

	nodes := perft(b, *depth)
	fmt.Printf("perft(%d) = %d nodes\n", *depth, nodes)
}
