package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/flippy/arena/internal/othello"
)

func main() {
	boardString := flag.String("board", othello.NewBoardStart().String(), "the board to show")
	turnString := flag.String("turn", "black", "the player whose moves are shown")
	flag.Parse()

	board, err := othello.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	turn, err := othello.ParseColor(*turnString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	board.Print(othello.ValidMoves(board, turn))
}
