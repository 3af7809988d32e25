package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lk16/flippy/arena/internal/ai"
	"github.com/lk16/flippy/arena/internal/arena"
	"github.com/lk16/flippy/arena/internal/config"
)

func main() {
	config.SetLogLevel()
	arenaCfg := config.LoadArenaConfig()

	blackFlag := flag.String("black", "medium", "difficulty of the black player")
	whiteFlag := flag.String("white", "easy", "difficulty of the white player")
	games := flag.Int("games", 10, "number of games to play")
	seed := flag.Int64("seed", arenaCfg.Seed, "seed for reproducible matches, zero seeds from the clock")
	flag.Parse()

	black, err := ai.ParseDifficulty(*blackFlag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	white, err := ai.ParseDifficulty(*whiteFlag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	summary, err := arena.Run(arena.Config{
		Black: black,
		White: white,
		Games: *games,
		Seed:  *seed,
	})
	if err != nil {
		slog.Error("Match failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s (black) vs %s (white), %d games\n", black, white, summary.Games)
	fmt.Printf("black wins: %d\n", summary.BlackWins)
	fmt.Printf("white wins: %d\n", summary.WhiteWins)
	fmt.Printf("draws:      %d\n", summary.Draws)
	fmt.Printf("discs:      %d - %d\n", summary.BlackDiscs, summary.WhiteDiscs)
}
