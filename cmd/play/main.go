package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lk16/flippy/arena/internal/ai"
	"github.com/lk16/flippy/arena/internal/client"
	"github.com/lk16/flippy/arena/internal/config"
	"github.com/lk16/flippy/arena/internal/models"
	"github.com/lk16/flippy/arena/internal/othello"
	"github.com/lk16/flippy/arena/internal/session"
)

const prompt = "your move (e.g. d3, pass or quit): "

func printMoves(moves []othello.MoveResult) {
	for _, move := range moves {
		fmt.Printf("%s plays %s, flipping %d\n", move.Player, move.Placed, len(move.Flipped))
	}
}

func printOutcome(winner string, human string) {
	switch winner {
	case "draw":
		fmt.Println("draw")
	case human:
		fmt.Println("you win")
	default:
		fmt.Println("you lose")
	}
}

// readInput returns the trimmed input line, or false when input ended or the player quits.
func readInput(scanner *bufio.Scanner) (string, bool) {
	fmt.Print(prompt)

	if !scanner.Scan() {
		return "", false
	}

	input := strings.TrimSpace(scanner.Text())
	return input, input != "quit"
}

func printSession(s *session.Session) {
	game := s.Game()
	game.Board().Print(s.Hints())

	counts := game.Counts()
	fmt.Printf("black: %d, white: %d\n", counts.Black, counts.White)
}

func playLocal(difficulty ai.Difficulty, human othello.Cell, src ai.Source, scanner *bufio.Scanner) error {
	s, err := session.New(difficulty, human, src)
	if err != nil {
		return err
	}

	printMoves(s.Moves())

	for !s.Game().IsOver() {
		printSession(s)

		input, ok := readInput(scanner)
		if !ok {
			return nil
		}

		var applied []othello.MoveResult

		if input == "pass" {
			applied, err = s.PassHuman()
		} else {
			var sq othello.Square
			sq, err = othello.ParseSquare(input)
			if err == nil {
				applied, err = s.PlayHuman(sq)
			}
		}

		if err != nil {
			fmt.Println(err)
			continue
		}

		printMoves(applied)
	}

	printSession(s)
	printOutcome(models.WinnerName(s.Game().Winner()), human.String())
	return nil
}

func printView(view models.GameView) error {
	board, err := othello.NewBoardFromString(strings.Join(view.Board, ""))
	if err != nil {
		return err
	}

	hints := make([]othello.Square, 0, len(view.Hints))
	for _, field := range view.Hints {
		sq, parseErr := othello.ParseSquare(field)
		if parseErr != nil {
			return parseErr
		}
		hints = append(hints, sq)
	}

	for _, move := range view.Applied {
		fmt.Printf("%s plays %s, flipping %d\n", move.Player, move.Square, len(move.Flipped))
	}

	board.Print(hints)
	fmt.Printf("black: %d, white: %d\n", view.Counts.Black, view.Counts.White)
	return nil
}

func playRemote(c *client.Client, difficulty ai.Difficulty, human othello.Cell, scanner *bufio.Scanner) error {
	ctx := context.Background()

	view, err := c.NewGame(ctx, string(difficulty), human.String())
	if err != nil {
		return err
	}

	for !view.Over {
		if err = printView(view); err != nil {
			return err
		}

		input, ok := readInput(scanner)
		if !ok {
			return c.DeleteGame(ctx, view.ID)
		}

		next, moveErr := func() (models.GameView, error) {
			if input == "pass" {
				return c.Pass(ctx, view.ID)
			}
			return c.Move(ctx, view.ID, input)
		}()

		if moveErr != nil {
			fmt.Println(moveErr)
			continue
		}

		view = next
	}

	if err = printView(view); err != nil {
		return err
	}

	printOutcome(view.Winner, view.Human)
	return nil
}

func main() {
	config.SetLogLevel()
	clientCfg := config.LoadClientConfig()

	difficultyFlag := flag.String("difficulty", "medium", "difficulty of the computer: easy, medium or hard")
	colorFlag := flag.String("color", "black", "color you play with")
	seed := flag.Int64("seed", 0, "seed for the computer, zero seeds from the clock")
	server := flag.String("server", clientCfg.ServerURL, "play on a server instead of locally, e.g. http://localhost:3000")
	flag.Parse()

	difficulty, err := ai.ParseDifficulty(*difficultyFlag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	human, err := othello.ParseColor(*colorFlag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)

	if *server != "" {
		clientCfg.ServerURL = strings.TrimSuffix(*server, "/")
		err = playRemote(client.NewClient(clientCfg), difficulty, human, scanner)
	} else {
		var src ai.Source
		if *seed != 0 {
			src = ai.NewSource(*seed)
		}
		err = playLocal(difficulty, human, src, scanner)
	}

	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
