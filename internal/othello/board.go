package othello

import (
	"fmt"
	"strings"
)

// BoardSize is the width and height of the board.
const BoardSize = 8

// Cell is the state of a single square on the board.
type Cell uint8

const (
	EMPTY Cell = iota
	BLACK
	WHITE
	DRAW = EMPTY
)

// Opponent returns the other color. EMPTY has no opponent and is returned as is.
func (c Cell) Opponent() Cell {
	switch c {
	case BLACK:
		return WHITE
	case WHITE:
		return BLACK
	default:
		return EMPTY
	}
}

// String returns a human readable name.
func (c Cell) String() string {
	switch c {
	case BLACK:
		return "black"
	case WHITE:
		return "white"
	default:
		return "empty"
	}
}

// ParseColor parses "black" or "white".
func ParseColor(s string) (Cell, error) {
	switch strings.ToLower(s) {
	case "black", "b":
		return BLACK, nil
	case "white", "w":
		return WHITE, nil
	default:
		return EMPTY, fmt.Errorf("invalid color: %q", s)
	}
}

// Counts holds the number of discs of each color and the number of empty squares.
type Counts struct {
	Black int `json:"black"`
	White int `json:"white"`
	Empty int `json:"empty"`
}

// Of returns the disc count of the given color.
func (c Counts) Of(color Cell) int {
	switch color {
	case BLACK:
		return c.Black
	case WHITE:
		return c.White
	default:
		return c.Empty
	}
}

// Board is an 8x8 grid of cells. Out of range coordinates panic.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

// NewBoardStart creates a board with the standard starting position.
func NewBoardStart() *Board {
	b := NewBoardEmpty()
	mid := BoardSize / 2
	b.cells[mid-1][mid-1] = WHITE
	b.cells[mid-1][mid] = BLACK
	b.cells[mid][mid-1] = BLACK
	b.cells[mid][mid] = WHITE
	return b
}

// NewBoardEmpty creates a board without any discs.
func NewBoardEmpty() *Board {
	return &Board{}
}

// NewBoardFromString parses the format produced by Board.String. Whitespace is ignored.
func NewBoardFromString(s string) (*Board, error) {
	s = strings.Join(strings.Fields(s), "")

	if len(s) != BoardSize*BoardSize {
		return nil, fmt.Errorf("board string must be %d characters long, got %d", BoardSize*BoardSize, len(s))
	}

	b := NewBoardEmpty()
	for i := range len(s) {
		var cell Cell
		switch s[i] {
		case '-', '.':
			cell = EMPTY
		case 'X', 'x':
			cell = BLACK
		case 'O', 'o':
			cell = WHITE
		default:
			return nil, fmt.Errorf("invalid character %q at index %d", s[i], i)
		}
		b.cells[i/BoardSize][i%BoardSize] = cell
	}

	return b, nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// GetCell returns the state of a cell.
func (b *Board) GetCell(row, col int) Cell {
	return b.cells[row][col]
}

// SetCell sets the state of a cell.
func (b *Board) SetCell(row, col int, cell Cell) {
	b.cells[row][col] = cell
}

// CountPieces counts black, white and empty cells.
func (b *Board) CountPieces() Counts {
	var counts Counts
	for row := range BoardSize {
		for col := range BoardSize {
			switch b.cells[row][col] {
			case BLACK:
				counts.Black++
			case WHITE:
				counts.White++
			default:
				counts.Empty++
			}
		}
	}
	return counts
}

// Equal checks if two boards have the same content.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells
}

// Rows returns one string per row in the format of Board.String.
func (b *Board) Rows() []string {
	rows := make([]string, BoardSize)
	for row := range BoardSize {
		var sb strings.Builder
		for col := range BoardSize {
			switch b.cells[row][col] {
			case BLACK:
				sb.WriteByte('X')
			case WHITE:
				sb.WriteByte('O')
			default:
				sb.WriteByte('-')
			}
		}
		rows[row] = sb.String()
	}
	return rows
}

// String returns the 64 character representation of the board.
func (b *Board) String() string {
	return strings.Join(b.Rows(), "")
}

// ASCIIArtLines returns the ascii art lines for the board, marking hints with a dot.
func (b *Board) ASCIIArtLines(hints []Square) []string {
	hinted := make(map[Square]bool, len(hints))
	for _, sq := range hints {
		hinted[sq] = true
	}

	lines := make([]string, BoardSize+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := range BoardSize {
		line := fmt.Sprintf("%d ", row+1)

		for col := range BoardSize {
			switch {
			case b.cells[row][col] == WHITE:
				line += "○ "
			case b.cells[row][col] == BLACK:
				line += "● "
			case hinted[Square{Row: row, Col: col}]:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[BoardSize+1] = "+-----------------+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b *Board) Print(hints []Square) {
	for _, line := range b.ASCIIArtLines(hints) {
		fmt.Println(line)
	}
}
