package othello

import (
	"fmt"
	"strings"
)

// Square identifies a cell by row and column. It is not validated on construction.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InBounds checks if the square lies on the board.
func (s Square) InBounds() bool {
	return inBounds(s.Row, s.Col)
}

// String returns field notation, e.g. "d3". Off-board squares are rendered as "??".
func (s Square) String() string {
	if !s.InBounds() {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, s.Row+1)
}

// ParseSquare converts field notation (e.g. "a1", "H8") to a Square.
func ParseSquare(field string) (Square, error) {
	if len(field) != 2 {
		return Square{}, fmt.Errorf("invalid field length: %q", field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Square{}, fmt.Errorf("invalid field: %q", field)
	}

	return Square{Row: int(field[1] - '1'), Col: int(field[0] - 'a')}, nil
}
