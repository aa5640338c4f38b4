package entity

import (
	"errors"
	"fmt"
)

// BoardSize is the number of rows and columns of the grid.
const BoardSize = 3

type Cell uint8

const (
	Empty Cell = iota
	MarkX
	MarkO
)

// lineWeights maps a cell to the factor used for line detection: only three
// X cells (2*2*2) multiply to 8 and only three O cells (3*3*3) to 27.
var lineWeights = [...]int{Empty: 1, MarkX: 2, MarkO: 3}

const (
	xLineProduct = 8
	oLineProduct = 27
)

var ErrInvalidBoard = errors.New("invalid board")

// Lines lists the 8 triples of cells that end the game when uniformly marked.
var Lines = [8][3]Move{
	// rows
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	// columns
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	// diagonals
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

type Side uint8

const (
	SideX Side = iota + 1
	SideO
)

func (that Side) Opponent() Side {
	if that == SideX {
		return SideO
	}
	return SideX
}

func (that Side) Mark() Cell {
	if that == SideX {
		return MarkX
	}
	return MarkO
}

func (that Side) String() string {
	switch that {
	case SideX:
		return "X"
	case SideO:
		return "O"
	default:
		return "-"
	}
}

// Move addresses a cell by zero-based row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is returned by the search for positions that are already decided.
var NoMove = Move{Row: -1, Col: -1}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row+1, that.Col+1)
}

// Board is the 3x3 grid together with the side to move. It is mutated in
// place: Apply and Undo must be paired in LIFO order.
type Board struct {
	cells [BoardSize][BoardSize]Cell
	turn  Side
}

// NewBoard returns an empty board with X to move.
func NewBoard() *Board {
	return &Board{turn: SideX}
}

// ParseBoard builds a board from three rows of 'X', 'O' and '.' and derives
// the side to move from the mark counts.
func ParseBoard(rows [BoardSize]string) (*Board, error) {
	board := NewBoard()
	xCount, oCount := 0, 0

	for r, row := range rows {
		if len(row) != BoardSize {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, r+1, len(row))
		}

		for c := 0; c < BoardSize; c++ {
			switch row[c] {
			case 'X', 'x':
				board.cells[r][c] = MarkX
				xCount++
			case 'O', 'o':
				board.cells[r][c] = MarkO
				oCount++
			case '.':
			default:
				return nil, fmt.Errorf("%w: unexpected %q in row %d", ErrInvalidBoard, row[c], r+1)
			}
		}
	}

	switch xCount - oCount {
	case 0:
		board.turn = SideX
	case 1:
		board.turn = SideO
	default:
		return nil, fmt.Errorf("%w: %d X marks against %d O marks", ErrInvalidBoard, xCount, oCount)
	}

	return board, nil
}

func (that *Board) Turn() Side {
	return that.turn
}

func (that *Board) Cell(row, col int) Cell {
	return that.cells[row][col]
}

// Cells returns a copy of the grid.
func (that *Board) Cells() [BoardSize][BoardSize]Cell {
	return that.cells
}

// Reset clears the grid and gives the move back to X.
func (that *Board) Reset() {
	that.cells = [BoardSize][BoardSize]Cell{}
	that.turn = SideX
}

func (that *Board) IsLegal(row, col int) bool {
	return Move{Row: row, Col: col}.InRange() && that.cells[row][col] == Empty
}

// Apply places the mark of the side to move and passes the turn. The caller
// must have checked IsLegal.
func (that *Board) Apply(row, col int) {
	that.cells[row][col] = that.turn.Mark()
	that.turn = that.turn.Opponent()
}

// Undo reverses the most recent Apply at the same coordinates.
func (that *Board) Undo(row, col int) {
	that.cells[row][col] = Empty
	that.turn = that.turn.Opponent()
}

// EmptyCells lists the free cells in row-major order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if that.cells[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// LineComplete reports whether any row, column or diagonal holds three equal
// marks, and whose marks they are.
func (that *Board) LineComplete() (bool, Side) {
	for _, line := range Lines {
		product := 1
		for _, m := range line {
			product *= lineWeights[that.cells[m.Row][m.Col]]
		}

		switch product {
		case xLineProduct:
			return true, SideX
		case oLineProduct:
			return true, SideO
		}
	}

	return false, 0
}

func (that *Board) IsDraw() bool {
	if complete, _ := that.LineComplete(); complete {
		return false
	}

	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			if that.cells[r][c] == Empty {
				return false
			}
		}
	}

	return true
}

func (that *Board) Outcome() Outcome {
	if complete, winner := that.LineComplete(); complete {
		return Outcome{Status: StatusWin, Winner: winner}
	}

	if that.IsDraw() {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusOngoing}
}
