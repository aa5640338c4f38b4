package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrInvalidCell = errors.New("invalid cell")

// MakeTurn applies a move coming from outside the engine. The board is left
// untouched when the move is rejected.
func MakeTurn(board *entity.Board, move entity.Move) error {
	if board.Outcome().IsTerminal() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(board, move); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	board.Apply(move.Row, move.Col)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, move entity.Move) error {
	if !move.InRange() {
		return fmt.Errorf("%w: %s", ErrInvalidCell, move)
	}

	if !board.IsLegal(move.Row, move.Col) {
		return apperror.ErrCellOccupied
	}

	return nil
}
