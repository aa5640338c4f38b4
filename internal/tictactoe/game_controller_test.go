package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new board
		board := entity.NewBoard()

		// When: X plays the centre
		err := MakeTurn(board, entity.Move{Row: 1, Col: 1})
		require.NoError(t, err)

		// Then: the mark is placed and O is to move
		assert.Equal(t, entity.MarkX, board.Cell(1, 1))
		assert.Equal(t, entity.SideO, board.Turn())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X has played the centre
		board := entity.NewBoard()
		require.NoError(t, MakeTurn(board, entity.Move{Row: 1, Col: 1}))
		before := *board

		// When: O tries the same cell
		err := MakeTurn(board, entity.Move{Row: 1, Col: 1})

		// Then: ErrCellOccupied is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *board)
	})

	t.Run("Error on out of range cell", func(t *testing.T) {
		board := entity.NewBoard()

		for _, move := range []entity.Move{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 3, Col: 3}} {
			err := MakeTurn(board, move)

			require.ErrorIs(t, err, ErrInvalidCell)
			assert.Equal(t, *entity.NewBoard(), *board)
		}
	})

	t.Run("Error on finished game", func(t *testing.T) {
		// Given: X has already won
		board := parse(t, "XXX", "OO.", "...")

		// When: O tries to keep playing
		err := MakeTurn(board, entity.Move{Row: 1, Col: 2})

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, entity.Empty, board.Cell(1, 2))
	})
}
