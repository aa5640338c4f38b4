package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	MakeTurn(board *entity.Board) (entity.Move, error)
}

type searcher interface {
	Search(board *entity.Board, maximizing bool) tictactoe.SearchResult
}

type botService struct {
	logger zerolog.Logger
	engine searcher
}

func NewBotService(logger zerolog.Logger, engine searcher) BotService {
	return &botService{
		logger: logger.With().Str("component", "bot").Logger(),
		engine: engine,
	}
}

// MakeTurn plays the engine's move for the side to move, which is always the
// maximizing side of the search.
func (that *botService) MakeTurn(board *entity.Board) (entity.Move, error) {
	if board.Outcome().IsTerminal() {
		return entity.NoMove, ErrNoAvailableMoves
	}

	side := board.Turn()
	result := that.engine.Search(board, true)

	if err := tictactoe.MakeTurn(board, result.Move); err != nil {
		return entity.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug().
		Stringer("side", side).
		Stringer("move", result.Move).
		Int("value", result.Value).
		Int("nodes", result.Nodes).
		Dur("duration", result.Duration).
		Msg("bot moved")

	return result.Move, nil
}
