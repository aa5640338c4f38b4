package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type console interface {
	Welcome()
	SelectMode() (entity.Mode, error)
	ShowBoard(board *entity.Board)
	ReadMove(side entity.Side) (entity.Move, error)
	RejectMove(err error)
	ShowEngineMove(side entity.Side, move entity.Move)
	ShowOutcome(outcome entity.Outcome)
	ShowScore(score entity.Score)
	AskReplay() (bool, error)
}

type botService interface {
	MakeTurn(board *entity.Board) (entity.Move, error)
}

type scoreboardRepo interface {
	Record(ctx context.Context, name string, outcome entity.Outcome) (entity.Score, error)
}

type GameManager struct {
	logger zerolog.Logger

	console        console
	bot            botService
	scoreboardRepo scoreboardRepo

	scoreboard string
	preset     entity.Mode
}

// NewGameManager wires a session. A zero preset asks for the mode before
// every game.
func NewGameManager(
	logger zerolog.Logger,
	console console,
	bot botService,
	scoreboardRepo scoreboardRepo,
	scoreboard string,
	preset entity.Mode,
) *GameManager {
	return &GameManager{
		logger: logger.With().Str("component", "game_manager").Logger(),

		console:        console,
		bot:            bot,
		scoreboardRepo: scoreboardRepo,

		scoreboard: scoreboard,
		preset:     preset,
	}
}

// RunSession plays games until the players decline a rematch or input ends.
func (that *GameManager) RunSession(ctx context.Context) error {
	board := entity.NewBoard()

	that.console.Welcome()

	for {
		mode, err := that.selectMode()
		if err != nil {
			return that.endSession(err)
		}

		outcome, err := that.PlayGame(ctx, board, mode)
		if err != nil {
			return that.endSession(err)
		}

		score, err := that.scoreboardRepo.Record(ctx, that.scoreboard, outcome)
		if err != nil {
			return fmt.Errorf("failed to record outcome: %w", err)
		}

		that.console.ShowScore(score)

		again, err := that.console.AskReplay()
		if err != nil {
			return that.endSession(err)
		}

		if !again {
			that.logger.Info().Int64("games", score.Games()).Msg("session finished")
			return nil
		}

		board.Reset()
	}
}

// PlayGame runs the turn loop on board until it is won or drawn.
func (that *GameManager) PlayGame(ctx context.Context, board *entity.Board, mode entity.Mode) (entity.Outcome, error) {
	if !mode.Valid() {
		return entity.Outcome{}, fmt.Errorf("%w: %d", entity.ErrUnknownMode, mode)
	}

	log := that.logger.With().
		Str("game_id", uuid.NewString()).
		Stringer("mode", mode).
		Logger()

	log.Info().Msg("game started")

	for {
		if err := ctx.Err(); err != nil {
			return entity.Outcome{}, err
		}

		that.console.ShowBoard(board)

		outcome := board.Outcome()
		if outcome.IsTerminal() {
			that.console.ShowOutcome(outcome)
			log.Info().Stringer("outcome", outcome).Msg("game finished")

			return outcome, nil
		}

		side := board.Turn()

		var err error
		if mode.IsHuman(side) {
			err = that.humanTurn(log, board, side)
		} else {
			err = that.engineTurn(board, side)
		}

		if err != nil {
			return entity.Outcome{}, err
		}
	}
}

func (that *GameManager) humanTurn(log zerolog.Logger, board *entity.Board, side entity.Side) error {
	for {
		move, err := that.console.ReadMove(side)
		if err == nil {
			err = tictactoe.MakeTurn(board, move)
		}

		switch {
		case err == nil:
			log.Debug().Stringer("side", side).Stringer("move", move).Msg("human moved")
			return nil
		case isRejectedMove(err):
			log.Debug().Err(err).Stringer("side", side).Msg("move rejected")
			that.console.RejectMove(err)
		default:
			return fmt.Errorf("failed to read move: %w", err)
		}
	}
}

func (that *GameManager) engineTurn(board *entity.Board, side entity.Side) error {
	move, err := that.bot.MakeTurn(board)
	if err != nil {
		return fmt.Errorf("failed to make bot turn: %w", err)
	}

	that.console.ShowEngineMove(side, move)

	return nil
}

func (that *GameManager) selectMode() (entity.Mode, error) {
	if that.preset.Valid() {
		return that.preset, nil
	}

	mode, err := that.console.SelectMode()
	if err != nil {
		return 0, fmt.Errorf("failed to select mode: %w", err)
	}

	return mode, nil
}

// endSession treats closed input as the players walking away.
func (that *GameManager) endSession(err error) error {
	if errors.Is(err, apperror.ErrInputClosed) {
		that.logger.Info().Msg("input closed, ending session")
		return nil
	}

	return err
}

func isRejectedMove(err error) bool {
	return errors.Is(err, apperror.ErrInvalidInput) ||
		errors.Is(err, tictactoe.ErrInvalidCell) ||
		errors.Is(err, apperror.ErrCellOccupied)
}
