package tictactoe

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	winValue  = 1
	lossValue = -1
	drawValue = 0

	// Any real evaluation beats these.
	maxSentinel = 10
	minSentinel = -maxSentinel
)

// Chooser picks an index in [0, n). It breaks ties between equally good moves.
type Chooser interface {
	Intn(n int) int
}

type Option func(engine *Engine)

func WithChooser(chooser Chooser) Option {
	return func(e *Engine) {
		if chooser != nil {
			e.chooser = chooser
		}
	}
}

// WithSeed makes tie-breaking reproducible. A zero seed keeps the default.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		if seed != 0 {
			e.chooser = rand.New(rand.NewSource(seed))
		}
	}
}

type SearchResult struct {
	Value    int
	Move     entity.Move
	Nodes    int
	Duration time.Duration
}

// Engine plays optimally by searching the whole game tree. It explores by
// applying and undoing moves on the caller's board, so a board must not be
// searched from more than one goroutine at a time.
type Engine struct {
	chooser Chooser
	nodes   int
}

func NewEngine(options ...Option) *Engine {
	e := &Engine{}
	for _, option := range options {
		option(e)
	}
	if e.chooser == nil {
		e.chooser = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return e
}

// BestMove returns the game-theoretic value of the position and one of the
// moves achieving it. Values are from the maximizing side's point of view:
// +1 win, 0 draw, -1 loss. On a decided board the move is entity.NoMove.
func (that *Engine) BestMove(board *entity.Board, maximizing bool) (int, entity.Move) {
	result := that.Search(board, maximizing)
	return result.Value, result.Move
}

// Search is BestMove plus the number of positions visited and the time spent.
func (that *Engine) Search(board *entity.Board, maximizing bool) SearchResult {
	that.nodes = 0
	start := time.Now()

	value, move := that.minimax(board, maximizing)

	return SearchResult{
		Value:    value,
		Move:     move,
		Nodes:    that.nodes,
		Duration: time.Since(start),
	}
}

func (that *Engine) minimax(board *entity.Board, maximizing bool) (int, entity.Move) {
	that.nodes++

	if complete, winner := board.LineComplete(); complete {
		return terminalValue(board.Turn(), winner, maximizing), entity.NoMove
	}
	if board.IsDraw() {
		return drawValue, entity.NoMove
	}

	best := maxSentinel
	if maximizing {
		best = minSentinel
	}

	var candidates []entity.Move
	for _, move := range board.EmptyCells() {
		board.Apply(move.Row, move.Col)
		value, _ := that.minimax(board, !maximizing)
		board.Undo(move.Row, move.Col)

		switch {
		case improves(value, best, maximizing):
			best = value
			candidates = append(candidates[:0], move)
		case value == best:
			candidates = append(candidates, move)
		}
	}

	return best, candidates[that.chooser.Intn(len(candidates))]
}

// terminalValue scores a completed line for the maximizing side, which is the
// side to move on a maximizing level and its opponent otherwise.
func terminalValue(toMove, winner entity.Side, maximizing bool) int {
	maximizer := toMove
	if !maximizing {
		maximizer = toMove.Opponent()
	}

	if winner == maximizer {
		return winValue
	}
	return lossValue
}

func improves(value, best int, maximizing bool) bool {
	if maximizing {
		return value > best
	}
	return value < best
}
