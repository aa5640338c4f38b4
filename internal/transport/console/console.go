package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var modeNames = map[entity.Mode]string{
	entity.HumanVsHuman:   "human vs human",
	entity.HumanVsEngine:  "human vs AI",
	entity.EngineVsHuman:  "AI vs human",
	entity.EngineVsEngine: "AI vs AI",
}

var replayAnswers = map[string]struct{}{
	"y":   {},
	"yes": {},
	"1":   {},
}

// Console talks to the players over a line-oriented terminal.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (that *Console) Welcome() {
	that.println("\nWelcome to Tic-Tac-Toe!")
}

// SelectMode shows the mode menu until one of its entries is chosen.
func (that *Console) SelectMode() (entity.Mode, error) {
	that.println("Choose the mode of play:")
	for i, mode := range entity.Modes {
		that.printf("%d : %s\n", i+1, modeNames[mode])
	}

	for {
		that.print(" ")

		line, err := that.readLine()
		if err != nil {
			return 0, err
		}

		mode, err := entity.ParseMode(line)
		if err == nil {
			that.println("Enjoy the game!")
			return mode, nil
		}

		that.println("Unknown mode. Choose 1, 2, 3 or 4.")
	}
}

func (that *Console) ShowBoard(board *entity.Board) {
	that.print(RenderBoard(board))
}

// ReadMove reads a 1-based row and column, both prompts first and then the
// parse, so a bad answer never shifts the next prompt. Non-numeric input is
// reported as apperror.ErrInvalidInput; range and occupancy are left to the
// rules.
func (that *Console) ReadMove(_ entity.Side) (entity.Move, error) {
	that.print("First coordinate (1-3): ")
	first, err := that.readLine()
	if err != nil {
		return entity.NoMove, err
	}

	that.print("Second coordinate (1-3): ")
	second, err := that.readLine()
	if err != nil {
		return entity.NoMove, err
	}

	row, err := parseCoordinate(first)
	if err != nil {
		return entity.NoMove, err
	}

	col, err := parseCoordinate(second)
	if err != nil {
		return entity.NoMove, err
	}

	return entity.Move{Row: row - 1, Col: col - 1}, nil
}

func (that *Console) RejectMove(_ error) {
	that.println("Invalid move. Try again.")
}

func (that *Console) ShowEngineMove(side entity.Side, move entity.Move) {
	that.printf("AI (%s) plays %d %d\n", side, move.Row+1, move.Col+1)
}

func (that *Console) ShowOutcome(outcome entity.Outcome) {
	switch outcome.Status {
	case entity.StatusWin:
		that.printf("Game over! Player %s won.\n", playerLabel(outcome.Winner))
	case entity.StatusDraw:
		that.println("Game over! It's a tie.")
	}
}

func (that *Console) ShowScore(score entity.Score) {
	that.printf("Score: X %d - O %d - draws %d\n", score.X, score.O, score.Draws)
}

func (that *Console) AskReplay() (bool, error) {
	that.print("Do you want to play again? (Y/N): ")

	line, err := that.readLine()
	if err != nil {
		return false, err
	}

	_, ok := replayAnswers[strings.ToLower(strings.TrimSpace(line))]

	return ok, nil
}

// RenderBoard draws the grid with 1-based headers and names the side to move.
func RenderBoard(board *entity.Board) string {
	var sb strings.Builder

	sb.WriteString("\n    1   2   3\n\n")
	for r := 0; r < entity.BoardSize; r++ {
		if r > 0 {
			sb.WriteString("   ---+---+---\n")
		}

		sb.WriteString(strconv.Itoa(r + 1))
		sb.WriteString("  ")
		for c := 0; c < entity.BoardSize; c++ {
			if c > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(" ")
			sb.WriteString(glyph(board.Cell(r, c)))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("           Player: ")
	sb.WriteString(playerLabel(board.Turn()))
	sb.WriteString("\n")

	return sb.String()
}

func glyph(cell entity.Cell) string {
	switch cell {
	case entity.MarkX:
		return "X"
	case entity.MarkO:
		return "O"
	default:
		return "."
	}
}

func playerLabel(side entity.Side) string {
	if side == entity.SideX {
		return "1 (X)"
	}
	return "2 (O)"
}

func parseCoordinate(line string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, line)
	}

	return value, nil
}

func (that *Console) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", apperror.ErrInputClosed
	}

	return that.in.Text(), nil
}

// Terminal write errors are not actionable mid-game.
func (that *Console) print(s string) {
	_, _ = io.WriteString(that.out, s)
}

func (that *Console) println(s string) {
	_, _ = io.WriteString(that.out, s+"\n")
}

func (that *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(that.out, format, args...)
}
