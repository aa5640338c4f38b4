package entity

import "fmt"

type Status uint8

const (
	StatusOngoing Status = iota
	StatusWin
	StatusDraw
)

// Outcome is derived from a board on demand and never stored on it.
type Outcome struct {
	Status Status
	Winner Side
}

func (that Outcome) IsTerminal() bool {
	return that.Status != StatusOngoing
}

func (that Outcome) String() string {
	switch that.Status {
	case StatusWin:
		return fmt.Sprintf("%s won", that.Winner)
	case StatusDraw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Score tallies finished games across a session.
type Score struct {
	X     int64 `json:"x" redis:"x"`
	O     int64 `json:"o" redis:"o"`
	Draws int64 `json:"draws" redis:"draws"`
}

// Record adds a finished game to the tally; ongoing outcomes are ignored.
func (that *Score) Record(outcome Outcome) {
	switch {
	case outcome.Status == StatusDraw:
		that.Draws++
	case outcome.Status == StatusWin && outcome.Winner == SideX:
		that.X++
	case outcome.Status == StatusWin && outcome.Winner == SideO:
		that.O++
	}
}

func (that Score) Games() int64 {
	return that.X + that.O + that.Draws
}
