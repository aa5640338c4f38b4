package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	t.Run("Accepts the four menu entries", func(t *testing.T) {
		for i, input := range []string{"1", "2", " 3", "4\n"} {
			mode, err := ParseMode(input)
			require.NoError(t, err)
			assert.Equal(t, Modes[i], mode)
		}
	})

	t.Run("Rejects anything else", func(t *testing.T) {
		for _, input := range []string{"", "0", "5", "two"} {
			_, err := ParseMode(input)
			require.ErrorIs(t, err, ErrUnknownMode)
		}
	})
}

func TestMode_Player(t *testing.T) {
	tests := []struct {
		mode Mode
		x, o PlayerKind
	}{
		{mode: HumanVsHuman, x: Human, o: Human},
		{mode: HumanVsEngine, x: Human, o: Engine},
		{mode: EngineVsHuman, x: Engine, o: Human},
		{mode: EngineVsEngine, x: Engine, o: Engine},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.x, tt.mode.Player(SideX))
			assert.Equal(t, tt.o, tt.mode.Player(SideO))
			assert.Equal(t, tt.x == Human, tt.mode.IsHuman(SideX))
		})
	}
}

func TestScore_Record(t *testing.T) {
	// Given: an empty score
	var score Score

	// When: recording two X wins, one O win, a draw and an unfinished game
	score.Record(Outcome{Status: StatusWin, Winner: SideX})
	score.Record(Outcome{Status: StatusWin, Winner: SideX})
	score.Record(Outcome{Status: StatusWin, Winner: SideO})
	score.Record(Outcome{Status: StatusDraw})
	score.Record(Outcome{Status: StatusOngoing})

	// Then: only finished games are counted
	assert.Equal(t, Score{X: 2, O: 1, Draws: 1}, score)
	assert.Equal(t, int64(4), score.Games())
}
