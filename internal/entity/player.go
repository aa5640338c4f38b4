package entity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMode = errors.New("unknown game mode")

type PlayerKind uint8

const (
	Human PlayerKind = iota + 1
	Engine
)

func (that PlayerKind) String() string {
	if that == Engine {
		return "AI"
	}
	return "human"
}

// Mode fixes who drives each side for a whole game.
type Mode uint8

const (
	HumanVsHuman Mode = iota + 1
	HumanVsEngine
	EngineVsHuman
	EngineVsEngine
)

// Modes lists the selectable modes in menu order.
var Modes = []Mode{HumanVsHuman, HumanVsEngine, EngineVsHuman, EngineVsEngine}

func ParseMode(input string) (Mode, error) {
	switch strings.TrimSpace(input) {
	case "1":
		return HumanVsHuman, nil
	case "2":
		return HumanVsEngine, nil
	case "3":
		return EngineVsHuman, nil
	case "4":
		return EngineVsEngine, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, input)
	}
}

func (that Mode) Valid() bool {
	return that >= HumanVsHuman && that <= EngineVsEngine
}

// Player returns who moves for the given side.
func (that Mode) Player(side Side) PlayerKind {
	switch that {
	case HumanVsHuman:
		return Human
	case HumanVsEngine:
		if side == SideX {
			return Human
		}
		return Engine
	case EngineVsHuman:
		if side == SideX {
			return Engine
		}
		return Human
	default:
		return Engine
	}
}

func (that Mode) IsHuman(side Side) bool {
	return that.Player(side) == Human
}

func (that Mode) String() string {
	return fmt.Sprintf("%s vs %s", that.Player(SideX), that.Player(SideO))
}
