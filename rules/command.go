package rules

import "github.com/battlesnakeio/snek/board"

// Command is a discrete player input.
type Command int

// Commands understood by ApplyCommand. CommandQuit is left to whoever drives
// the game loop.
const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandReset
	CommandQuit
)

var keyCodes = map[string]Command{
	"ArrowUp":    CommandUp,
	"ArrowDown":  CommandDown,
	"ArrowLeft":  CommandLeft,
	"ArrowRight": CommandRight,
	"Space":      CommandReset,
	"Escape":     CommandQuit,
}

// ParseCommand maps a key code to its command. Unknown codes report false and
// are meant to be ignored.
func ParseCommand(code string) (Command, bool) {
	c, ok := keyCodes[code]
	return c, ok
}

// Direction returns the heading of a directional command.
func (c Command) Direction() (board.Direction, bool) {
	switch c {
	case CommandUp:
		return board.Up, true
	case CommandDown:
		return board.Down, true
	case CommandLeft:
		return board.Left, true
	case CommandRight:
		return board.Right, true
	}
	return board.Idle, false
}

func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandReset:
		return "reset"
	case CommandQuit:
		return "quit"
	}
	return "none"
}

// ApplyCommand handles a command between ticks. Directional commands steer s
// in place while the game runs. Reset only works once the game is over and
// returns a brand new state. The returned state is the one to keep using and
// changed reports whether the command had any effect.
func ApplyCommand(cfg Config, s *GameState, c Command, rnd Rand) (*GameState, bool, error) {
	if d, ok := c.Direction(); ok {
		return s, Steer(s, d), nil
	}
	if c == CommandReset && CheckForGameOver(s) {
		next, err := Reset(cfg, s, rnd)
		if err != nil {
			return s, false, err
		}
		return next, true, nil
	}
	return s, false, nil
}
