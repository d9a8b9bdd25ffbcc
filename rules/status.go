package rules

// GameStatus is the state machine position of a game.
type GameStatus string

const (
	// GameStatusRunning represents a game that is being ticked
	GameStatusRunning GameStatus = "running"
	// GameStatusOver represents a game frozen after a collision, waiting for a
	// reset
	GameStatusOver GameStatus = "over"
)
