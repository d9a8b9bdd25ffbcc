package rules

import (
	"github.com/battlesnakeio/snek/board"
	"github.com/pkg/errors"
)

// Rand is the source of randomness for spawning and for the enemy's fallback
// move. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Config selects the game variant and its board. The solo and versus games
// share every rule, they only differ in these knobs.
type Config struct {
	// TileCount is the width and height of the square grid.
	TileCount int
	// Start is where the player's single segment is placed on reset.
	Start board.Point
	// FoodScore is added to the score for every food eaten.
	FoodScore int

	EnemyEnabled bool
	EnemyLength  int

	// Obstacle count is drawn uniformly from [MinObstacles, MaxObstacles].
	MinObstacles int
	MaxObstacles int

	// MaxSpawnAttempts caps rejection sampling before falling back to a scan
	// of the free cells.
	MaxSpawnAttempts int
}

// Defaults for a 20x20 board.
const (
	DefaultTileCount        = 20
	DefaultFoodScore        = 10
	DefaultEnemyLength      = 7
	DefaultMinObstacles     = 3
	DefaultMaxObstacles     = 7
	DefaultMaxSpawnAttempts = 64
)

// VersusConfig is the game with the enemy snake and obstacles.
func VersusConfig() Config {
	return Config{
		TileCount:        DefaultTileCount,
		Start:            board.Point{X: 10, Y: 10},
		FoodScore:        DefaultFoodScore,
		EnemyEnabled:     true,
		EnemyLength:      DefaultEnemyLength,
		MinObstacles:     DefaultMinObstacles,
		MaxObstacles:     DefaultMaxObstacles,
		MaxSpawnAttempts: DefaultMaxSpawnAttempts,
	}
}

// SoloConfig is the classic game: one snake, food, nothing else.
func SoloConfig() Config {
	c := VersusConfig()
	c.EnemyEnabled = false
	c.MinObstacles = 0
	c.MaxObstacles = 0
	return c
}

// Validate checks that a game can be created from the config.
func (c Config) Validate() error {
	if c.TileCount < 2 {
		return errors.Errorf("rules: tile count must be at least 2, got %d", c.TileCount)
	}
	if !c.Start.InBounds(c.TileCount) {
		return errors.Errorf("rules: start %s is outside a %dx%d board", c.Start, c.TileCount, c.TileCount)
	}
	if c.FoodScore < 0 {
		return errors.Errorf("rules: food score must not be negative, got %d", c.FoodScore)
	}
	if c.MinObstacles < 0 || c.MaxObstacles < c.MinObstacles {
		return errors.Errorf("rules: invalid obstacle range [%d, %d]", c.MinObstacles, c.MaxObstacles)
	}
	if c.MaxSpawnAttempts < 0 {
		return errors.Errorf("rules: spawn attempts must not be negative, got %d", c.MaxSpawnAttempts)
	}
	if !c.EnemyEnabled {
		return nil
	}
	if c.EnemyLength < 1 || c.EnemyLength > c.TileCount {
		return errors.Errorf("rules: enemy length must be within [1, %d], got %d", c.TileCount, c.EnemyLength)
	}
	if initialEnemy(c).Contains(c.Start) {
		return errors.Errorf("rules: player start %s overlaps the enemy", c.Start)
	}
	return nil
}
