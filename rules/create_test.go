package rules

import (
	"testing"

	"github.com/battlesnakeio/snek/board"
	"github.com/stretchr/testify/require"
)

func requireFreshGame(t *testing.T, cfg Config, s *GameState) {
	require.NotEmpty(t, s.ID)
	require.Equal(t, []board.Point{pt(10, 10)}, s.Snake.Body)
	require.Equal(t, 0, s.Score)
	require.Equal(t, 0, s.Turn)
	require.True(t, s.Running())
	require.Nil(t, s.Death)
	require.True(t, s.Direction.IsZero())

	require.NotNil(t, s.Food)
	require.False(t, s.Snake.Contains(*s.Food))
	require.False(t, board.ContainsPoint(s.Obstacles, *s.Food))
	for _, o := range s.Obstacles {
		require.False(t, s.Snake.Contains(o))
	}
	if cfg.EnemyEnabled {
		require.False(t, s.Enemy.Contains(*s.Food))
		for _, o := range s.Obstacles {
			require.False(t, s.Enemy.Contains(o))
		}
	}
}

func TestNewGameVersus(t *testing.T) {
	cfg := VersusConfig()
	s, err := NewGame(cfg, seeded(3))
	require.NoError(t, err)
	requireFreshGame(t, cfg, s)

	require.Len(t, s.Enemy.Body, 7)
	require.Equal(t, pt(15, 13), s.Enemy.Head())
	require.Equal(t, pt(15, 19), s.Enemy.Tail())
	require.Equal(t, board.Up, s.EnemyDirection)
	require.True(t, len(s.Obstacles) >= 3 && len(s.Obstacles) <= 7)
}

func TestNewGameSolo(t *testing.T) {
	cfg := SoloConfig()
	s, err := NewGame(cfg, seeded(3))
	require.NoError(t, err)
	requireFreshGame(t, cfg, s)
	require.Nil(t, s.Enemy)
	require.Empty(t, s.Obstacles)
}

func TestNewGameInvalidConfig(t *testing.T) {
	cfg := VersusConfig()
	cfg.TileCount = 1
	_, err := NewGame(cfg, seeded(1))
	require.Error(t, err)
}

func TestReset(t *testing.T) {
	cfg := VersusConfig()
	rnd := seeded(11)
	played, err := NewGame(cfg, rnd)
	require.NoError(t, err)
	played.Snake = board.NewSnake(pt(-1, 4), pt(0, 4), pt(1, 4))
	played.Score = 40
	played.Turn = 52
	played.Direction = board.Left
	played.Status = GameStatusOver
	played.Death = &Death{Turn: 52, Cause: DeathCauseWallCollision}

	s, err := Reset(cfg, played, rnd)
	require.NoError(t, err)
	requireFreshGame(t, cfg, s)
	require.NotEqual(t, played.ID, s.ID)
	require.Equal(t, initialEnemy(cfg).Body, s.Enemy.Body)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, VersusConfig().Validate())
	require.NoError(t, SoloConfig().Validate())

	tests := map[string]func(c *Config){
		"TileCount":       func(c *Config) { c.TileCount = 1 },
		"StartOffBoard":   func(c *Config) { c.Start = pt(20, 3) },
		"NegativeScore":   func(c *Config) { c.FoodScore = -1 },
		"ObstacleRange":   func(c *Config) { c.MinObstacles, c.MaxObstacles = 5, 4 },
		"SpawnAttempts":   func(c *Config) { c.MaxSpawnAttempts = -1 },
		"EnemyLength":     func(c *Config) { c.EnemyLength = 0 },
		"EnemyTooLong":    func(c *Config) { c.EnemyLength = 21 },
		"StartOnTheEnemy": func(c *Config) { c.Start = pt(15, 16) },
	}
	for name, mutate := range tests {
		cfg := VersusConfig()
		mutate(&cfg)
		require.Error(t, cfg.Validate(), name)
	}
}

func TestInitialEnemyFitsSmallBoard(t *testing.T) {
	cfg := VersusConfig()
	cfg.TileCount = 8
	cfg.Start = pt(1, 1)
	enemy := initialEnemy(cfg)
	require.Equal(t, pt(6, 1), enemy.Head())
	for _, p := range enemy.Body {
		require.True(t, p.InBounds(cfg.TileCount))
	}
}
