package rules

import (
	"github.com/battlesnakeio/snek/board"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// NewGame creates the initial state for cfg: a one segment player at
// cfg.Start with no heading, the enemy if enabled, then obstacles and food.
func NewGame(cfg Config, rnd Rand) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &GameState{
		ID:     uuid.NewV4().String(),
		Status: GameStatusRunning,
		Snake:  board.NewSnake(cfg.Start),
	}
	if cfg.EnemyEnabled {
		s.Enemy = initialEnemy(cfg)
		s.EnemyDirection = board.Up
	}
	placeObstacles(cfg, s, rnd)
	placeFood(cfg, s, rnd)

	log.WithFields(log.Fields{
		"GameID":    s.ID,
		"Enemy":     cfg.EnemyEnabled,
		"Obstacles": len(s.Obstacles),
		"Food":      s.Food,
	}).Info("game created")
	return s, nil
}

// Reset discards last and starts a new game with the same config.
func Reset(cfg Config, last *GameState, rnd Rand) (*GameState, error) {
	if last != nil {
		log.WithFields(log.Fields{
			"GameID": last.ID,
			"Turn":   last.Turn,
			"Score":  last.Score,
		}).Info("game reset")
	}
	return NewGame(cfg, rnd)
}

// initialEnemy lays the enemy out vertically, head up, starting three
// quarters of the way across the board. It is pulled up when it would hang
// off the bottom edge.
func initialEnemy(cfg Config) *board.Snake {
	x := cfg.TileCount * 3 / 4
	y := cfg.TileCount * 3 / 4
	if y+cfg.EnemyLength > cfg.TileCount {
		y = cfg.TileCount - cfg.EnemyLength
	}

	body := make([]board.Point, 0, cfg.EnemyLength)
	for i := 0; i < cfg.EnemyLength; i++ {
		body = append(body, board.Point{X: x, Y: y + i})
	}
	return board.NewSnake(body...)
}
