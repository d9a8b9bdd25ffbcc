package rules

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// GameTick runs the game one tick and returns the next state, last is left
// untouched. A game that is over is returned as is until it is reset.
//
// The player only moves once it has a heading. If the move kills it the game
// ends there and the enemy stays put, otherwise the enemy moves every tick.
func GameTick(cfg Config, last *GameState, rnd Rand) (*GameState, error) {
	if last == nil {
		return nil, errors.New("rules: invalid state, previous state is nil")
	}
	next := last.Clone()
	if !next.Running() {
		return next, nil
	}
	next.Turn++

	if !next.Direction.IsZero() {
		advancePlayer(cfg, next, rnd)

		if death := checkForDeath(cfg.TileCount, next); death != nil {
			next.Status = GameStatusOver
			next.Death = death
			log.WithFields(log.Fields{
				"GameID": next.ID,
				"Turn":   next.Turn,
				"Cause":  death.Cause,
				"Score":  next.Score,
			}).Info("game over")
			return next, nil
		}
	}

	if next.Enemy != nil {
		advanceEnemy(cfg, next, rnd)
	}

	log.WithFields(log.Fields{
		"GameID": next.ID,
		"Turn":   next.Turn,
		"Head":   next.Snake.Head(),
		"Length": next.Snake.Len(),
	}).Debug("tick")
	return next, nil
}
