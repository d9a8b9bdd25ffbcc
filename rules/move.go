package rules

import (
	"github.com/battlesnakeio/snek/board"
	log "github.com/sirupsen/logrus"
)

// Steer points the player at d. It is applied straight away and the last
// call before a tick wins. A heading that is the exact reverse of the
// current one is rejected, as is any steering once the game is over.
func Steer(s *GameState, d board.Direction) bool {
	if !s.Running() || d.IsZero() || d.Opposes(s.Direction) {
		return false
	}
	s.Direction = d
	return true
}

// advancePlayer moves the player one tile along its heading. Eating grows
// the snake, scores and respawns the food.
func advancePlayer(cfg Config, s *GameState, rnd Rand) bool {
	newHead := s.Snake.Head().Add(s.Direction)
	ate := s.Food != nil && s.Food.Equal(newHead)
	s.Snake.Move(s.Direction, ate)
	if !ate {
		return false
	}

	s.Score += cfg.FoodScore
	log.WithFields(log.Fields{
		"GameID": s.ID,
		"Turn":   s.Turn,
		"Food":   newHead,
		"Score":  s.Score,
	}).Debug("snake ate")
	placeFood(cfg, s, rnd)
	return true
}
