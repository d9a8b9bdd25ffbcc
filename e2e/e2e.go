// Package e2e plays whole games with a random player and checks the board
// stays consistent on every turn.
package e2e

import (
	"math/rand"

	"github.com/battlesnakeio/snek/board"
	"github.com/battlesnakeio/snek/rules"
	"github.com/pkg/errors"
)

// randomPlayer mashes the arrow keys, and sometimes presses nothing.
type randomPlayer struct {
	rnd *rand.Rand
}

var presses = []rules.Command{
	rules.CommandNone,
	rules.CommandUp,
	rules.CommandDown,
	rules.CommandLeft,
	rules.CommandRight,
}

func (p randomPlayer) press() rules.Command {
	return presses[p.rnd.Intn(len(presses))]
}

// playGame plays one game until it ends or maxTurns pass, calling check
// between every pair of consecutive states.
func playGame(cfg rules.Config, seed int64, maxTurns int, check func(last, next *rules.GameState) error) (*rules.GameState, error) {
	rnd := rand.New(rand.NewSource(seed))
	player := randomPlayer{rnd: rand.New(rand.NewSource(seed + 1))}

	state, err := rules.NewGame(cfg, rnd)
	if err != nil {
		return nil, err
	}
	for state.Turn < maxTurns && !rules.CheckForGameOver(state) {
		if state, _, err = rules.ApplyCommand(cfg, state, player.press(), rnd); err != nil {
			return state, err
		}
		next, err := rules.GameTick(cfg, state, rnd)
		if err != nil {
			return state, err
		}
		if err := check(state, next); err != nil {
			return next, errors.Wrapf(err, "turn %d", next.Turn)
		}
		state = next
	}
	return state, nil
}

// checkTurn verifies the rules that must hold from one turn to the next.
func checkTurn(cfg rules.Config, last, next *rules.GameState) error {
	if next.Turn != last.Turn+1 {
		return errors.Errorf("turn went from %d to %d", last.Turn, next.Turn)
	}

	ate := last.Food != nil && next.Snake.Head().Equal(*last.Food)
	switch {
	case ate && next.Score != last.Score+cfg.FoodScore:
		return errors.Errorf("ate but score went from %d to %d", last.Score, next.Score)
	case !ate && next.Score != last.Score:
		return errors.Errorf("score went from %d to %d without eating", last.Score, next.Score)
	case ate && next.Snake.Len() != last.Snake.Len()+1:
		return errors.Errorf("ate but length went from %d to %d", last.Snake.Len(), next.Snake.Len())
	case !ate && next.Snake.Len() != last.Snake.Len():
		return errors.Errorf("length changed from %d to %d without eating", last.Snake.Len(), next.Snake.Len())
	}

	if !pointsEqual(last.Obstacles, next.Obstacles) {
		return errors.New("obstacles moved")
	}
	if next.Enemy != nil && next.Enemy.Len() != cfg.EnemyLength {
		return errors.Errorf("enemy length is %d", next.Enemy.Len())
	}
	if next.Food != nil && board.ContainsPoint(next.Obstacles, *next.Food) {
		return errors.Errorf("food %s is on an obstacle", next.Food)
	}

	if next.GameOver() {
		if next.Death == nil {
			return errors.New("game over without a cause")
		}
		return nil
	}
	if next.Food != nil && next.Snake.Contains(*next.Food) {
		return errors.Errorf("food %s is under the player", next.Food)
	}
	return checkPlayer(cfg, next)
}

// checkPlayer verifies a living player is on the board with no overlapping
// segments.
func checkPlayer(cfg rules.Config, s *rules.GameState) error {
	for i, p := range s.Snake.Body {
		if !p.InBounds(cfg.TileCount) {
			return errors.Errorf("segment %d at %s is off the board", i, p)
		}
		if board.ContainsPoint(s.Snake.Body[i+1:], p) {
			return errors.Errorf("segment %d at %s overlaps the body", i, p)
		}
	}
	return nil
}

func pointsEqual(a, b []board.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
