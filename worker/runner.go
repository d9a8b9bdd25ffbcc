package worker

import (
	"context"

	"github.com/battlesnakeio/snek/rules"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Autoplay runs a single game to completion without a player at the
// keyboard. Script holds the command pressed before each tick, CommandNone
// for none, and the game idles once the script runs out.
type Autoplay struct {
	Config rules.Config
	Rand   rules.Rand
	// Limiter paces the ticks, nil runs them flat out.
	Limiter *rate.Limiter
	Script  []rules.Command
	// MaxTurns stops a game that would otherwise never end, 0 means no
	// limit.
	MaxTurns int
	Score    ScoreSink
}

// Run plays the game until it is over, the turn limit is hit, the script
// quits or ctx is done.
func (a *Autoplay) Run(ctx context.Context) (*rules.GameState, error) {
	state, err := rules.NewGame(a.Config, a.Rand)
	if err != nil {
		return nil, err
	}
	limiter := a.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	for a.MaxTurns <= 0 || state.Turn < a.MaxTurns {
		if err := limiter.Wait(ctx); err != nil {
			return state, err
		}

		if state.Turn < len(a.Script) {
			cmd := a.Script[state.Turn]
			if cmd == rules.CommandQuit {
				log.WithField("GameID", state.ID).
					WithField("turn", state.Turn).
					Info("script quit")
				return state, nil
			}
			if state, _, err = rules.ApplyCommand(a.Config, state, cmd, a.Rand); err != nil {
				return state, err
			}
		}

		next, err := rules.GameTick(a.Config, state, a.Rand)
		if err != nil {
			return state, err
		}
		observeTick(state, next, a.Score)
		state = next

		if rules.CheckForGameOver(state) {
			return state, nil
		}
	}

	log.WithField("GameID", state.ID).
		WithField("turn", state.Turn).
		Info("turn limit reached")
	return state, nil
}
