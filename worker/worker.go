// Package worker provides the actual running of games. It owns the game
// state, ticks it on a fixed interval and applies player input between
// ticks, all from a single goroutine.
package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/snek/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Renderer draws a game state. It is called after every tick, after a reset
// and when the game ends.
type Renderer interface {
	Render(*rules.GameState) error
}

// InputSource delivers player commands. Closing the channel stops the game.
type InputSource interface {
	Commands() <-chan rules.Command
}

// ScoreSink is told the new score whenever it changes, including the drop
// back to zero on reset.
type ScoreSink interface {
	ScoreChanged(score int)
}

// Worker runs an interactive game until the player quits.
type Worker struct {
	Config       rules.Config
	Renderer     Renderer
	Input        InputSource
	Score        ScoreSink
	TickInterval time.Duration
	Rand         rules.Rand
}

// Run plays games back to back, resetting on request, until the player quits,
// the input closes or ctx is done. It returns the last state.
func (w *Worker) Run(ctx context.Context) (*rules.GameState, error) {
	if w.TickInterval <= 0 {
		return nil, errors.Errorf("worker: tick interval must be positive, got %s", w.TickInterval)
	}
	state, err := rules.NewGame(w.Config, w.Rand)
	if err != nil {
		return nil, err
	}
	if err := w.render(state); err != nil {
		return state, err
	}

	ticker := time.NewTicker(w.TickInterval)
	defer ticker.Stop()
	commands := w.Input.Commands()

	for {
		select {
		case <-ctx.Done():
			return state, ctx.Err()

		case cmd, ok := <-commands:
			if !ok || cmd == rules.CommandQuit {
				log.WithField("GameID", state.ID).Info("player quit")
				return state, nil
			}
			next, changed, err := rules.ApplyCommand(w.Config, state, cmd, w.Rand)
			if err != nil {
				return state, err
			}
			if !changed || next == state {
				continue
			}
			state = next
			w.notifyScore(state.Score)
			if err := w.render(state); err != nil {
				return state, err
			}

		case <-ticker.C:
			if rules.CheckForGameOver(state) {
				continue
			}
			next, err := rules.GameTick(w.Config, state, w.Rand)
			if err != nil {
				return state, err
			}
			observeTick(state, next, w.Score)
			state = next
			if err := w.render(state); err != nil {
				return state, err
			}
		}
	}
}

func (w *Worker) render(state *rules.GameState) error {
	if err := w.Renderer.Render(state); err != nil {
		return errors.Wrapf(err, "render turn %d", state.Turn)
	}
	return nil
}

func (w *Worker) notifyScore(score int) {
	if w.Score != nil {
		w.Score.ScoreChanged(score)
	}
}
