package e2e

import (
	"flag"
	"testing"

	"github.com/battlesnakeio/snek/board"
	"github.com/battlesnakeio/snek/rules"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
)

var gameCount = flag.Int("e2e.games", 50, "games to play per variant")

var variants = map[string]func() rules.Config{
	"Solo":   rules.SoloConfig,
	"Versus": rules.VersusConfig,
	"FreeFood": func() rules.Config {
		cfg := rules.SoloConfig()
		cfg.FoodScore = 0
		return cfg
	},
	"SmallBoard": func() rules.Config {
		cfg := rules.VersusConfig()
		cfg.TileCount = 10
		cfg.Start.X, cfg.Start.Y = 2, 2
		cfg.EnemyLength = 4
		cfg.MaxSpawnAttempts = 4
		return cfg
	},
}

func TestRandomGames(t *testing.T) {
	for name, variant := range variants {
		cfg := variant()
		t.Run(name, func(t *testing.T) {
			for seed := int64(0); seed < int64(*gameCount); seed++ {
				st, err := playGame(cfg, seed, 2000, func(last, next *rules.GameState) error {
					return checkTurn(cfg, last, next)
				})
				if !assert.NoError(t, err, "seed %d", seed) {
					spew.Dump(st)
					return
				}
			}
		})
	}
}

func TestCheckTurnCatchesShrinking(t *testing.T) {
	cfg := rules.SoloConfig()
	last := &rules.GameState{
		Status: rules.GameStatusRunning,
		Snake:  board.NewSnake(board.Point{X: 3, Y: 3}, board.Point{X: 3, Y: 4}),
	}
	next := last.Clone()
	next.Turn = 1
	next.Snake = board.NewSnake(board.Point{X: 3, Y: 2})

	err := checkTurn(cfg, last, next)
	assert.EqualError(t, err, "length changed from 2 to 1 without eating")
}

func TestCheckTurnCatchesOverlap(t *testing.T) {
	cfg := rules.SoloConfig()
	last := &rules.GameState{
		Status: rules.GameStatusRunning,
		Snake:  board.NewSnake(board.Point{X: 3, Y: 3}, board.Point{X: 3, Y: 4}),
	}
	next := last.Clone()
	next.Turn = 1
	next.Snake = board.NewSnake(board.Point{X: 3, Y: 4}, board.Point{X: 3, Y: 4})

	err := checkTurn(cfg, last, next)
	assert.EqualError(t, err, "segment 0 at (3, 4) overlaps the body")
}
