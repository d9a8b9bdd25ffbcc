package commands

import (
	"context"
	"io/ioutil"
	"time"

	"github.com/battlesnakeio/snek/config"
	"github.com/battlesnakeio/snek/render"
	"github.com/battlesnakeio/snek/worker"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	tickInterval = config.TickInterval
)

func init() {
	playCmd.Flags().DurationVar(&tickInterval, "tick", tickInterval, "time between ticks")
	playCmd.Flags().StringVar(&metricsListen, "metrics-listen", metricsListen, "serve prometheus metrics on this address, empty to disable")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play in the terminal, arrows steer, space restarts after a crash, esc quits",
	RunE: func(*cobra.Command, []string) error {
		cfg := gameConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}
		// the terminal belongs to the game from here on
		if logFile == "" {
			log.SetOutput(ioutil.Discard)
		}
		startMetrics()

		tb, err := render.NewTermbox(cfg.TileCount)
		if err != nil {
			return err
		}
		defer tb.Close()

		w := &worker.Worker{
			Config:       cfg,
			Renderer:     worker.InstrumentRenderer(tb),
			Input:        tb,
			Score:        tb,
			TickInterval: tickInterval,
			Rand:         newRand(),
		}
		start := time.Now()
		state, err := w.Run(context.Background())
		if err != nil {
			return errors.Wrap(err, "game stopped")
		}

		log.WithFields(log.Fields{
			"GameID":   state.ID,
			"Turn":     state.Turn,
			"Score":    state.Score,
			"Duration": time.Since(start),
		}).Info("thanks for playing")
		return nil
	},
}
