package commands

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/battlesnakeio/snek/config"
	"github.com/battlesnakeio/snek/rules"
	"github.com/battlesnakeio/snek/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "snek",
	Short:             "snek is a terminal snake game with an enemy snake that runs from you",
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
}

var (
	solo             bool
	tileCount        = config.TileCount
	foodScore        = config.FoodScore
	enemyLength      = config.EnemyLength
	minObstacles     = config.MinObstacles
	maxObstacles     = config.MaxObstacles
	maxSpawnAttempts = config.MaxSpawnAttempts
	seed             int64
	logLevel         = "info"
	logFile          string
	logOutput        *os.File
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&solo, "solo", solo, "play without the enemy snake and obstacles")
	flags.IntVarP(&tileCount, "tiles", "t", tileCount, "width and height of the board in tiles")
	flags.IntVar(&foodScore, "food-score", foodScore, "points scored per food")
	flags.IntVar(&enemyLength, "enemy-length", enemyLength, "length of the enemy snake")
	flags.IntVar(&minObstacles, "min-obstacles", minObstacles, "fewest obstacles placed per game")
	flags.IntVar(&maxObstacles, "max-obstacles", maxObstacles, "most obstacles placed per game")
	flags.IntVar(&maxSpawnAttempts, "spawn-attempts", maxSpawnAttempts, "random draws before scanning the board for a free tile")
	flags.Int64Var(&seed, "seed", seed, "random seed, 0 picks one from the clock")
	flags.StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&logFile, "log-file", logFile, "write logs to this file instead of stderr")
}

// Execute runs the root command
func Execute() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)

	err := rootCmd.Execute()
	closeLogFile()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func closeLogFile() {
	if logOutput == nil {
		return
	}
	log.SetOutput(os.Stderr)
	if err := logOutput.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "unable to close log file:", err)
	}
	logOutput = nil
}

func setupLogging(*cobra.Command, []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}
	log.SetLevel(level)

	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "unable to open log file")
	}
	logOutput = f
	log.SetOutput(f)
	return nil
}

// gameConfig applies the flags on top of the environment defaults.
func gameConfig() rules.Config {
	cfg := config.Game(!solo)
	cfg.TileCount = tileCount
	cfg.FoodScore = foodScore
	cfg.EnemyLength = enemyLength
	cfg.MaxSpawnAttempts = maxSpawnAttempts
	if !solo {
		cfg.MinObstacles = minObstacles
		cfg.MaxObstacles = maxObstacles
	}
	// keep the player in the middle of boards of any size
	cfg.Start.X = tileCount / 2
	cfg.Start.Y = tileCount / 2
	return cfg
}

func newRand() *rand.Rand {
	s := seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.WithField("seed", s).Debug("random source")
	return rand.New(rand.NewSource(s))
}
