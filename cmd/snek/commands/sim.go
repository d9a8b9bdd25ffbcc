package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/battlesnakeio/snek/config"
	"github.com/battlesnakeio/snek/rules"
	"github.com/battlesnakeio/snek/worker"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var (
	simKeys     string
	simMaxTurns = 500
	simRPS      int
	simDump     bool
)

func init() {
	simCmd.Flags().StringVarP(&simKeys, "keys", "k", simKeys, "comma separated key codes pressed before each tick, blank for none (e.g. ArrowRight,,ArrowUp)")
	simCmd.Flags().IntVar(&simMaxTurns, "max-turns", simMaxTurns, "stop after this many turns, 0 for no limit")
	simCmd.Flags().IntVar(&simRPS, "rps", simRPS, "ticks per second, 0 uses SNEK_SIM_RPS or runs flat out")
	simCmd.Flags().BoolVar(&simDump, "dump", simDump, "dump the final state")
	simCmd.Flags().StringVar(&metricsListen, "metrics-listen", metricsListen, "serve prometheus metrics on this address, empty to disable")
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "runs a game without a terminal, driven by a list of key codes",
	RunE: func(*cobra.Command, []string) error {
		script := parseScript(simKeys)
		startMetrics()

		limit := config.SimRate
		if simRPS > 0 {
			limit = rate.Limit(simRPS)
		}
		a := &worker.Autoplay{
			Config:   gameConfig(),
			Rand:     newRand(),
			Limiter:  rate.NewLimiter(limit, 1),
			Script:   script,
			MaxTurns: simMaxTurns,
			Score:    logScore{},
		}

		state, err := a.Run(context.Background())
		if err != nil {
			return errors.Wrap(err, "simulation failed")
		}
		fmt.Println(summary(state))
		if simDump {
			spew.Dump(state)
		}
		return nil
	},
}

// parseScript turns the --keys flag into one command per tick. Unknown key
// codes are ignored the same way the terminal ignores them.
func parseScript(keys string) []rules.Command {
	if keys == "" {
		return nil
	}
	codes := strings.Split(keys, ",")
	script := make([]rules.Command, 0, len(codes))
	for i, code := range codes {
		code = strings.TrimSpace(code)
		cmd, ok := rules.ParseCommand(code)
		if !ok && code != "" {
			log.WithFields(log.Fields{
				"tick": i,
				"key":  code,
			}).Warn("ignoring unknown key code")
		}
		script = append(script, cmd)
	}
	return script
}

func summary(s *rules.GameState) string {
	text := fmt.Sprintf("game %s: turn %d, score %d, %s", s.ID, s.Turn, s.Score, s.Status)
	if s.Death != nil {
		text = fmt.Sprintf("%s (%s)", text, s.Death.Cause)
	}
	return text
}

type logScore struct{}

func (logScore) ScoreChanged(score int) {
	log.WithField("score", score).Info("score")
}
