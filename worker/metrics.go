package worker

import (
	"github.com/battlesnakeio/snek/rules"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	gameTicks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snek",
			Subsystem: "game",
			Name:      "ticks_total",
			Help:      "Ticks processed across all games.",
		},
	)
	foodEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snek",
			Subsystem: "game",
			Name:      "food_eaten_total",
			Help:      "Food eaten by the player.",
		},
	)
	gamesOver = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snek",
			Subsystem: "game",
			Name:      "over_total",
			Help:      "Games ended, by death cause.",
		},
		[]string{"cause"},
	)
	finalScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snek",
			Subsystem: "game",
			Name:      "final_score",
			Help:      "Score when a game ended.",
			Buckets:   prometheus.LinearBuckets(0, 50, 10),
		},
	)
	renderCalls = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "snek",
			Subsystem: "render",
			Name:      "seconds",
			Help:      "Time spent drawing a frame.",
		},
	)
)

func init() {
	prometheus.MustRegister(gameTicks, foodEaten, gamesOver, finalScores, renderCalls)
}

// observeTick records what changed between two consecutive states and tells
// sink about the score after every meal. A meal is seen by the player
// growing since food may be worth nothing.
func observeTick(last, next *rules.GameState, sink ScoreSink) {
	gameTicks.Inc()
	if next.Snake.Len() > last.Snake.Len() {
		foodEaten.Inc()
		if sink != nil {
			sink.ScoreChanged(next.Score)
		}
	}
	if next.GameOver() && !last.GameOver() {
		cause := "unknown"
		if next.Death != nil {
			cause = next.Death.Cause
		}
		gamesOver.WithLabelValues(cause).Inc()
		finalScores.Observe(float64(next.Score))
	}
}

// InstrumentRenderer wraps a renderer to time its calls.
func InstrumentRenderer(r Renderer) Renderer { return &metrics{r} }

type metrics struct{ r Renderer }

func (m *metrics) Render(s *rules.GameState) error {
	t := prometheus.NewTimer(renderCalls)
	defer t.ObserveDuration()
	return m.r.Render(s)
}
