package config

import (
	"os"
	"strconv"
	"time"

	"github.com/battlesnakeio/snek/rules"
	"golang.org/x/time/rate"
)

// Configuration variables. They seed the command line flag defaults, so a
// flag always wins over the environment.
var (
	TileCount        = getEnvInt("SNEK_TILE_COUNT", rules.DefaultTileCount)
	FoodScore        = getEnvInt("SNEK_FOOD_SCORE", rules.DefaultFoodScore)
	EnemyLength      = getEnvInt("SNEK_ENEMY_LENGTH", rules.DefaultEnemyLength)
	MinObstacles     = getEnvInt("SNEK_MIN_OBSTACLES", rules.DefaultMinObstacles)
	MaxObstacles     = getEnvInt("SNEK_MAX_OBSTACLES", rules.DefaultMaxObstacles)
	MaxSpawnAttempts = getEnvInt("SNEK_SPAWN_ATTEMPTS", rules.DefaultMaxSpawnAttempts)
	TickInterval     = getEnvDuration("SNEK_TICK_MS", 100*time.Millisecond)
	// SimRate paces headless games in ticks per second, 0 runs them flat out.
	SimRate = getEnvRate("SNEK_SIM_RPS", 0)
)

// Game builds a rules config from the variables above. Solo games drop the
// enemy and the obstacles.
func Game(enemy bool) rules.Config {
	cfg := rules.Config{
		TileCount:        TileCount,
		Start:            rules.VersusConfig().Start,
		FoodScore:        FoodScore,
		EnemyEnabled:     enemy,
		EnemyLength:      EnemyLength,
		MinObstacles:     MinObstacles,
		MaxObstacles:     MaxObstacles,
		MaxSpawnAttempts: MaxSpawnAttempts,
	}
	if !enemy {
		cfg.MinObstacles = 0
		cfg.MaxObstacles = 0
	}
	return cfg
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

func getEnvDuration(varName string, defaults time.Duration) time.Duration {
	ms := getEnvInt(varName, -1)
	if ms <= 0 {
		return defaults
	}
	return time.Duration(ms) * time.Millisecond
}

func getEnvRate(varName string, defaults int) rate.Limit {
	rps := getEnvInt(varName, defaults)
	if rps <= 0 {
		return rate.Inf
	}
	return rate.Limit(rps)
}
