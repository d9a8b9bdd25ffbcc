package rules

import (
	"testing"

	"github.com/battlesnakeio/snek/board"
	"github.com/stretchr/testify/require"
)

func TestGameTickNilState(t *testing.T) {
	_, err := GameTick(SoloConfig(), nil, seeded(1))
	require.Error(t, err)
	require.Equal(t, "rules: invalid state, previous state is nil", err.Error())
}

func TestGameTickUpdatesSnake(t *testing.T) {
	last := runningState(pt(1, 3), pt(1, 4), pt(1, 5))
	last.Direction = board.Up

	next, err := GameTick(SoloConfig(), last, seeded(1))
	require.NoError(t, err)
	require.Equal(t, 1, next.Turn)
	require.True(t, next.Running())
	require.Equal(t, []board.Point{pt(1, 2), pt(1, 3), pt(1, 4)}, next.Snake.Body)
	require.Equal(t, 0, next.Score)

	// the previous state is untouched
	require.Equal(t, []board.Point{pt(1, 3), pt(1, 4), pt(1, 5)}, last.Snake.Body)
	require.Equal(t, 0, last.Turn)
}

func TestGameTickSnakeEats(t *testing.T) {
	last := runningState(pt(1, 3), pt(1, 4), pt(1, 5))
	last.Direction = board.Up
	last.Food = foodAt(1, 2)

	next, err := GameTick(SoloConfig(), last, seeded(1))
	require.NoError(t, err)
	require.True(t, next.Running())
	require.Equal(t, 10, next.Score)
	require.Equal(t, 4, next.Snake.Len())
	require.Equal(t, pt(1, 2), next.Snake.Head())
	require.NotNil(t, next.Food)
	require.False(t, next.Snake.Contains(*next.Food))
	require.Equal(t, pt(1, 2), *last.Food)
}

func TestGameTickLengthInvariant(t *testing.T) {
	cfg := VersusConfig()
	rnd := seeded(42)
	state, err := NewGame(cfg, rnd)
	require.NoError(t, err)
	state.Obstacles = nil
	state.Food = foodAt(0, 0)
	require.True(t, Steer(state, board.Left))

	// walk left along row 10 and then up column 0 to the food
	for i := 0; i < 20 && state.Running(); i++ {
		if state.Snake.Head().X == 0 {
			Steer(state, board.Up)
		}
		before := state.Snake.Len()
		food := *state.Food
		next, err := GameTick(cfg, state, rnd)
		require.NoError(t, err)
		if next.Snake.Head().Equal(food) {
			require.Equal(t, before+1, next.Snake.Len())
			require.Equal(t, state.Score+10, next.Score)
		} else {
			require.Equal(t, before, next.Snake.Len())
			require.Equal(t, state.Score, next.Score)
		}
		require.Equal(t, cfg.EnemyLength, next.Enemy.Len())
		state = next
	}
	require.Equal(t, 10, state.Score)
}

func TestGameTickIdleDoesNotMovePlayer(t *testing.T) {
	cfg := VersusConfig()
	last := runningState(pt(10, 10))
	last.Enemy = initialEnemy(cfg)
	last.EnemyDirection = board.Up

	next, err := GameTick(cfg, last, seeded(1))
	require.NoError(t, err)
	require.True(t, next.Running())
	require.Equal(t, []board.Point{pt(10, 10)}, next.Snake.Body)
	require.Equal(t, 1, next.Turn)
	// the enemy moves regardless of the player
	require.NotEqual(t, last.Enemy.Head(), next.Enemy.Head())
	require.Equal(t, cfg.EnemyLength, next.Enemy.Len())
}

func TestGameTickArrowRight(t *testing.T) {
	cfg := SoloConfig()
	state, err := NewGame(cfg, seeded(7))
	require.NoError(t, err)
	state.Food = foodAt(0, 0)

	cmd, ok := ParseCommand("ArrowRight")
	require.True(t, ok)
	state, changed, err := ApplyCommand(cfg, state, cmd, seeded(7))
	require.NoError(t, err)
	require.True(t, changed)

	next, err := GameTick(cfg, state, seeded(7))
	require.NoError(t, err)
	require.True(t, next.Running())
	require.Equal(t, pt(11, 10), next.Snake.Head())
	require.Equal(t, 0, next.Score)
}

func TestGameTickUpdatesDeath(t *testing.T) {
	cfg := VersusConfig()
	last := runningState(pt(0, 5))
	last.Direction = board.Left
	last.Enemy = initialEnemy(cfg)
	last.EnemyDirection = board.Up

	next, err := GameTick(cfg, last, seeded(1))
	require.NoError(t, err)
	require.True(t, next.GameOver())
	require.True(t, CheckForGameOver(next))
	require.Equal(t, &Death{Turn: 1, Cause: DeathCauseWallCollision}, next.Death)
	require.Equal(t, pt(-1, 5), next.Snake.Head())
	// the enemy does not move on the tick the player dies
	require.Equal(t, last.Enemy.Body, next.Enemy.Body)
}

func TestGameTickGameOverIsFrozen(t *testing.T) {
	last := runningState(pt(4, 4))
	last.Direction = board.Right
	last.Status = GameStatusOver
	last.Death = &Death{Turn: 3, Cause: DeathCauseObstacleCollision}
	last.Turn = 3

	next, err := GameTick(SoloConfig(), last, seeded(1))
	require.NoError(t, err)
	require.Equal(t, last, next)
	require.False(t, last == next)
}

func TestGameTickEatThenHitEnemy(t *testing.T) {
	cfg := VersusConfig()
	last := runningState(pt(5, 5))
	last.Direction = board.Right
	last.Food = foodAt(6, 5)
	last.Enemy = board.NewSnake(pt(6, 5), pt(7, 5))
	last.EnemyDirection = board.Left

	next, err := GameTick(cfg, last, seeded(1))
	require.NoError(t, err)
	require.Equal(t, 10, next.Score)
	require.True(t, next.GameOver())
	require.Equal(t, DeathCauseEnemyCollision, next.Death.Cause)
}
