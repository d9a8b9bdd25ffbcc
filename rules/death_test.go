package rules

import (
	"testing"

	"github.com/battlesnakeio/snek/board"
	"github.com/stretchr/testify/require"
)

func TestDeathCauseWallCollision(t *testing.T) {
	points := []board.Point{
		{X: -1, Y: 5},
		{X: 20, Y: 1},
		{X: 1, Y: -1},
		{X: 1, Y: 20},
	}
	for _, p := range points {
		s := runningState(p)
		s.Turn = 3
		death := checkForDeath(20, s)
		require.NotNil(t, death, "head %s", p)
		require.Equal(t, DeathCauseWallCollision, death.Cause)
		require.Equal(t, 3, death.Turn)
	}
}

func TestDeathCauseSelfCollision(t *testing.T) {
	s := runningState(pt(5, 5), pt(5, 6), pt(5, 5), pt(4, 5))
	death := checkForDeath(20, s)
	require.NotNil(t, death)
	require.Equal(t, DeathCauseSelfCollision, death.Cause)
}

func TestDeathCauseObstacleCollision(t *testing.T) {
	s := runningState(pt(5, 5), pt(5, 6))
	s.Obstacles = []board.Point{pt(1, 1), pt(5, 5)}
	death := checkForDeath(20, s)
	require.NotNil(t, death)
	require.Equal(t, DeathCauseObstacleCollision, death.Cause)
}

func TestDeathCauseEnemyCollision(t *testing.T) {
	s := runningState(pt(5, 5), pt(5, 6))
	s.Enemy = board.NewSnake(pt(7, 5), pt(6, 5), pt(5, 5))
	death := checkForDeath(20, s)
	require.NotNil(t, death)
	require.Equal(t, DeathCauseEnemyCollision, death.Cause)
}

func TestDeathWallBeforeOtherCauses(t *testing.T) {
	s := runningState(pt(-1, 5))
	s.Obstacles = []board.Point{pt(-1, 5)}
	death := checkForDeath(20, s)
	require.Equal(t, DeathCauseWallCollision, death.Cause)
}

func TestNoDeath(t *testing.T) {
	s := runningState(pt(5, 5), pt(5, 6), pt(5, 7))
	s.Obstacles = []board.Point{pt(1, 1)}
	s.Enemy = board.NewSnake(pt(15, 15), pt(15, 16))
	require.Nil(t, checkForDeath(20, s))
}
