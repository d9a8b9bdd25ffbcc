package rules

import (
	"github.com/battlesnakeio/snek/board"
	log "github.com/sirupsen/logrus"
)

// Distance tiers the enemy tries to keep from the player's head, best first.
const (
	enemyFarDistance  = 3
	enemySafeDistance = 2
)

type enemyMove struct {
	Direction board.Direction
	To        board.Point
	Distance  int
}

// enemyMoves generates the four single steps from the head, in
// board.Directions order, keeping the ones keep accepts.
func enemyMoves(head board.Point, keep func(enemyMove) bool) []enemyMove {
	moves := []enemyMove{}
	for _, d := range board.Directions {
		m := enemyMove{Direction: d, To: head.Add(d)}
		if keep(m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// possibleEnemyMoves are steps that stay on the board, avoid the enemy's own
// body and the obstacles, and don't turn back on the current heading.
func possibleEnemyMoves(cfg Config, s *GameState) []enemyMove {
	return enemyMoves(s.Enemy.Head(), func(m enemyMove) bool {
		return m.To.InBounds(cfg.TileCount) &&
			!s.Enemy.Contains(m.To) &&
			!board.ContainsPoint(s.Obstacles, m.To) &&
			!m.Direction.Opposes(s.EnemyDirection)
	})
}

// backupEnemyMoves only keep the enemy on the board and off the obstacles.
func backupEnemyMoves(cfg Config, s *GameState) []enemyMove {
	return enemyMoves(s.Enemy.Head(), func(m enemyMove) bool {
		return m.To.InBounds(cfg.TileCount) &&
			!board.ContainsPoint(s.Obstacles, m.To)
	})
}

// farthestMove picks the move furthest from target, preferring moves at
// least enemyFarDistance away, then enemySafeDistance, then any. Ties go to
// the earliest move.
func farthestMove(moves []enemyMove, target board.Point) enemyMove {
	for i := range moves {
		moves[i].Distance = moves[i].To.Manhattan(target)
	}

	tier := movesAtLeast(moves, enemyFarDistance)
	if len(tier) == 0 {
		tier = movesAtLeast(moves, enemySafeDistance)
	}
	if len(tier) == 0 {
		tier = moves
	}

	best := tier[0]
	for _, m := range tier[1:] {
		if m.Distance > best.Distance {
			best = m
		}
	}
	return best
}

func movesAtLeast(moves []enemyMove, distance int) []enemyMove {
	var tier []enemyMove
	for _, m := range moves {
		if m.Distance >= distance {
			tier = append(tier, m)
		}
	}
	return tier
}

// chooseEnemyDirection is the enemy's greedy evasion. When boxed in it takes
// a random step that at least stays on the board, and when even that is
// impossible it keeps its heading.
func chooseEnemyDirection(cfg Config, s *GameState, rnd Rand) board.Direction {
	if moves := possibleEnemyMoves(cfg, s); len(moves) > 0 {
		return farthestMove(moves, s.Snake.Head()).Direction
	}

	backup := backupEnemyMoves(cfg, s)
	if len(backup) == 0 {
		return s.EnemyDirection
	}
	return backup[rnd.Intn(len(backup))].Direction
}

// advanceEnemy turns and moves the enemy. It never grows.
func advanceEnemy(cfg Config, s *GameState, rnd Rand) {
	s.EnemyDirection = chooseEnemyDirection(cfg, s, rnd)
	if s.EnemyDirection.IsZero() {
		return
	}
	s.Enemy.Move(s.EnemyDirection, false)
	log.WithFields(log.Fields{
		"GameID": s.ID,
		"Turn":   s.Turn,
		"Move":   s.EnemyDirection,
		"Head":   s.Enemy.Head(),
	}).Debug("enemy move")
}
