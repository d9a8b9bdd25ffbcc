package rules

import "github.com/battlesnakeio/snek/board"

// checkForDeath looks at the player's head after it moved. Possible deaths, in
// the order they are checked: running off the board, running into its own
// body, hitting an obstacle and hitting any part of the enemy.
func checkForDeath(size int, s *GameState) *Death {
	head := s.Snake.Head()
	var cause string
	switch {
	case deathByOutOfBounds(head, size):
		cause = DeathCauseWallCollision
	case deathBySelfCollision(s.Snake):
		cause = DeathCauseSelfCollision
	case deathByObstacle(head, s.Obstacles):
		cause = DeathCauseObstacleCollision
	case deathByEnemy(head, s.Enemy):
		cause = DeathCauseEnemyCollision
	default:
		return nil
	}
	return &Death{Turn: s.Turn, Cause: cause}
}

func deathByOutOfBounds(head board.Point, size int) bool {
	return !head.InBounds(size)
}

func deathBySelfCollision(snake *board.Snake) bool {
	return snake.BodyContains(snake.Head())
}

func deathByObstacle(head board.Point, obstacles []board.Point) bool {
	return board.ContainsPoint(obstacles, head)
}

func deathByEnemy(head board.Point, enemy *board.Snake) bool {
	return enemy != nil && enemy.Contains(head)
}
