package rules

const (
	// DeathCauseWallCollision is when the snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSelfCollision is when the head runs into the snake's own body
	DeathCauseSelfCollision = "snake-self-collision"
	// DeathCauseObstacleCollision is when the head lands on an obstacle
	DeathCauseObstacleCollision = "obstacle-collision"
	// DeathCauseEnemyCollision is when the head lands on any enemy segment
	DeathCauseEnemyCollision = "enemy-collision"
)
