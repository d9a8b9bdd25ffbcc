package rules

// CheckForGameOver checks if the game has ended.
func CheckForGameOver(s *GameState) bool {
	return s == nil || s.GameOver()
}
