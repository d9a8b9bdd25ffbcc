package rules

import "github.com/battlesnakeio/snek/board"

// getUnoccupiedPoint draws random tiles until one is free. After
// MaxSpawnAttempts misses it scans the board instead, so a crowded board can
// not loop forever. It returns false when no tile is free at all.
func getUnoccupiedPoint(cfg Config, rnd Rand, occupied func(board.Point) bool) (board.Point, bool) {
	for i := 0; i < cfg.MaxSpawnAttempts; i++ {
		p := board.Point{
			X: rnd.Intn(cfg.TileCount),
			Y: rnd.Intn(cfg.TileCount),
		}
		if !occupied(p) {
			return p, true
		}
	}

	openPoints := getUnoccupiedPoints(cfg.TileCount, occupied)
	if len(openPoints) == 0 {
		return board.Point{}, false
	}
	return openPoints[rnd.Intn(len(openPoints))], true
}

// getUnoccupiedPoints lists the free tiles in row-major order.
func getUnoccupiedPoints(size int, occupied func(board.Point) bool) []board.Point {
	candidatePoints := []board.Point{}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := board.Point{X: x, Y: y}
			if !occupied(p) {
				candidatePoints = append(candidatePoints, p)
			}
		}
	}
	return candidatePoints
}

// placeFood replaces the food with a tile clear of both snakes and the
// obstacles. Food is left nil when the board is full.
func placeFood(cfg Config, s *GameState, rnd Rand) {
	s.Food = nil
	p, ok := getUnoccupiedPoint(cfg, rnd, s.isOccupied)
	if ok {
		s.Food = &p
	}
}

// placeObstacles draws a fresh obstacle set. Fewer obstacles than drawn are
// placed when the board runs out of room.
func placeObstacles(cfg Config, s *GameState, rnd Rand) {
	count := cfg.MinObstacles
	if spread := cfg.MaxObstacles - cfg.MinObstacles; spread > 0 {
		count += rnd.Intn(spread + 1)
	}

	s.Obstacles = make([]board.Point, 0, count)
	for i := 0; i < count; i++ {
		p, ok := getUnoccupiedPoint(cfg, rnd, s.isOccupied)
		if !ok {
			break
		}
		s.Obstacles = append(s.Obstacles, p)
	}
}
