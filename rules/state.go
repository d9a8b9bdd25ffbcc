package rules

import "github.com/battlesnakeio/snek/board"

// Death records why and when a game ended.
type Death struct {
	Turn  int    `json:"turn"`
	Cause string `json:"cause"`
}

// GameState is everything a tick reads and writes. GameTick never mutates the
// state it is given.
type GameState struct {
	ID     string     `json:"id"`
	Turn   int        `json:"turn"`
	Status GameStatus `json:"status"`
	Score  int        `json:"score"`
	Death  *Death     `json:"death,omitempty"`

	Snake     *board.Snake    `json:"snake"`
	Direction board.Direction `json:"direction"`

	// Enemy is nil unless the enemy is enabled.
	Enemy          *board.Snake    `json:"enemy,omitempty"`
	EnemyDirection board.Direction `json:"enemyDirection"`

	// Food is nil only when there was no free cell left to put it on.
	Food      *board.Point  `json:"food,omitempty"`
	Obstacles []board.Point `json:"obstacles"`
}

// Running reports whether the game still accepts ticks and steering.
func (s *GameState) Running() bool {
	return s.Status == GameStatusRunning
}

// GameOver reports whether the game has ended.
func (s *GameState) GameOver() bool {
	return s.Status == GameStatusOver
}

// Clone returns a deep copy of the state.
func (s *GameState) Clone() *GameState {
	c := *s
	c.Snake = s.Snake.Clone()
	c.Enemy = s.Enemy.Clone()
	c.Obstacles = append([]board.Point(nil), s.Obstacles...)
	if s.Food != nil {
		f := *s.Food
		c.Food = &f
	}
	if s.Death != nil {
		d := *s.Death
		c.Death = &d
	}
	return &c
}

// isOccupied reports whether any entity already on the board covers p.
func (s *GameState) isOccupied(p board.Point) bool {
	if s.Snake != nil && s.Snake.Contains(p) {
		return true
	}
	if s.Enemy != nil && s.Enemy.Contains(p) {
		return true
	}
	if board.ContainsPoint(s.Obstacles, p) {
		return true
	}
	return s.Food != nil && s.Food.Equal(p)
}
