package rules

import (
	"math/rand"

	"github.com/battlesnakeio/snek/board"
)

// scriptedRand replays fixed draws, taken modulo n, then keeps returning 0.
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) Intn(n int) int {
	if r.next >= len(r.values) {
		return 0
	}
	v := r.values[r.next] % n
	r.next++
	return v
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func pt(x, y int) board.Point {
	return board.Point{X: x, Y: y}
}

func foodAt(x, y int) *board.Point {
	p := pt(x, y)
	return &p
}

// runningState is a solo game with the given player body and food far away
// in the corner.
func runningState(body ...board.Point) *GameState {
	return &GameState{
		ID:     "test",
		Status: GameStatusRunning,
		Snake:  board.NewSnake(body...),
		Food:   foodAt(0, 19),
	}
}
