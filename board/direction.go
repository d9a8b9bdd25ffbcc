package board

// Direction is a unit heading on the grid, or Idle when a snake has not been
// given one yet.
type Direction struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

// Headings, y grows downwards.
var (
	Idle  = Direction{}
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Directions lists the four headings in the order moves are generated. Code
// that breaks ties between equally good moves relies on this order.
var Directions = [4]Direction{Up, Down, Left, Right}

// IsZero reports whether d is Idle.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Opposes reports whether d is the exact reverse of the non-zero heading
// current.
func (d Direction) Opposes(current Direction) bool {
	if current.IsZero() || d.IsZero() {
		return false
	}
	return d == current.Reverse()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Idle:
		return "idle"
	}
	return "invalid"
}
