package board

// Snake is an ordered body with the head at index 0.
type Snake struct {
	Body []Point `json:"body"`
}

// NewSnake builds a snake from its segments, head first.
func NewSnake(body ...Point) *Snake {
	return &Snake{Body: append([]Point(nil), body...)}
}

// Head returns the first point in the body
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Tail returns the last point in the body
func (s *Snake) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// Len is the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any segment, head included, sits on p.
func (s *Snake) Contains(p Point) bool {
	return ContainsPoint(s.Body, p)
}

// BodyContains reports whether any segment behind the head sits on p.
func (s *Snake) BodyContains(p Point) bool {
	if len(s.Body) < 2 {
		return false
	}
	return ContainsPoint(s.Body[1:], p)
}

// Move the snake 1 space in the specified direction. The tail is kept when
// grow is set, so the snake ends up one segment longer.
func (s *Snake) Move(d Direction, grow bool) {
	next := make([]Point, 0, len(s.Body)+1)
	next = append(next, s.Head().Add(d))
	next = append(next, s.Body...)
	if !grow {
		next = next[:len(next)-1]
	}
	s.Body = next
}

// Clone returns a deep copy, nil stays nil.
func (s *Snake) Clone() *Snake {
	if s == nil {
		return nil
	}
	return NewSnake(s.Body...)
}
