package engine

// Snake is the ordered body list, head at index 0. It only tracks
// positions; the Board keeps the grid tags in sync with it.
type Snake struct {
	body    []Point
	head    Point
	heading Direction
	state   SnakeState
}

func newSnake(head, tail Point, heading Direction) *Snake {
	return &Snake{
		body:    []Point{head, tail},
		head:    head,
		heading: heading,
		state:   Alive,
	}
}

// Len returns the number of segments.
func (s *Snake) Len() int { return len(s.body) }

// Head returns the current head position. After a cut at the head the body
// is empty and Head reports the cell the head last occupied.
func (s *Snake) Head() Point { return s.head }

// Tail returns the last segment, or false when the body is empty.
func (s *Snake) Tail() (Point, bool) {
	if len(s.body) == 0 {
		return Point{}, false
	}
	return s.body[len(s.body)-1], true
}

// Heading returns the direction of the last move.
func (s *Snake) Heading() Direction { return s.heading }

// State returns Alive or Dead.
func (s *Snake) State() SnakeState { return s.state }

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// IndexOf returns the body index of p or -1.
func (s *Snake) IndexOf(p Point) int {
	for i, b := range s.body {
		if b == p {
			return i
		}
	}
	return -1
}

func (s *Snake) pushHead(p Point, dir Direction) {
	s.body = append(s.body, Point{})
	copy(s.body[1:], s.body)
	s.body[0] = p
	s.head = p
	s.heading = dir
}

func (s *Snake) popTail() Point {
	last := s.body[len(s.body)-1]
	s.body = s.body[:len(s.body)-1]
	return last
}

// truncate drops the segment at index i and everything tail-ward of it,
// returning the removed cells.
func (s *Snake) truncate(i int) []Point {
	removed := make([]Point, len(s.body)-i)
	copy(removed, s.body[i:])
	s.body = s.body[:i]
	if i > 0 {
		s.head = s.body[0]
	}
	return removed
}

func (s *Snake) clone() *Snake {
	c := *s
	c.body = s.Body()
	return &c
}
