package engine

import "fmt"

// Orientation is the rendering shape of one snake segment, derived from
// the positions of its neighbours in the body.
//
// Head and tail variants name the way the segment points: HeadUp has its
// only neighbour below it. Corners name the tail-ward side first and the
// head-ward side second, so CornerNorthEast is entered from above and left
// towards the right.
type Orientation uint8

const (
	OrientationUnknown Orientation = iota
	HeadUp
	HeadDown
	HeadLeft
	HeadRight
	TailUp
	TailDown
	TailLeft
	TailRight
	VerticalStraight
	HorizontalStraight
	CornerNorthEast
	CornerEastNorth
	CornerEastSouth
	CornerSouthEast
	CornerSouthWest
	CornerWestSouth
	CornerWestNorth
	CornerNorthWest
)

var orientationNames = [...]string{
	OrientationUnknown: "unknown",
	HeadUp:             "head_up",
	HeadDown:           "head_down",
	HeadLeft:           "head_left",
	HeadRight:          "head_right",
	TailUp:             "tail_up",
	TailDown:           "tail_down",
	TailLeft:           "tail_left",
	TailRight:          "tail_right",
	VerticalStraight:   "vertical",
	HorizontalStraight: "horizontal",
	CornerNorthEast:    "corner_ne",
	CornerEastNorth:    "corner_en",
	CornerEastSouth:    "corner_es",
	CornerSouthEast:    "corner_se",
	CornerSouthWest:    "corner_sw",
	CornerWestSouth:    "corner_ws",
	CornerWestNorth:    "corner_wn",
	CornerNorthWest:    "corner_nw",
}

func (o Orientation) String() string {
	if int(o) < len(orientationNames) {
		return orientationNames[o]
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// side is where a neighbour sits relative to a segment.
type side uint8

const (
	sideAbove side = iota
	sideBelow
	sideLeft
	sideRight
	sideNone
)

// Orientation classifies the segment at (x, y). Cells that are not part of
// the body report OrientationUnknown. A body cell without neighbours means
// the body shrank below two segments and yields ErrUnreachableOrientation.
func (b *Board) Orientation(x, y int) (Orientation, error) {
	return orientationOf(b.snake.body, Point{X: x, Y: y}, b.grid.Width(), b.grid.Height())
}

func orientationOf(body []Point, p Point, w, h int) (Orientation, error) {
	idx := -1
	for i, s := range body {
		if s == p {
			idx = i
			break
		}
	}
	if idx < 0 {
		return OrientationUnknown, nil
	}

	toHead, toTail := sideNone, sideNone
	if idx > 0 {
		toHead = relativeSide(p, body[idx-1], w, h)
	}
	if idx < len(body)-1 {
		toTail = relativeSide(p, body[idx+1], w, h)
	}

	switch {
	case toHead == sideNone && toTail == sideNone:
		return OrientationUnknown, fmt.Errorf("%w: segment %s", ErrUnreachableOrientation, p)
	case toHead == sideNone:
		return endOrientation(toTail, HeadUp, HeadDown, HeadLeft, HeadRight), nil
	case toTail == sideNone:
		return endOrientation(toHead, TailUp, TailDown, TailLeft, TailRight), nil
	}
	return bodyOrientation(toTail, toHead), nil
}

// endOrientation maps the side of the only neighbour to the variant that
// points away from it.
func endOrientation(n side, up, down, left, right Orientation) Orientation {
	switch n {
	case sideBelow:
		return up
	case sideAbove:
		return down
	case sideRight:
		return left
	case sideLeft:
		return right
	}
	return OrientationUnknown
}

func bodyOrientation(from, to side) Orientation {
	switch from {
	case sideAbove:
		switch to {
		case sideBelow:
			return VerticalStraight
		case sideRight:
			return CornerNorthEast
		case sideLeft:
			return CornerNorthWest
		}
	case sideBelow:
		switch to {
		case sideAbove:
			return VerticalStraight
		case sideRight:
			return CornerSouthEast
		case sideLeft:
			return CornerSouthWest
		}
	case sideLeft:
		switch to {
		case sideRight:
			return HorizontalStraight
		case sideAbove:
			return CornerWestNorth
		case sideBelow:
			return CornerWestSouth
		}
	case sideRight:
		switch to {
		case sideLeft:
			return HorizontalStraight
		case sideAbove:
			return CornerEastNorth
		case sideBelow:
			return CornerEastSouth
		}
	}
	return OrientationUnknown
}

// relativeSide reports where n lies relative to origin. Cells that differ
// by the full extent minus one on an axis are neighbours across the wrap
// seam, so the naive comparison is inverted for them.
func relativeSide(origin, n Point, w, h int) side {
	if dy := n.Y - origin.Y; dy != 0 {
		if abs(dy) == h-1 && h > 2 {
			dy = -dy
		}
		if dy > 0 {
			return sideBelow
		}
		return sideAbove
	}
	dx := n.X - origin.X
	if abs(dx) == w-1 && w > 2 {
		dx = -dx
	}
	if dx > 0 {
		return sideRight
	}
	if dx < 0 {
		return sideLeft
	}
	return sideNone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
