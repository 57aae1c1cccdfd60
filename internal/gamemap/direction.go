package gamemap

// Direction is one of the four cardinal movement directions.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Delta returns the (dx, dy) step for the direction.
func (d Direction) Delta() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "?"
}

// Directions lists all four directions in a fixed order, used wherever a
// seeded random direction draw must be reproducible.
var Directions = [4]Direction{North, South, East, West}
