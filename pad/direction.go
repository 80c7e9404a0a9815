package pad

import "fmt"

// A Direction is an 8-way digital direction, plus Neutral. X and Y are
// each -1, 0 or 1; Y grows downward (screen coordinates).
type Direction struct {
	X, Y int
}

// Neutral is the centered direction.
var Neutral = Direction{}

func (d Direction) IsNeutral() bool { return d.X == 0 && d.Y == 0 }

func (d Direction) String() string {
	if d.IsNeutral() {
		return "neutral"
	}
	return fmt.Sprintf("(%+d,%+d)", d.X, d.Y)
}

// stickToDigital converts an analog stick reading to an 8-way digital
// direction. A radial deadzone rejects drift first; then each axis is
// compared to a lower per-axis threshold, so that diagonals register
// without pushing the stick as far on both axes as the deadzone alone
// would demand.
func stickToDigital(x, y, deadzone, threshold float64) Direction {
	if x*x+y*y < deadzone*deadzone {
		return Neutral
	}

	var d Direction
	switch {
	case x > threshold:
		d.X = 1
	case x < -threshold:
		d.X = -1
	}
	switch {
	case y > threshold:
		d.Y = 1 // SDL Y axis: down is positive
	case y < -threshold:
		d.Y = -1
	}
	return d
}
