package host

import "fmt"

// A Point is a tile coordinate (or a tile offset) on the host's map grid.
// Y grows downward, matching screen coordinates.
type Point struct {
	X, Y int
}

func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) IsZero() bool      { return p.X == 0 && p.Y == 0 }

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
