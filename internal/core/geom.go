// Package core holds the types shared by the game and the platform: grid
// geometry, input frames and the screen buffer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Coord is an integer grid coordinate or a direction vector.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X, Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Cardinal direction vectors. DirNone means stationary.
var (
	DirNone  = Coord{}
	DirUp    = Coord{X: 0, Y: -1}
	DirDown  = Coord{X: 0, Y: 1}
	DirLeft  = Coord{X: -1, Y: 0}
	DirRight = Coord{X: 1, Y: 0}
)

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the component-wise sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// IsZero reports whether the vector is (0,0).
func (c Coord) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

// Neg returns the opposite vector.
func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// TurnLeft rotates a direction vector 90 degrees counter-clockwise on screen.
// Right becomes Up, Up becomes Left.
func (c Coord) TurnLeft() Coord {
	return Coord{X: c.Y, Y: -c.X}
}

// TurnRight rotates a direction vector 90 degrees clockwise on screen.
func (c Coord) TurnRight() Coord {
	return Coord{X: -c.Y, Y: c.X}
}

// IsCardinal reports whether c is one of the four unit directions.
func (c Coord) IsCardinal() bool {
	return Abs(c.X)+Abs(c.Y) == 1
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsCoord is Contains for a Coord.
func (r Rect) ContainsCoord(c Coord) bool {
	return r.Contains(c.X, c.Y)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
