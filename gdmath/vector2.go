// Package gdmath provides the hand-written builtin value types the generated
// bindings reference. Only the vector types live here; string, array and
// dictionary wrappers are engine-backed and belong to the runtime layer.
package gdmath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector2 is a 2D vector using floating-point coordinates.
//
// Coordinates are 32-bit; engines compiled with precision=double report
// 16-byte Vector2 storage instead, which the generated opaque types reflect.
type Vector2 struct {
	X float32
	Y float32
}

// NewVector2 constructs a vector from its components.
func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vector2) Add(rhs Vector2) Vector2 {
	return Vector2{v.X + rhs.X, v.Y + rhs.Y}
}

// Sub returns the component-wise difference.
func (v Vector2) Sub(rhs Vector2) Vector2 {
	return Vector2{v.X - rhs.X, v.Y - rhs.Y}
}

// Scaled returns the vector scaled by s.
func (v Vector2) Scaled(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Dot returns the dot product with rhs.
func (v Vector2) Dot(rhs Vector2) float32 {
	return v.X*rhs.X + v.Y*rhs.Y
}

// LengthSquared returns the squared length; cheaper than Length when only
// comparing distances.
func (v Vector2) LengthSquared() float32 {
	return v.Dot(v)
}

// Length returns the vector's length.
func (v Vector2) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

// Normalized returns the vector scaled to unit length, or the zero vector
// unchanged.
func (v Vector2) Normalized() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return v.Scaled(1 / l)
}

// Lerp linearly interpolates towards target by weight in [0, 1].
func (v Vector2) Lerp(target Vector2, weight float32) Vector2 {
	return v.Add(target.Sub(v).Scaled(weight))
}

// Angle returns the vector's angle in radians with respect to the X axis.
func (v Vector2) Angle() float32 {
	return math32.Atan2(v.Y, v.X)
}

// String formats the vector like the engine: `(x, y)`.
func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Vector2i is the integer counterpart of Vector2.
type Vector2i struct {
	X int32
	Y int32
}

// NewVector2i constructs a vector from its components.
func NewVector2i(x, y int32) Vector2i {
	return Vector2i{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vector2i) Add(rhs Vector2i) Vector2i {
	return Vector2i{v.X + rhs.X, v.Y + rhs.Y}
}

// Sub returns the component-wise difference.
func (v Vector2i) Sub(rhs Vector2i) Vector2i {
	return Vector2i{v.X - rhs.X, v.Y - rhs.Y}
}

// Vector2 converts to the floating-point counterpart.
func (v Vector2i) Vector2() Vector2 {
	return Vector2{float32(v.X), float32(v.Y)}
}

// String formats the vector like the engine: `(x, y)`.
func (v Vector2i) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
