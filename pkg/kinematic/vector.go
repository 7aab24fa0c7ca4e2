package kinematic

import "math"

// Vector is a 2D point or direction in playfield units.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points.
func (v Vector) Distance(o Vector) float64 {
	return v.Sub(o).Length()
}

// Normalize returns the unit vector in the direction of v,
// or the zero vector when v has no length.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// Angle returns the heading of the vector in radians.
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate returns v rotated by theta radians.
func (v Vector) Rotate(theta float64) Vector {
	sin, cos := math.Sincos(theta)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect is an axis-aligned rectangle. Max is exclusive.
type Rect struct {
	Min Vector `json:"min"`
	Max Vector `json:"max"`
}

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Body is a positioned, sized box. It is held by value by the entities that
// need one; it has no behaviour of its own beyond geometry queries.
type Body struct {
	// Position is the top-left corner.
	Position Vector  `json:"position"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// Bounds returns the bounding box of the body.
func (b Body) Bounds() Rect {
	return Rect{
		Min: b.Position,
		Max: Vector{X: b.Position.X + b.Width, Y: b.Position.Y + b.Height},
	}
}

// Center returns the centre point of the body.
func (b Body) Center() Vector {
	return Vector{X: b.Position.X + b.Width/2, Y: b.Position.Y + b.Height/2}
}

// HitPoint returns the point used for hit tests, inset a quarter of the size
// from the top-left corner.
func (b Body) HitPoint() Vector {
	return Vector{X: b.Position.X + b.Width/4, Y: b.Position.Y + b.Height/4}
}
