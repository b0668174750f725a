package sim

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrPlayfieldUnavailable means the display size was missing or unusable at spawn time.
	ErrPlayfieldUnavailable = errors.New("playfield dimensions unavailable")

	// ErrPlayfieldTooSmall means an entity cannot fit inside the playfield.
	ErrPlayfieldTooSmall = errors.New("playfield too small for entity")
)

// Playfield is the session's rectangle, centered at the origin.
// It never changes after spawn.
type Playfield struct {
	Width  float64
	Height float64
}

// NewPlayfield validates the dimensions read from the display.
func NewPlayfield(width, height float64) (Playfield, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Playfield{}, fmt.Errorf("%w: %gx%g", ErrPlayfieldUnavailable, width, height)
	}
	return Playfield{Width: width, Height: height}, nil
}

// Fits reports whether a circle of the given radius has room on both axes.
func (p Playfield) Fits(radius float64) bool {
	return 2*radius <= p.Width && 2*radius <= p.Height
}

// Bounds returns the range of centers that keep a circle of the given radius inside.
func (p Playfield) Bounds(radius float64) Bounds {
	hw, hh := p.Width/2, p.Height/2
	return Bounds{
		MinX: -hw + radius,
		MaxX: hw - radius,
		MinY: -hh + radius,
		MaxY: hh - radius,
	}
}

// Bounds is the allowed center range for one entity radius.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// OutsideX reports whether x lies outside [MinX, MaxX].
func (b Bounds) OutsideX(x float64) bool {
	return x < b.MinX || x > b.MaxX
}

// OutsideY reports whether y lies outside [MinY, MaxY].
func (b Bounds) OutsideY(y float64) bool {
	return y < b.MinY || y > b.MaxY
}

// Contains reports whether v is inside the range, edges included.
func (b Bounds) Contains(v Vec2) bool {
	return !b.OutsideX(v.X) && !b.OutsideY(v.Y)
}

// Clamp moves v into the range, each axis independently.
func (b Bounds) Clamp(v Vec2) Vec2 {
	return Vec2{
		X: clampAxis(v.X, b.MinX, b.MaxX),
		Y: clampAxis(v.Y, b.MinY, b.MaxY),
	}
}

func clampAxis(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
