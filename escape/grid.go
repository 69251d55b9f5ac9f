package escape

import (
	"errors"
	"fmt"

	"github.com/gogpu/qmandel/exact"
)

// ErrEmptyGrid is returned when a grid has no pixels.
var ErrEmptyGrid = errors.New("escape: grid dimensions must be positive")

// Grid maps pixel coordinates of a width×height image onto a rectangle of
// the complex plane. Pixel (0, 0) is the top-left corner; rows grow
// downward while the imaginary axis grows upward.
type Grid struct {
	width   int
	height  int
	topLeft exact.Complex
	step    exact.Complex
}

// NewGrid returns the grid covering the rectangle with the given center and
// span (real part: horizontal extent, imaginary part: vertical extent).
func NewGrid(width, height int, center, span exact.Complex) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("escape: new grid %dx%d: %w", width, height, ErrEmptyGrid)
	}

	topLeft := exact.C(
		center.Re().Sub(span.Re().Div(exact.Two)),
		center.Im().Add(span.Im().Div(exact.Two)),
	)
	step := exact.C(
		span.Re().Div(exact.Int(int64(width))),
		span.Im().Div(exact.Int(-int64(height))),
	)
	return &Grid{width: width, height: height, topLeft: topLeft, step: step}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// TopLeft returns the plane coordinate of pixel (0, 0).
func (g *Grid) TopLeft() exact.Complex { return g.topLeft }

// Step returns the plane offset between neighbouring pixels. Its imaginary
// part is negative for a positive vertical span.
func (g *Grid) Step() exact.Complex { return g.step }

// Point returns the plane coordinate of pixel (x, y).
func (g *Grid) Point(x, y int) exact.Complex {
	offset := exact.C(
		g.step.Re().Mul(exact.Int(int64(x))),
		g.step.Im().Mul(exact.Int(int64(y))),
	)
	return g.topLeft.Add(offset)
}
