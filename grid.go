package harmonica

import (
	"fmt"

	vec2d "github.com/flywave/go3d/float64/vec2"
	vec3d "github.com/flywave/go3d/float64/vec3"
)

// Grid is a regular grid of observation points at constant height.
// Points are stored in raster order: row by row from north to south,
// west to east within each row, at the cell centers of the bounds.
type Grid struct {
	Width  int
	Height int
	Bounds vec2d.Rect
	Upward float64

	easting  []float64
	northing []float64
}

// NewGrid builds a width x height observation grid covering bounds
// (easting/northing extent in meters) at the given upward coordinate.
func NewGrid(width, height int, bounds vec2d.Rect, upward float64) *Grid {
	g := &Grid{Width: width, Height: height, Bounds: bounds, Upward: upward}

	pixelSize := [2]float64{
		(bounds.Max[0] - bounds.Min[0]) / float64(width),
		(bounds.Max[1] - bounds.Min[1]) / float64(height),
	}

	g.easting = make([]float64, 0, width*height)
	g.northing = make([]float64, 0, width*height)
	for y := height - 1; y >= 0; y-- {
		northing := bounds.Min[1] + pixelSize[1]*(float64(y)+0.5)
		for x := 0; x < width; x++ {
			easting := bounds.Min[0] + pixelSize[0]*(float64(x)+0.5)
			g.easting = append(g.easting, easting)
			g.northing = append(g.northing, northing)
		}
	}
	return g
}

// Size returns the number of observation points.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// Coordinates returns the grid points as broadcastable coordinates; the
// constant upward coordinate is carried as a single value.
func (g *Grid) Coordinates() Coordinates {
	return Coordinates{
		Easting:  g.easting,
		Northing: g.northing,
		Upward:   []float64{g.Upward},
	}
}

// Point returns the observation point at the given row and column, rows
// counted from the northern edge.
func (g *Grid) Point(row, column int) vec3d.T {
	i := row*g.Width + column
	return vec3d.T{g.easting[i], g.northing[i], g.Upward}
}

// Reshape splits a flat result computed on a grid's coordinates into
// rows of length width.
func Reshape[T Float](values []T, width, height int) ([][]T, error) {
	if len(values) != width*height {
		return nil, fmt.Errorf("%w: cannot reshape %d values to %dx%d",
			ErrShapeMismatch, len(values), height, width)
	}
	rows := make([][]T, height)
	for i := range rows {
		rows[i] = values[i*width : (i+1)*width]
	}
	return rows, nil
}
