package harmonica

import (
	"testing"

	vec2d "github.com/flywave/go3d/float64/vec2"
	vec3d "github.com/flywave/go3d/float64/vec3"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	a := assert.New(t)

	bounds := vec2d.Rect{Min: vec2d.T{0, 0}, Max: vec2d.T{100, 100}}
	g := NewGrid(2, 2, bounds, 5)

	a.Equal(4, g.Size())
	// rows run north to south, cell centers
	a.Equal(vec3d.T{25, 75, 5}, g.Point(0, 0))
	a.Equal(vec3d.T{75, 75, 5}, g.Point(0, 1))
	a.Equal(vec3d.T{25, 25, 5}, g.Point(1, 0))
	a.Equal(vec3d.T{75, 25, 5}, g.Point(1, 1))
}

func TestGridCoordinates(t *testing.T) {
	a := assert.New(t)

	bounds := vec2d.Rect{Min: vec2d.T{-10, -20}, Max: vec2d.T{10, 20}}
	g := NewGrid(4, 3, bounds, -2.5)

	c := g.Coordinates()
	a.Len(c.Easting, 12)
	a.Len(c.Northing, 12)
	a.Equal([]float64{-2.5}, c.Upward)

	_, _, upward, err := c.broadcast()
	a.NoError(err)
	a.Len(upward, 12)
	a.Equal(-2.5, upward[0])
}

func TestReshape(t *testing.T) {
	a := assert.New(t)

	values := []float64{1, 2, 3, 4, 5, 6}
	rows, err := Reshape(values, 3, 2)
	a.NoError(err)
	a.Equal([][]float64{{1, 2, 3}, {4, 5, 6}}, rows)

	_, err = Reshape(values, 4, 2)
	a.ErrorIs(err, ErrShapeMismatch)
}
