package harmonica

import (
	"testing"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"gonum.org/v1/gonum/mat"

	"github.com/stretchr/testify/assert"
)

func TestPrismVolumeCenter(t *testing.T) {
	a := assert.New(t)

	p := Prism{-10, 10, 0, 40, -30, -10}
	a.Equal(16000.0, p.Volume())
	a.Equal(vec3d.T{0, 20, -20}, p.Center())
}

func TestTablesRoundTrip(t *testing.T) {
	a := assert.New(t)

	prisms := []Prism{
		{-10, 10, -10, 10, -10, 0},
		{0, 20, 5, 15, -30, -20},
	}
	vectors := []vec3d.T{{1, 2, 3}, {-1, 0, 0.5}}

	a.Equal(prisms, asPrisms(PrismTable(prisms)))
	a.Equal(vectors, asVectors(MagnetizationTable(vectors)))
}

func TestSanityChecks(t *testing.T) {
	a := assert.New(t)

	prisms := PrismTable([]Prism{
		{-10, 10, -10, 10, -10, 0},
		{0, 20, 5, 15, -30, -20},
	})

	a.NoError(runSanityChecks(prisms, MagnetizationTable([]vec3d.T{{1, 0, 0}, {0, 1, 0}})))

	// row count mismatch
	err := runSanityChecks(prisms, MagnetizationTable([]vec3d.T{{1, 0, 0}}))
	a.ErrorIs(err, ErrShapeMismatch)
	a.Contains(err.Error(), "1")
	a.Contains(err.Error(), "2")

	// wrong number of components
	for _, cols := range []int{2, 4} {
		err := runSanityChecks(prisms, mat.NewDense(2, cols, nil))
		a.ErrorIs(err, ErrShapeMismatch)
	}

	// wrong number of boundaries
	err = runSanityChecks(mat.NewDense(2, 5, nil), mat.NewDense(2, 3, nil))
	a.ErrorIs(err, ErrShapeMismatch)
}

func TestCheckPrismsInverted(t *testing.T) {
	a := assert.New(t)

	cases := []struct {
		prism Prism
		dim   string
	}{
		{Prism{10, -10, -10, 10, -10, 0}, "west"},
		{Prism{-10, 10, 10, -10, -10, 0}, "south"},
		{Prism{-10, 10, -10, 10, 0, -10}, "bottom"},
	}
	for _, c := range cases {
		err := checkPrisms(PrismTable([]Prism{{-1, 1, -1, 1, -1, 1}, c.prism}))
		a.ErrorIs(err, ErrInvalidGeometry)
		a.Contains(err.Error(), "prism 1")
		a.Contains(err.Error(), c.dim)
	}

	// equal boundaries are a valid degenerate prism, not an error
	a.NoError(checkPrisms(PrismTable([]Prism{{-10, -10, -10, 10, -10, 0}})))
}

func TestDiscardNullPrisms(t *testing.T) {
	a := assert.New(t)

	prisms := []Prism{
		{-10, 10, -10, 10, -10, 0},  // survives
		{5, 5, -10, 10, -10, 0},     // zero volume west==east
		{-10, 10, 3, 3, -10, 0},     // zero volume south==north
		{-10, 10, -10, 10, -2, -2},  // zero volume bottom==top
		{0, 20, 0, 20, -20, -10},    // null magnetization
		{30, 40, 30, 40, -20, -10},  // survives
	}
	vectors := []vec3d.T{
		{1, 0, 0},
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
		{0, 0, 0},
		{0, -2, 1},
	}

	outPrisms, outVectors := discardNullPrisms(prisms, vectors)
	a.Equal([]Prism{prisms[0], prisms[5]}, outPrisms)
	a.Equal([]vec3d.T{vectors[0], vectors[5]}, outVectors)

	// an all-null model filters to an empty one
	empty, _ := discardNullPrisms(prisms[1:5], vectors[1:5])
	a.Empty(empty)
}
