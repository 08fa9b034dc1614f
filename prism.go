package harmonica

import (
	"fmt"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"gonum.org/v1/gonum/mat"
)

// Prism is an axis-aligned rectangular prism given by its boundaries in
// the order west, east, south, north, bottom, top, all in meters.
type Prism [6]float64

// Volume returns the volume of the prism in cubic meters.
func (p Prism) Volume() float64 {
	return (p[1] - p[0]) * (p[3] - p[2]) * (p[5] - p[4])
}

// Center returns the geometric center of the prism.
func (p Prism) Center() vec3d.T {
	return vec3d.T{(p[0] + p[1]) / 2, (p[2] + p[3]) / 2, (p[4] + p[5]) / 2}
}

// PrismTable builds a (n, 6) dense matrix from a prism slice, one prism
// per row.
func PrismTable(prisms []Prism) *mat.Dense {
	data := make([]float64, 0, 6*len(prisms))
	for _, p := range prisms {
		data = append(data, p[:]...)
	}
	return mat.NewDense(len(prisms), 6, data)
}

// MagnetizationTable builds a (n, 3) dense matrix from magnetization
// vectors, one vector per row, in A/m.
func MagnetizationTable(vectors []vec3d.T) *mat.Dense {
	data := make([]float64, 0, 3*len(vectors))
	for _, v := range vectors {
		data = append(data, v[:]...)
	}
	return mat.NewDense(len(vectors), 3, data)
}

// runSanityChecks verifies that the magnetization table is row-aligned
// with the prism table and that every prism has properly ordered
// boundaries. It fails on the first violation found.
func runSanityChecks(prisms, magnetization mat.Matrix) error {
	numPrisms, prismCols := prisms.Dims()
	numVectors, vectorCols := magnetization.Dims()
	if numVectors != numPrisms {
		return fmt.Errorf("%w: number of magnetization vectors (%d) mismatch the number of prisms (%d)",
			ErrShapeMismatch, numVectors, numPrisms)
	}
	if vectorCols != 3 {
		return fmt.Errorf("%w: magnetization vectors with %d elements, should have only 3",
			ErrShapeMismatch, vectorCols)
	}
	if prismCols != 6 {
		return fmt.Errorf("%w: prisms with %d boundaries, should have only 6",
			ErrShapeMismatch, prismCols)
	}
	return checkPrisms(prisms)
}

// checkPrisms verifies the boundary ordering of every prism: west <= east,
// south <= north, bottom <= top. Equal boundaries denote a zero-volume
// prism, which is valid input and discarded later.
func checkPrisms(prisms mat.Matrix) error {
	rows, _ := prisms.Dims()
	for i := 0; i < rows; i++ {
		switch {
		case prisms.At(i, 0) > prisms.At(i, 1):
			return fmt.Errorf("%w: prism %d has west boundary greater than east", ErrInvalidGeometry, i)
		case prisms.At(i, 2) > prisms.At(i, 3):
			return fmt.Errorf("%w: prism %d has south boundary greater than north", ErrInvalidGeometry, i)
		case prisms.At(i, 4) > prisms.At(i, 5):
			return fmt.Errorf("%w: prism %d has bottom boundary greater than top", ErrInvalidGeometry, i)
		}
	}
	return nil
}

// asPrisms copies the rows of a (n, 6) table into prisms. Behavior is
// undefined for tables with fewer than 6 columns.
func asPrisms(table mat.Matrix) []Prism {
	rows, _ := table.Dims()
	prisms := make([]Prism, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < 6; j++ {
			prisms[i][j] = table.At(i, j)
		}
	}
	return prisms
}

// asVectors copies the rows of a (n, 3) table into vectors.
func asVectors(table mat.Matrix) []vec3d.T {
	rows, _ := table.Dims()
	vectors := make([]vec3d.T, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < 3; j++ {
			vectors[i][j] = table.At(i, j)
		}
	}
	return vectors
}

// discardNullPrisms drops prisms with zero volume or null magnetization,
// keeping the surviving rows aligned and in their original order. Null
// prisms contribute no field, skipping them avoids wasted work.
func discardNullPrisms(prisms []Prism, magnetization []vec3d.T) ([]Prism, []vec3d.T) {
	outPrisms := make([]Prism, 0, len(prisms))
	outVectors := make([]vec3d.T, 0, len(magnetization))
	for i, p := range prisms {
		if p[0] == p[1] || p[2] == p[3] || p[4] == p[5] {
			continue
		}
		m := magnetization[i]
		if m[0] == 0 && m[1] == 0 && m[2] == 0 {
			continue
		}
		outPrisms = append(outPrisms, p)
		outVectors = append(outVectors, m)
	}
	return outPrisms, outVectors
}
