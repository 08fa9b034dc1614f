package harmonica

import (
	"fmt"
	"image"

	"github.com/flywave/go-cog"
	"github.com/flywave/go-geo"
)

// WriteGridTIFF writes a field component computed on a grid to a
// GeoTIFF, one band, LZW compressed. The values must be in the grid's
// raster order, as returned by PrismMagnetic on the grid's coordinates.
// A nil srs georeferences the output as EPSG:4326.
func WriteGridTIFF(output string, grid *Grid, values []float64, srs geo.Proj) error {
	if len(values) != grid.Size() {
		return fmt.Errorf("%w: %d values for a %dx%d grid",
			ErrShapeMismatch, len(values), grid.Height, grid.Width)
	}
	if srs == nil {
		srs = epsg4326
	}

	si := [2]uint32{uint32(grid.Width), uint32(grid.Height)}
	rect := image.Rect(0, 0, grid.Width, grid.Height)
	src := cog.NewSource(values, &rect, cog.CTLZW)
	return cog.WriteTile(output, src, grid.Bounds, srs, si, nil)
}
