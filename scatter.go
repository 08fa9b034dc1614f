package harmonica

import (
	"github.com/flywave/go-geo"
	"github.com/flywave/go-geoid"
	"github.com/flywave/go-geom"
	"github.com/flywave/go-geom/general"

	vec2d "github.com/flywave/go3d/float64/vec2"
	vec3d "github.com/flywave/go3d/float64/vec3"
)

var epsg4326 geo.Proj

func init() {
	epsg4326 = geo.NewProj(4326)
}

// ScatterOptions controls how observation points are extracted from a
// feature collection.
type ScatterOptions struct {
	// InputSrs is the spatial reference of the input features. When set
	// and different from TargetSrs, positions are reprojected.
	InputSrs *string
	// TargetSrs is the spatial reference of the returned coordinates.
	// Defaults to EPSG:4326; pass a projected CRS to obtain coordinates
	// in meters.
	TargetSrs *string
	// HeightModel is the vertical datum of the input heights. Heights
	// are converted to ellipsoidal when it names a geoid model.
	HeightModel geoid.VerticalDatum
	// HeightOffset is added to every height when HeightModel is HAE.
	HeightOffset float64
	// FilterSize, when set, thins the extracted scatter by voxel
	// averaging on a grid of that many cells per axis.
	FilterSize *[3]uint32
}

// ScatterFromFeatureCollection extracts observation point coordinates
// from the point, line and polygon vertices of a GeoJSON feature
// collection. The third coordinate of each vertex is taken as the upward
// coordinate.
func ScatterFromFeatureCollection(fc *geom.FeatureCollection, opts ScatterOptions) Coordinates {
	target := epsg4326
	if opts.TargetSrs != nil {
		target = geo.NewProj(opts.TargetSrs)
	}
	var input geo.Proj
	if opts.InputSrs != nil {
		input = geo.NewProj(opts.InputSrs)
	}

	points := make([]vec3d.T, 0, 1000)
	for _, feature := range fc.Features {
		switch g := feature.Geometry.(type) {
		case *general.Point:
			points = appendPoint(points, g.X(), g.Y(), g.Data(), input, target)
		case *general.MultiPoint:
			for _, p := range g.Points() {
				points = appendPoint(points, p.X(), p.Y(), p.Data(), input, target)
			}
		case *general.LineString:
			for _, p := range g.Subpoints() {
				points = appendPoint(points, p.X(), p.Y(), p.Data(), input, target)
			}
		case *general.MultiLine:
			for _, line := range g.Lines() {
				for _, p := range line.Subpoints() {
					points = appendPoint(points, p.X(), p.Y(), p.Data(), input, target)
				}
			}
		case *general.Polygon:
			for _, ring := range g.Sublines() {
				for _, p := range ring.Subpoints() {
					points = appendPoint(points, p.X(), p.Y(), p.Data(), input, target)
				}
			}
		case *general.MultiPolygon:
			for _, poly := range g.Polygons() {
				for _, ring := range poly.Sublines() {
					for _, p := range ring.Subpoints() {
						points = appendPoint(points, p.X(), p.Y(), p.Data(), input, target)
					}
				}
			}
		}
	}

	if opts.FilterSize != nil {
		points = thinPoints(points, *opts.FilterSize)
	}
	convertHeights(points, opts)
	return ScatterCoordinates(points)
}

// thinPoints voxel-averages the scatter on a grid of cells per axis.
func thinPoints(points []vec3d.T, cells [3]uint32) []vec3d.T {
	min, max, err := minMaxPoints(points)
	if err != nil {
		return points
	}
	var leaf vec3d.T
	for i := range leaf {
		leaf[i] = (max[i] - min[i]) / float64(cells[i])
		if leaf[i] <= 0 {
			// flat extent on this axis, one voxel layer
			leaf[i] = 1
		}
	}
	vg := &voxelGrid{LeafSize: leaf}
	thinned, err := vg.Filter(points)
	if err != nil {
		return points
	}
	return thinned
}

func appendPoint(points []vec3d.T, x, y float64, data []float64, input, target geo.Proj) []vec3d.T {
	var height float64
	if len(data) > 2 {
		height = data[2]
	}
	if input != nil && !input.Eq(target) {
		pos := input.TransformTo(target, []vec2d.T{{x, y}})
		return append(points, vec3d.T{pos[0][0], pos[0][1], height})
	}
	return append(points, vec3d.T{x, y, height})
}

// convertHeights converts the upward coordinates to ellipsoidal heights
// following the vertical datum of the input.
func convertHeights(points []vec3d.T, opts ScatterOptions) {
	if (opts.HeightModel == geoid.HAE && opts.HeightOffset == 0) || opts.HeightModel == geoid.UNKNOWN {
		return
	}
	if opts.HeightModel == geoid.HAE {
		for i := range points {
			points[i][2] += opts.HeightOffset
		}
		return
	}
	gid := geoid.NewGeoid(opts.HeightModel, false)
	for i := range points {
		points[i][2] = gid.ConvertHeight(points[i][0], points[i][1], points[i][2], geoid.GEOIDTOELLIPSOID)
	}
}
