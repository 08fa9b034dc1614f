package harmonica

import (
	"errors"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

// voxelGrid downsamples scattered observation points by averaging all
// points that fall into the same leaf-sized voxel. Used to thin dense
// survey scatters before forward modelling.
type voxelGrid struct {
	LeafSize vec3d.T
}

type voxel struct {
	sum   vec3d.T
	num   int
	index int
}

func minMaxPoints(points []vec3d.T) (vec3d.T, vec3d.T, error) {
	if len(points) == 0 {
		return vec3d.T{}, vec3d.T{}, errors.New("harmonica: no points")
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		for i := range p {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return min, max, nil
}

func mulFloat(vec *vec3d.T, v float64) *vec3d.T {
	vec[0] *= v
	vec[1] *= v
	vec[2] *= v
	return vec
}

func (f *voxelGrid) Filter(points []vec3d.T) ([]vec3d.T, error) {
	min, max, err := minMaxPoints(points)
	if err != nil {
		return nil, err
	}

	size := max.Sub(&min)
	xs := int(size[0] / f.LeafSize[0])
	ys := int(size[1] / f.LeafSize[1])
	zs := int(size[2] / f.LeafSize[2])
	voxels := make([]voxel, (xs+1)*(ys+1)*(zs+1))

	for i := range points {
		p := points[i]
		p.Sub(&min)
		x := int(p[0] / f.LeafSize[0])
		y := int(p[1] / f.LeafSize[1])
		z := int(p[2] / f.LeafSize[2])
		v := &voxels[x+(xs+1)*(y+(ys+1)*z)]
		if v.num == 0 {
			v.index = i
		}
		v.num++
		v.sum.Add(&p)
	}

	out := make([]vec3d.T, 0, len(points))
	for i := range voxels {
		v := &voxels[i]
		switch {
		case v.num == 1:
			out = append(out, points[v.index])
		case v.num > 1:
			mean := mulFloat(&v.sum, 1/float64(v.num))
			out = append(out, *mean.Add(&min))
		}
	}
	return out, nil
}
