package harmonica

import (
	"testing"

	vec2d "github.com/flywave/go3d/float64/vec2"
	vec3d "github.com/flywave/go3d/float64/vec3"
)

func benchModel() ([]Prism, []vec3d.T) {
	prisms := make([]Prism, 0, 25)
	vectors := make([]vec3d.T, 0, 25)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			west := float64(i*40 - 100)
			south := float64(j*40 - 100)
			prisms = append(prisms, Prism{west, west + 40, south, south + 40, -60, -20})
			vectors = append(vectors, vec3d.T{1, float64(i - j), 2})
		}
	}
	return prisms, vectors
}

func BenchmarkPrismMagneticSerial(b *testing.B) {
	prisms, vectors := benchModel()
	bounds := vec2d.Rect{Min: vec2d.T{-500, -500}, Max: vec2d.T{500, 500}}
	coords := NewGrid(50, 50, bounds, 10).Coordinates()
	pt := PrismTable(prisms)
	mt := MagnetizationTable(vectors)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, err := PrismMagnetic[float64](coords, pt, mt, Serial())
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrismMagneticParallel(b *testing.B) {
	prisms, vectors := benchModel()
	bounds := vec2d.Rect{Min: vec2d.T{-500, -500}, Max: vec2d.T{500, 500}}
	coords := NewGrid(50, 50, bounds, 10).Coordinates()
	pt := PrismTable(prisms)
	mt := MagnetizationTable(vectors)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, err := PrismMagnetic[float64](coords, pt, mt)
		if err != nil {
			b.Fatal(err)
		}
	}
}
