package harmonica

import (
	"fmt"

	vec2d "github.com/flywave/go3d/float64/vec2"
	vec3d "github.com/flywave/go3d/float64/vec3"
)

func ExamplePrismMagnetic() {
	// a buried prism magnetized along the upward direction
	prisms := PrismTable([]Prism{{-50, 50, -50, 50, -200, -100}})
	magnetization := MagnetizationTable([]vec3d.T{{0, 0, 5}})

	bounds := vec2d.Rect{Min: vec2d.T{-500, -500}, Max: vec2d.T{500, 500}}
	grid := NewGrid(20, 20, bounds, 10)

	be, bn, bu, err := PrismMagnetic[float64](grid.Coordinates(), prisms, magnetization)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(be), len(bn), len(bu))
	// Output:
	// 400 400 400
}

func ExamplePrismMagneticComponent() {
	prisms := PrismTable([]Prism{{-50, 50, -50, 50, -200, -100}})
	magnetization := MagnetizationTable([]vec3d.T{{1, -0.5, 3}})

	coordinates := NewCoordinates(
		[]float64{-100, 0, 100},
		[]float64{0, 0, 0},
		[]float64{10},
	)

	bu, err := PrismMagneticComponent[float64](coordinates, prisms, magnetization, Upward, Serial())
	if err != nil {
		panic(err)
	}
	fmt.Println(len(bu))
	// Output:
	// 3
}
