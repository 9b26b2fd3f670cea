package algodft_test

import (
	"fmt"

	algodft "github.com/cwbudde/algo-dft"
)

func ExamplePlan_Transform() {
	plan, err := algodft.NewPlan64(algodft.Forward, 2)
	if err != nil {
		panic(err)
	}

	data := []complex128{complex(1, -2), complex(3, -4)}
	if err := plan.Transform(data); err != nil {
		panic(err)
	}

	fmt.Println(data)
	// Output: [(4-6i) (-2+2i)]
}

func ExampleTransformReal64() {
	plan, err := algodft.NewPlan64(algodft.Forward, 4)
	if err != nil {
		panic(err)
	}

	data := []float64{1, -2, 3, -4}
	if err := algodft.TransformReal64(data, plan); err != nil {
		panic(err)
	}

	fmt.Println("packed:", data)

	spectrum, err := algodft.Unpack64(data)
	if err != nil {
		panic(err)
	}

	fmt.Println("spectrum:", spectrum)
	// Output:
	// packed: [-2 10 -2 -2]
	// spectrum: [(-2+0i) (-2-2i) (10+0i) (-2+2i)]
}

func ExamplePlanCache() {
	cache := algodft.NewPlanCache[complex128]()

	plan, err := cache.Get(algodft.Inverse, 8)
	if err != nil {
		panic(err)
	}

	fmt.Println(plan, cache.Len())
	// Output: Plan[complex128](inverse, n=8) 1
}
