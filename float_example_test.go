// Copyright 2021 Aleksandr Demakin. All rights reserved.

package numbits_test

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/avdva/numbits"
)

func ExampleDecompose32() {
	p := numbits.Decompose32(1)
	fmt.Println(p.Class, p.Significand, p.Exponent, p.Sign)
	fmt.Println(numbits.Compose32(p.Significand, p.Exponent, p.Sign))

	// Output:
	// finite 8388608 -23 1
	// 1
}

func ExampleClassify64() {
	fmt.Println(numbits.Classify64(0), numbits.Classify64(math.Inf(1)), numbits.Classify64(math.NaN()), numbits.Classify64(1.5))

	// Output:
	// zero inf nan finite
}

func ExampleParts() {
	p := numbits.Decompose64(-0.75)
	fmt.Println(p.Normalized())
	fmt.Println(p.Float64())

	data, err := json.Marshal(p.Normalized())
	if err != nil {
		panic(err)
	}
	fmt.Println(string(data))

	// Output:
	// -3p-2
	// -0.75
	// {"class":0,"significand":3,"exponent":-2,"sign":-1}
}
