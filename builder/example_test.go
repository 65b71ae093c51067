package builder_test

import (
	"fmt"

	"github.com/katalvlaran/domset/builder"
)

// ExampleBuildGraph builds a five-vertex path with readable letter IDs.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(func(i int) string {
			return string(rune('A' + i))
		})},
		builder.Path(5),
	)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edges:", g.EdgeCount())

	// Output:
	// vertices: [A B C D E]
	// edges: 4
}

// ExamplePetersen builds the classic 3-regular counterexample machine.
func ExamplePetersen() {
	g, err := builder.BuildGraph(nil, nil, builder.Petersen())
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	deg, _ := g.Degree("0")
	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("degree of 0:", deg)

	// Output:
	// vertices: 10
	// edges: 15
	// degree of 0: 3
}
