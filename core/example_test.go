package core_test

import (
	"fmt"

	"github.com/katalvlaran/domset/core"
)

// ExampleFromEdgeList loads a small triangle-with-tail graph the way an
// external CSV loader would: one entry per undirected edge.
func ExampleFromEdgeList() {
	g, err := core.FromEdgeList([]core.EdgeListEntry{
		{U: "A", V: "B", Weight: 1},
		{U: "B", V: "C", Weight: 2},
		{U: "C", V: "A", Weight: 3},
		{U: "C", V: "D", Weight: 1},
	})
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edges:", g.EdgeCount())
	closed, _ := g.ClosedNeighborhood("C")
	fmt.Println("N[C]:", closed)

	// Output:
	// vertices: [A B C D]
	// edges: 4
	// N[C]: [A B C D]
}
