// File: core/example_test.go
package core_test

import (
	"fmt"

	"github.com/talus-topo/talus/core"
)

// ExampleGraph demonstrates building a small scalar graph and enumerating
// it deterministically.
//
// Layout (values in parentheses):
//
//	a(0.0) ── b(5.0) ── c(1.0)
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddNode("a", 0.0)
	_ = g.AddNode("b", 5.0)
	_ = g.AddNode("c", 1.0)
	_ = g.AddEdge("a", "b")
	_ = g.AddEdge("b", "c")

	for _, n := range g.Nodes() {
		fmt.Printf("%s=%.1f ", n.ID, n.Value)
	}
	fmt.Println()
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s ", e.From, e.To)
	}
	fmt.Println()

	// Output:
	// a=0.0 b=5.0 c=1.0
	// a-b b-c
}
