package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvrbd/core"
)

// ExampleGraph_View branches a diamond on node 2: operational versus failed.
func ExampleGraph_View() {
	g := core.NewGraph()
	_ = g.AddEdge(1, 2, core.DefaultWeight)
	_ = g.AddEdge(1, 3, core.DefaultWeight)
	_ = g.AddEdge(2, 4, core.DefaultWeight)
	_ = g.AddEdge(3, 4, core.DefaultWeight)

	up := g.View()
	_ = up.Absorb(2)
	down := g.View()
	_ = down.Delete(2)

	fmt.Println(up.HasEdge(1, 4), down.HasEdge(1, 4), g.HasEdge(1, 4))
	fmt.Println(down.Nodes())
	// Output:
	// true false false
	// [1 3 4]
}
