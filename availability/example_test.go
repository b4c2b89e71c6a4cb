package availability_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvrbd/availability"
	"github.com/katalvlaran/lvrbd/core"
)

// ExampleEvaluator_EvaluatePair evaluates a bridge network with the
// sum-of-disjoint-products method.
func ExampleEvaluator_EvaluatePair() {
	g := core.NewGraph()
	for _, e := range [][2]core.NodeID{{1, 2}, {1, 3}, {2, 3}, {2, 4}, {3, 4}} {
		_ = g.AddEdge(e[0], e[1], core.DefaultWeight)
	}
	avail := map[core.NodeID]float64{1: 1, 2: 0.9, 3: 0.9, 4: 1}

	ev, _ := availability.New(availability.DefaultConfig())
	res, _ := ev.EvaluatePair(context.Background(), g, avail, 1, 4)
	fmt.Printf("%d→%d %.4f\n", res.Src, res.Dst, res.Availability)
	// Output:
	// 1→4 0.9900
}

// ExampleEvaluator_Expression renders the disjoint path terms of a diamond.
func ExampleEvaluator_Expression() {
	g := core.NewGraph()
	for _, e := range [][2]core.NodeID{{1, 2}, {1, 3}, {2, 4}, {3, 4}} {
		_ = g.AddEdge(e[0], e[1], core.DefaultWeight)
	}

	ev, _ := availability.New(availability.Config{Algorithm: availability.MinimalPath})
	expr, _ := ev.Expression(g, 1, 4)
	fmt.Println(expr)
	// Output:
	// [[1 * 2 * 4] + [1 * 3 * 4 * ¬2]]
}
