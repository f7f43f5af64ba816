package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/travbench/bfs"
	"github.com/katalvlaran/travbench/core"
)

// ExampleBFS explores a small tree level by level and recovers a path:
//
//	    0
//	   / \
//	  1   2
//	 / \
//	3   4
func ExampleBFS() {
	g, _ := core.NewGraph(5)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("order:", res.Order)
	fmt.Println("depth:", res.Depth)

	path, _ := res.PathTo(4)
	fmt.Println("path to 4:", path)

	// Output:
	// order: [0 1 2 3 4]
	// depth: [0 1 1 2 2]
	// path to 4: [0 1 4]
}
