package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/travbench/core"
	"github.com/katalvlaran/travbench/dfs"
)

// ExampleDFS walks a small tree in pre-order:
//
//	    0
//	   / \
//	  1   2
//	 / \
//	3   4
func ExampleDFS() {
	g, _ := core.NewGraph(5)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, err := dfs.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Parent)

	// Output:
	// [0 1 3 4 2]
	// [-1 0 0 1 1]
}
