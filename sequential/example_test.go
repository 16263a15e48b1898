package sequential_test

import (
	"fmt"

	"github.com/katalvlaran/smallgrammar/sequential"
)

// ExampleBuild tokenizes "aaaaaa" greedily against static substring counts.
func ExampleBuild() {
	g, err := sequential.Build("aaaaaa")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range g.Rules() {
		fmt.Printf("%s = %s\n", r.ID, r.Value)
	}
	fmt.Println("size:", g.Size())
	// Output:
	// A0 = aaaa
	// A1 = aa
	// A2 = A0A1
	// size: 8
}
