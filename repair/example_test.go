package repair_test

import (
	"fmt"

	"github.com/katalvlaran/smallgrammar/repair"
)

// ExampleBuild shows RE-PAIR on "aaaa": one pair rule, then the glue rule.
func ExampleBuild() {
	g, err := repair.Build("aaaa")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range g.Rules() {
		fmt.Printf("%s = %s\n", r.ID, r.Value)
	}
	fmt.Println("size:", g.Size())
	// Output:
	// A0 = aa
	// A1 = A0A0
	// size: 4
}

// ExampleBuild_periodic shows nested pairs on a periodic text.
func ExampleBuild_periodic() {
	g, _ := repair.Build("abcabcabcabc")
	for _, r := range g.Rules() {
		fmt.Printf("%s = %s\n", r.ID, r.Value)
	}
	fmt.Println("size:", g.Size())
	// Output:
	// A0 = ab
	// A1 = A0c
	// A2 = A1A1
	// A3 = A2A2
	// size: 8
}
