package uvl_test

import (
	"fmt"

	"github.com/katalvlaran/fcafm/configuration"
	"github.com/katalvlaran/fcafm/fm"
	"github.com/katalvlaran/fcafm/hierarchy"
	"github.com/katalvlaran/fcafm/poset"
	"github.com/katalvlaran/fcafm/uvl"
)

// ExampleEncode synthesizes a model from three configurations in which B
// and C never appear together.
func ExampleEncode() {
	set, _ := configuration.NewSet("root", []configuration.Configuration{
		{ID: "1", Features: map[string]bool{"A": true}},
		{ID: "2", Features: map[string]bool{"A": true, "B": true}},
		{ID: "3", Features: map[string]bool{"A": true, "C": true}},
	})
	p, _ := poset.Build(set)
	tree, _ := hierarchy.MaxDepth{}.Select(p)
	m, _ := fm.Build(p, tree, fm.WithEmptyAssignment(fm.EmptyOnCrossTree))

	fmt.Print(uvl.Encode(m))

	// Output:
	// features
	// 	"root"
	// 		mandatory
	// 			"A"
	// 		alternative
	// 			"B"
	// 			"C"
	// constraints
	// 	"B" => !"C"
}
