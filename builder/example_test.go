package builder_test

import (
	"fmt"

	"github.com/katalvlaran/fcafm/builder"
)

// ExampleBuildSet composes an alternative pair with one optional feature.
func ExampleBuildSet() {
	set, err := builder.BuildSet("Phone", nil,
		builder.Optional("GPS"),
		builder.Alternative("Basic", "Color"),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, c := range set.Configurations {
		fmt.Println(c.ID, set.Enabled(i, "GPS"), set.Enabled(i, "Basic"), set.Enabled(i, "Color"))
	}
	// Output:
	// 0 false true false
	// 1 false false true
	// 2 true true false
	// 3 true false true
}
