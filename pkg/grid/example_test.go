package grid_test

import (
	"fmt"

	"github.com/matzehuels/csvgrid/pkg/grid"
)

func ExampleValidate() {
	for _, raw := range []string{"a,b,c,d,e", "   "} {
		switch o := grid.Validate(raw, 2).(type) {
		case grid.Accepted:
			fmt.Printf("accepted %q\n", o.Values)
		case grid.Rejected:
			fmt.Println("rejected:", o.Reason)
		}
	}
	// Output:
	// accepted ["a" "b" "c" "d" "e"]
	// rejected: You must have at least some values!
}

func ExampleLayout() {
	g, err := grid.Layout([]string{"1", "2", "3", "4", "5", "6", "7"}, 3)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d rows x %d columns, %d padding\n", g.Rows(), g.Columns(), g.Padding())
	for _, row := range g.Cells() {
		fmt.Printf("%q\n", row)
	}
	// Output:
	// 3 rows x 3 columns, 2 padding
	// ["1" "2" "3"]
	// ["4" "5" "6"]
	// ["7" "" ""]
}

func ExampleWithFill() {
	g, _ := grid.Layout([]string{"a", "b", "c", "d", "e"}, 2, grid.WithFill(grid.FillColumns))
	for _, row := range g.Cells() {
		fmt.Printf("%q\n", row)
	}
	// Output:
	// ["a" "d"]
	// ["b" "e"]
	// ["c" ""]
}
