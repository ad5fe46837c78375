package instance_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/assignment/instance"
)

func ExampleReadCSV() {
	p, err := instance.ReadCSV(strings.NewReader(`,Task A,Task B
Ann,4,2
Bob,3,7
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	res, _ := p.Solve()
	for _, pair := range res.Pairs {
		fmt.Println(pair.Agent, "->", pair.Task)
	}
	fmt.Println(res.TotalWeight)
	// Output:
	// Ann -> Task B
	// Bob -> Task A
	// 5
}
