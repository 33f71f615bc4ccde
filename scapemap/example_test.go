package scapemap_test

import (
	"fmt"
	"strings"

	"github.com/arenasg/scapegoat/scapemap"
)

func ExampleMap() {
	m := scapemap.MustNew[string, int](64)

	for _, w := range strings.Fields("a man a plan a canal panama") {
		m.Set(w, m.Get(w)+1)
	}

	for k, v := range m.Ascend {
		fmt.Println(k, v)
	}

	// Output:
	// a 3
	// canal 1
	// man 1
	// panama 1
	// plan 1
}

func ExampleMap_EntryAt() {
	m := scapemap.MustNew[string, int](8)
	m.Set("apples", 3)

	m.EntryAt("apples").AndModify(func(v *int) { *v++ })
	m.EntryAt("pears").OrInsert(1)

	fmt.Println(m.Get("apples"))
	fmt.Println(m.Get("pears"))
	// Output:
	// 4
	// 1
}
