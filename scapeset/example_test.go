package scapeset_test

import (
	"fmt"
	"strings"

	"github.com/arenasg/scapegoat/scapeset"
)

func ExampleSet() {
	s := scapeset.MustNew[string](64)

	for _, w := range strings.Fields("the quick brown fox jumps over the lazy dog") {
		s.Add(w)
	}

	fmt.Println("len:", s.Len())
	fmt.Println("has fox:", s.Has("fox"))
	fmt.Println("has cat:", s.Has("cat"))

	for v := range s.Ascend {
		fmt.Println(v)
		if v == "dog" {
			break
		}
	}

	// Output:
	// len: 8
	// has fox: true
	// has cat: false
	// brown
	// dog
}

func ExampleIntersection() {
	a := scapeset.MustNew[int](8)
	a.AddAll(1, 2, 3, 4)

	b := scapeset.MustNew[int](8)
	b.AddAll(3, 4, 5, 6)

	for v := range scapeset.Intersection(a, b) {
		fmt.Println(v)
	}
	// Output:
	// 3
	// 4
}
