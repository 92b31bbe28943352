package formula_test

import (
	"context"
	"fmt"

	"github.com/ardnew/formula"
)

func ExampleParseString() {
	x, err := formula.ParseString(context.Background(), "(x := 2) ** 10")
	if err != nil {
		panic(err)
	}

	v, err := x.Resolve(formula.NewEnvironment())
	if err != nil {
		panic(err)
	}

	fmt.Println(x.Code(""))
	fmt.Println(v.Float())
	// Output:
	// Exponentiate(Assignment(Variable("x"), Number(2)), Number(10))
	// 1024
}

func ExampleFreeVars() {
	x, err := formula.ParseString(context.Background(), "(a := 1) + a + b")
	if err != nil {
		panic(err)
	}

	for _, name := range formula.FreeVars(x, formula.NewEnvironment()) {
		fmt.Println(name)
	}
	// Output:
	// b
}
