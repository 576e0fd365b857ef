// Command tsapredictor predicts the smallest cell-mapping refinement
// level at which a rigorous interior cell of a filled Julia set's
// attracting basin can be detected, for a closed family of complex
// quadratic-through-sextic polynomial shapes.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/tsapredictor/internal/app"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		os.Exit(0)
	}

	a, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(4)
	}

	os.Exit(a.Run(context.Background(), os.Stdout))
}
