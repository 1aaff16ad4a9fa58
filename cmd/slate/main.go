// Package main provides the slate CLI.
package main

import (
	"fmt"
	"os"

	"github.com/slate-num/slate/matrix"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("slate %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("slate - a small dense matrix library for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Invert a 4x4 matrix and verify the round trip")
}

func demo() {
	m := matrix.FromRows([][]float64{
		{1, 0, 2, 0},
		{0, 3, 0, 4},
		{5, 0, 6, 0},
		{0, 7, 0, 8},
	})
	fmt.Println("M        =", m)

	inv, ok := matrix.Inverse(m)
	if !ok {
		fmt.Println("matrix is not square")
		os.Exit(1)
	}
	fmt.Println("inv(M)   =", inv)

	check := matrix.Mul(m, inv)
	id := matrix.Identity[float64](4)
	fmt.Println("M*inv(M) =", check)
	fmt.Println("identity within 1e-9:", matrix.EqualApprox(check, id, 1e-9))
}
