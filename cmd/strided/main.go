// Package main provides the strided CLI: layout inspection for the strided
// indexing engine.
package main

import (
	"fmt"
	"os"

	"github.com/strided-ml/strided/array"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("strided %s\n", version)
			return
		case "layout":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "usage: strided layout <spec.yaml>")
				os.Exit(2)
			}
			if err := runLayout(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "strided: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("strided - multidimensional array indexing engine")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version              Show version")
	fmt.Println("  layout <spec.yaml>   Print the dope table a layout spec derives")
}

// runLayout loads a YAML layout spec and prints the derived dope table plus
// the reachable offset span.
func runLayout(path string) error {
	spec, err := loadLayoutSpec(path)
	if err != nil {
		return err
	}
	l, origin, err := spec.build()
	if err != nil {
		return err
	}

	kind, _ := array.KindByName(spec.Element)
	fmt.Printf("element %s (%d bytes), rank %d, %d elements, origin offset %d\n",
		kind, kind.Size(), l.Rank(), l.NumElements(), origin)
	fmt.Printf("%-10s %-10s %-16s %s\n", "dimension", "name", "range", "stride")
	for i, d := range l {
		name := d.Name
		if name == "" {
			name = "-"
		}
		fmt.Printf("%-10d %-10s %-16s %d\n", i, name, fmt.Sprintf("[%d,%d)", d.Low, d.High), d.Stride)
	}
	if min, max, ok := l.Span(); ok {
		fmt.Printf("reachable element offsets: [%d,%d]\n", origin+min, origin+max)
	} else {
		fmt.Println("layout addresses no elements")
	}
	return nil
}
