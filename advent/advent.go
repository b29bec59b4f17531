package main

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"
	"text/tabwriter"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	s, ok := solutions[os.Args[1]]
	if !ok {
		log.Fatalf("unknown solution %q", os.Args[1])
	}
	s.fn(os.Args[2:])
}

func usage() {
	names := make([]string, 0, len(solutions))
	for name := range solutions {
		names = append(names, name)
	}
	slices.SortFunc(names, compareNames)
	fmt.Fprintf(os.Stderr, "usage: %s [solution] [args...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	tw := tabwriter.NewWriter(os.Stderr, 0, 8, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%s\n", name, solutions[name].desc)
	}
	tw.Flush()
}

type solution struct {
	desc string
	fn   func(args []string)
}

var solutions = make(map[string]solution)

func register(name, desc string, fn func([]string)) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	splitName(name) // validate
	solutions[name] = solution{desc: desc, fn: fn}
}

// compareNames orders solution names by day number, then by suffix
// ("9" < "11" < "11i").
func compareNames(name0, name1 string) int {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	switch {
	case n0 < n1:
		return -1
	case n0 > n1:
		return 1
	case s0 < s1:
		return -1
	case s0 > s1:
		return 1
	}
	return 0
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(fmt.Sprintf("solution name %q does not start with a day number", name))
	}
	return n, name[i:]
}
