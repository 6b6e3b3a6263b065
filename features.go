package main

import (
	"fmt"
	"io"
	"runtime"
	"sort"
)

// compiledFeatures tracks build-time feature flags via init() registration.
var compiledFeatures []string

func printFeatures(out io.Writer) {
	fmt.Fprintf(out, "%s %s\n", ProductName, Version)
	fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Compiled features:")

	sort.Strings(compiledFeatures)
	for _, f := range compiledFeatures {
		fmt.Fprintf(out, "  %s\n", f)
	}
	if len(compiledFeatures) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
}
