// Command powgen renders the cached power tables compiled into package powers.
//
// Usage:
//
//	powgen [flags]
//
// Every table is computed with exact arithmetic, checked with
// powgen.Validate, and written as gofmt-formatted Go source.
//
// Examples:
//
//	powgen -o tables_gen.go
//	powgen -bases 10 -o /tmp/base10.go
//	powgen -bases 10 -step 19 -o /tmp/base10_wide.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-floatconv/internal/powgen"
)

func main() {
	out := flag.String("o", "tables_gen.go", "output file, - for stdout")
	pkg := flag.String("pkg", "powers", "package name of the generated file")
	basesFlag := flag.String("bases", "", "comma-separated radices (default: every non-power-of-two radix 3..36)")
	step := flag.Int("step", 0, "large-table spacing (default: largest s with base^s <= 1e10)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: powgen [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Generates the cached power tables for the moderate conversion path.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*out, *pkg, *basesFlag, *step); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(out, pkg, basesFlag string, step int) error {
	bases, err := parseBases(basesFlag)
	if err != nil {
		return err
	}

	var opts []powgen.Option
	if step != 0 {
		opts = append(opts, powgen.WithStep(step))
	}

	tables := make([]*powgen.Tables, 0, len(bases))
	for _, base := range bases {
		t, err := powgen.Generate(base, opts...)
		if err != nil {
			return err
		}
		if err := powgen.Validate(t); err != nil {
			return err
		}
		tables = append(tables, t)
	}

	var buf bytes.Buffer
	if err := powgen.Render(&buf, pkg, tables...); err != nil {
		return err
	}

	if out == "-" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(out, buf.Bytes(), 0o644)
}

func parseBases(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return powgen.DefaultBases, nil
	}
	var bases []int
	seen := make(map[int]bool)
	for _, field := range strings.Split(s, ",") {
		b, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("invalid base %q: %w", field, err)
		}
		if seen[b] {
			continue
		}
		seen[b] = true
		bases = append(bases, b)
	}
	return bases, nil
}
