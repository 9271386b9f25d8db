// Command powinfo prints the layout and accuracy of the cached power tables.
//
// Usage:
//
//	powinfo [flags] [base ...]
//
// Without arguments it prints info for every supported base.
//
// Examples:
//
//	powinfo 10
//	powinfo -check -errors 3 10 36
//	powinfo -all
//	powinfo -list
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-floatconv/internal/cpu"
	"github.com/cwbudde/algo-floatconv/internal/powgen"
	"github.com/cwbudde/algo-floatconv/internal/wide"
	"github.com/cwbudde/algo-floatconv/powers"
)

func main() {
	all := flag.Bool("all", false, "show all supported bases")
	list := flag.Bool("list", false, "list supported bases")
	check := flag.Bool("check", false, "validate compiled tables against exact arithmetic")
	errs := flag.Bool("errors", false, "measure the worst error over every exponent (slow)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: powinfo [flags] [base ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the layout and accuracy of the cached power tables.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all bases.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  powinfo 10\n")
		fmt.Fprintf(os.Stderr, "  powinfo -check -errors 3 10 36\n")
		fmt.Fprintf(os.Stderr, "  powinfo -all\n")
		fmt.Fprintf(os.Stderr, "  powinfo -list\n")
	}
	flag.Parse()

	if *list {
		for _, b := range powers.Bases() {
			fmt.Println(b)
		}
		return
	}

	args := flag.Args()
	if *all {
		args = nil
	}
	tables := resolveTables(args)
	if len(tables) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching bases\n")
		os.Exit(1)
	}

	printKernel()
	if !printTables(tables, *check, *errs) {
		os.Exit(1)
	}
}

func resolveTables(args []string) []*powers.Table {
	if len(args) == 0 {
		var out []*powers.Table
		for _, b := range powers.Bases() {
			t, _ := powers.ForBase(b)
			out = append(out, t)
		}
		return out
	}

	var out []*powers.Table
	for _, arg := range args {
		b, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: invalid base %q\n", arg)
			continue
		}
		t, ok := powers.ForBase(b)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unsupported base %d (use -list to see available)\n", b)
			continue
		}
		out = append(out, t)
	}
	return out
}

func printKernel() {
	f := cpu.DetectFeatures()
	fmt.Printf("kernel: %s (arch=%s widemul=%v bmi2=%v adx=%v)\n\n",
		wide.Kernel(), f.Architecture, f.HasWideMul, f.HasBMI2, f.HasADX)
}

// printTables writes one row per table and reports whether every requested
// check passed.
func printTables(tables []*powers.Table, check, errs bool) bool {
	ok := true
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Base\tStep\tBias\tMin\tMax\tSmall\tLarge\tValid\tMax Err [ULP]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return false
	}
	if _, err := fmt.Fprintf(tw, "----\t----\t----\t---\t---\t-----\t-----\t-----\t-------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return false
	}

	for _, t := range tables {
		valid := "-"
		if check {
			valid = "ok"
			if err := powgen.Validate(tablesOf(t)); err != nil {
				valid = "FAIL"
				ok = false
				_, _ = fmt.Fprintf(os.Stderr, "base %d: %v\n", t.Base(), err)
			}
		}

		maxErr := "-"
		if errs {
			maxErr = worstError(t)
		}

		if _, err := fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\n",
			t.Base(),
			t.Step(),
			t.Bias(),
			t.MinExponent(),
			t.MaxExponent(),
			t.Small().Len(),
			t.Large().Len(),
			valid,
			maxErr,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return false
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return false
	}
	return ok
}

func tablesOf(t *powers.Table) *powgen.Tables {
	return &powgen.Tables{
		Base:     t.Base(),
		Step:     t.Step(),
		Bias:     t.Bias(),
		Small:    t.Small(),
		Large:    t.Large(),
		SmallInt: t.SmallInts(),
	}
}

func worstError(t *powers.Table) string {
	worst := new(big.Rat)
	at := t.MinExponent()
	for e := t.MinExponent(); e <= t.MaxExponent(); e++ {
		p, _ := t.Power(e)
		if err := powgen.ULPError(p.Float, t.Base(), e); err.Cmp(worst) > 0 {
			worst, at = err, e
		}
	}
	return fmt.Sprintf("%s (e=%d)", worst.FloatString(4), at)
}
