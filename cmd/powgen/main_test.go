package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-floatconv/internal/powgen"
)

func TestParseBases(t *testing.T) {
	got, err := parseBases("")
	if err != nil || len(got) != len(powgen.DefaultBases) {
		t.Fatalf("parseBases(\"\") = %v, %v", got, err)
	}

	got, err = parseBases(" 10, 3,10 ")
	if err != nil {
		t.Fatalf("parseBases: %v", err)
	}
	if len(got) != 2 || got[0] != 10 || got[1] != 3 {
		t.Fatalf("parseBases = %v, want [10 3]", got)
	}

	if _, err := parseBases("10,x"); err == nil {
		t.Fatal("parseBases accepted a non-numeric base")
	}
}

func TestRunWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tables_gen.go")
	if err := run(out, "powers", "10", 0); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	src := string(data)
	if !strings.HasPrefix(src, powgen.Header) {
		t.Fatalf("missing generated-code header")
	}
	if !strings.Contains(src, "var base10 = Table{") || strings.Contains(src, "base3") {
		t.Fatalf("unexpected table set in output")
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	if err := run(filepath.Join(dir, "a.go"), "powers", "16", 0); !errors.Is(err, powgen.ErrUnsupportedBase) {
		t.Fatalf("base 16: error = %v, want ErrUnsupportedBase", err)
	}
	if err := run(filepath.Join(dir, "b.go"), "powers", "10", 25); !errors.Is(err, powgen.ErrStepOverflow) {
		t.Fatalf("step 25: error = %v, want ErrStepOverflow", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.go")); !os.IsNotExist(err) {
		t.Fatalf("failed run left an output file")
	}
}
