package powgen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	var tables []*Tables
	for _, base := range []int{3, 10} {
		tab, err := Generate(base)
		if err != nil {
			t.Fatalf("Generate(%d): %v", base, err)
		}
		tables = append(tables, tab)
	}

	var buf bytes.Buffer
	if err := Render(&buf, "powers", tables...); err != nil {
		t.Fatalf("Render: %v", err)
	}
	src := buf.String()

	if !strings.HasPrefix(src, Header+"\n") {
		t.Fatalf("missing header, got %q", src[:min(len(src), 80)])
	}
	for _, want := range []string{
		"0xa05c0dd70f6e161a, // 10^-350",
		"0x8000000000000000, // 10^0",
		"0xee6b280000000000, // 10^9",
		"-1226, -1193, -1160,",
		"bias:     35,",
		"10: &base10,",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("rendered source missing %q", want)
		}
	}

	f, err := parser.ParseFile(token.NewFileSet(), "tables_gen.go", src, 0)
	if err != nil {
		t.Fatalf("rendered source does not parse: %v", err)
	}
	if f.Name.Name != "powers" {
		t.Fatalf("package = %s, want powers", f.Name.Name)
	}

	vars := map[string]bool{}
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, s := range gen.Specs {
			for _, name := range s.(*ast.ValueSpec).Names {
				vars[name.Name] = true
			}
		}
	}
	for _, name := range []string{
		"base3", "base3SmallMant", "base3LargeExp", "base3SmallInt",
		"base10", "base10SmallExp", "base10LargeMant", "byBase",
	} {
		if !vars[name] {
			t.Fatalf("rendered source does not declare %s", name)
		}
	}
}

func TestRows(t *testing.T) {
	got := rows([]string{"1", "2", "3", "4", "5"}, 2)
	want := []string{"1, 2,", "3, 4,", "5,"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("rows = %q, want %q", got, want)
	}
	if rows(nil, 4) != nil {
		t.Fatal("rows(nil) should be nil")
	}
}
