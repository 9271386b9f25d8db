package powgen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"
	"text/template"
)

const extfloatImport = "github.com/cwbudde/algo-floatconv/extfloat"

// Header is the first line of every rendered file.
const Header = "// Code generated by powgen; DO NOT EDIT."

var fileTemplate = template.Must(template.New("tables").Parse(`{{.Header}}

package {{.Package}}

import "{{.Import}}"
{{range .Tables}}
// Base {{.Base}}.

var base{{.Base}}SmallMant = [...]uint64{
{{- range .SmallMant}}
	{{.}}
{{- end}}
}

var base{{.Base}}SmallExp = [...]int32{
{{- range .SmallExp}}
	{{.}}
{{- end}}
}

var base{{.Base}}LargeMant = [...]uint64{
{{- range .LargeMant}}
	{{.}}
{{- end}}
}

var base{{.Base}}LargeExp = [...]int32{
{{- range .LargeExp}}
	{{.}}
{{- end}}
}

var base{{.Base}}SmallInt = [...]uint64{
{{- range .SmallInt}}
	{{.}}
{{- end}}
}

var base{{.Base}} = Table{
	base: {{.Base}},
	step: {{.Step}},
	bias: {{.Bias}},
	small: extfloat.NewArray(base{{.Base}}SmallMant[:], base{{.Base}}SmallExp[:]),
	large: extfloat.NewArray(base{{.Base}}LargeMant[:], base{{.Base}}LargeExp[:]),
	smallInt: base{{.Base}}SmallInt[:],
}
{{end}}
// byBase maps a radix to its table set; unsupported radices are nil.
var byBase = [...]*Table{
{{- range .Tables}}
	{{.Base}}: &base{{.Base}},
{{- end}}
}
`))

type tableView struct {
	Base, Step, Bias int
	SmallMant        []string
	SmallExp         []string
	LargeMant        []string
	LargeExp         []string
	SmallInt         []string
}

// Render writes a gofmt'd Go source file declaring one Table per entry of
// tables, plus the byBase index, into package pkg.
func Render(w io.Writer, pkg string, tables ...*Tables) error {
	views := make([]tableView, 0, len(tables))
	for _, t := range tables {
		views = append(views, viewOf(t))
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Header  string
		Package string
		Import  string
		Tables  []tableView
	}{Header, pkg, extfloatImport, views})
	if err != nil {
		return fmt.Errorf("powgen: render: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("powgen: format: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func viewOf(t *Tables) tableView {
	v := tableView{Base: t.Base, Step: t.Step, Bias: t.Bias}

	smallExp := make([]string, t.Small.Len())
	for i := range smallExp {
		f := t.Small.At(i)
		v.SmallMant = append(v.SmallMant, fmt.Sprintf("0x%016x, // %d^%d", f.Mant, t.Base, i))
		smallExp[i] = strconv.Itoa(int(f.Exp))
	}
	v.SmallExp = rows(smallExp, 10)

	largeExp := make([]string, t.Large.Len())
	for j := range largeExp {
		f := t.Large.At(j)
		v.LargeMant = append(v.LargeMant, fmt.Sprintf("0x%016x, // %d^%d", f.Mant, t.Base, (j-t.Bias)*t.Step))
		largeExp[j] = strconv.Itoa(int(f.Exp))
	}
	v.LargeExp = rows(largeExp, 10)

	ints := make([]string, len(t.SmallInt))
	for i, n := range t.SmallInt {
		ints[i] = strconv.FormatUint(n, 10)
	}
	v.SmallInt = rows(ints, 8)
	return v
}

// rows joins items into comma-terminated lines of at most n items.
func rows(items []string, n int) []string {
	var out []string
	for len(items) > 0 {
		k := min(n, len(items))
		out = append(out, strings.Join(items[:k], ", ")+",")
		items = items[k:]
	}
	return out
}
