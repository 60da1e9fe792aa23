// Command genfields renders the typed stream readers in fields_gen.go from
// the table in internal/fieldspec.
//
// Usage (from the module root):
//
//	go run ./internal/genfields [-o fields_gen.go]
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
	"unicode"

	"github.com/thesyncim/mediainfo/internal/fieldspec"
)

const header = "// Code generated by genfields from internal/fieldspec. DO NOT EDIT.\n"

var tmpl = template.Must(template.New("fields").Funcs(template.FuncMap{
	"table":     tableName,
	"fieldType": fieldType,
	"goType":    goType,
	"reader":    reader,
	"doc":       doc,
}).Parse(`{{- /* */ -}}
package mediainfo

import "time"

var fieldsByKind = [StreamMax][]Field{
{{- range .}}
	{{.Kind}}: {{table .Type}},
{{- end}}
}
{{range $cat := .}}
var {{table $cat.Type}} = []Field{
{{- range $cat.Fields}}
	{"{{.Name}}", {{printf "%q" .Param}}, {{fieldType .Decode}}},
{{- end}}
}
{{range $cat.Fields}}
// {{doc .}}
func (s {{$cat.Type}}) {{.Name}}() ({{goType .Decode}}, error) { return s.{{reader .Decode}}({{printf "%q" .Param}}) }
{{end}}
{{- end}}`))

func tableName(typ string) string {
	r := []rune(typ)
	r[0] = unicode.ToLower(r[0])
	return string(r) + "Fields"
}

func fieldType(d fieldspec.Decode) string {
	switch d {
	case fieldspec.Int:
		return "FieldInt"
	case fieldspec.Duration:
		return "FieldDuration"
	case fieldspec.Time:
		return "FieldTime"
	default:
		return "FieldString"
	}
}

func goType(d fieldspec.Decode) string {
	switch d {
	case fieldspec.Int:
		return "int64"
	case fieldspec.Duration:
		return "time.Duration"
	case fieldspec.Time:
		return "time.Time"
	default:
		return "string"
	}
}

func reader(d fieldspec.Decode) string {
	switch d {
	case fieldspec.Int:
		return "getInt"
	case fieldspec.Duration:
		return "getDuration"
	case fieldspec.Time:
		return "getTime"
	default:
		return "getString"
	}
}

func doc(f fieldspec.Field) string {
	switch f.Decode {
	case fieldspec.Int:
		return fmt.Sprintf("%s returns %q as an integer.", f.Name, f.Param)
	case fieldspec.Duration:
		return fmt.Sprintf("%s returns %q, given in milliseconds.", f.Name, f.Param)
	case fieldspec.Time:
		return fmt.Sprintf("%s returns %q as a UTC timestamp.", f.Name, f.Param)
	default:
		return fmt.Sprintf("%s returns %q.", f.Name, f.Param)
	}
}

func validate(cats []fieldspec.Category) error {
	reserved := map[string]bool{
		// Stream
		"Kind": true, "Index": true, "Get": true, "GetInfo": true, "Value": true,
		// derived.go
		"FrameSize": true, "CBR": true, "VBR": true, "Interlaced": true,
		"Progressive": true, "Stereo": true, "Mono": true, "WritingApplication": true,
	}
	for _, c := range cats {
		seen := map[string]bool{}
		for _, f := range c.Fields {
			if reserved[f.Name] {
				return fmt.Errorf("%s.%s collides with a stream method", c.Type, f.Name)
			}
			if seen[f.Name] {
				return fmt.Errorf("%s.%s declared twice", c.Type, f.Name)
			}
			if strings.TrimSpace(f.Param) == "" {
				return fmt.Errorf("%s.%s has no parameter", c.Type, f.Name)
			}
			seen[f.Name] = true
		}
	}
	return nil
}

func main() {
	out := flag.String("o", "fields_gen.go", "output file")
	flag.Parse()

	if err := validate(fieldspec.Categories); err != nil {
		fmt.Fprintln(os.Stderr, "genfields:", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteString("\n")
	if err := tmpl.Execute(&buf, fieldspec.Categories); err != nil {
		fmt.Fprintln(os.Stderr, "genfields:", err)
		os.Exit(1)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintln(os.Stderr, "genfields: format:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "genfields:", err)
		os.Exit(1)
	}
}
