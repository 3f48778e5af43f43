// Command shapegen turns the ASCII shape catalog into Go source for the
// piece package.
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"
)

const catalogTemplate = `// Code generated by shapegen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import "github.com/plus3/blockfall/board"

var catalog = [...]Definition{
{{- range .Shapes}}
	{{.Name}}: {
		Offsets: [board.PieceSize]board.Cell{ {{- range $i, $c := .Cells}}{{if $i}}, {{end}}{X: {{$c.X}}, Y: {{$c.Y}}}{{end -}} },
		Pivot:   Pivot{X2: {{.PivotX}}, Y2: {{.PivotY}}},
	},
{{- end}}
}
`

func main() {
	in := flag.String("in", "shapes.txt", "The shape catalog to read.")
	out := flag.String("out", "catalog_gen.go", "The Go file to write.")
	pkg := flag.String("package", "piece", "The package name of the generated file.")
	flag.Parse()

	f, err := os.Open(*in)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defs, err := parseCatalog(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", *in, err)
	}

	src, err := generate(filepath.Base(*in), *pkg, defs)
	if err != nil {
		log.Fatalf("Failed to generate catalog: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Wrote %d shapes to %s", len(defs), *out)
}

// generate renders the catalog and runs it through goimports formatting.
func generate(source, pkg string, defs []shapeDef) ([]byte, error) {
	tmpl, err := template.New("catalog").Parse(catalogTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Source  string
		Package string
		Shapes  []shapeDef
	}{source, pkg, defs})
	if err != nil {
		return nil, err
	}

	return imports.Process("catalog_gen.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
}
