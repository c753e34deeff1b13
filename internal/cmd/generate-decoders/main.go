// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command generate-decoders writes the typed field entry points of the
// textpb Decoder, one singular, optional and repeated method per scalar kind.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
)

var (
	run      bool
	outfile  string
	repoRoot string
)

func main() {
	flag.BoolVar(&run, "execute", false, "Write generated files to destination.")
	flag.StringVar(&outfile, "outfile", "", "Write this specific file to stdout.")
	flag.Parse()

	if outfile == "" {
		out, err := exec.Command("git", "rev-parse", "--show-toplevel").CombinedOutput()
		check(err)
		repoRoot = strings.TrimSpace(string(out))
	}

	writeSource("encoding/textpb/decode_gen.go", generateDecoders())
}

// ScalarKind is one primitive field type of the text format.
type ScalarKind struct {
	// Name is the method infix, such as "Sint32".
	Name string
	// GoType is the Go type of a decoded value.
	GoType string
}

// Var is the name of the textpb.ScalarKind variable for k.
func (k ScalarKind) Var() string { return k.Name + "Kind" }

// Proto is the field type as written in a .proto file.
func (k ScalarKind) Proto() string { return strings.ToLower(k.Name) }

var ScalarKinds = []ScalarKind{
	{"Int32", "int32"},
	{"Int64", "int64"},
	{"Uint32", "uint32"},
	{"Uint64", "uint64"},
	{"Sint32", "int32"},
	{"Sint64", "int64"},
	{"Fixed32", "uint32"},
	{"Fixed64", "uint64"},
	{"Sfixed32", "int32"},
	{"Sfixed64", "int64"},
	{"Float", "float32"},
	{"Double", "float64"},
	{"Bool", "bool"},
	{"String", "string"},
	{"Bytes", "[]byte"},
}

func generateDecoders() string {
	return mustExecute(decodersTemplate, ScalarKinds)
}

var decodersTemplate = template.Must(template.New("").Parse(`
{{- range .}}
// DecodeSingular{{.Name}}Field reads a singular {{.Proto}} field into v.
func (d *Decoder) DecodeSingular{{.Name}}Field(v *{{.GoType}}) error {
	return DecodeSingular(d, {{.Var}}, v)
}

// DecodeOptional{{.Name}}Field reads an optional {{.Proto}} field into v.
func (d *Decoder) DecodeOptional{{.Name}}Field(v **{{.GoType}}) error {
	return DecodeOptional(d, {{.Var}}, v)
}

// DecodeRepeated{{.Name}}Field appends the values of a repeated {{.Proto}} field to v.
func (d *Decoder) DecodeRepeated{{.Name}}Field(v *[]{{.GoType}}) error {
	return DecodeRepeated(d, {{.Var}}, v)
}
{{end -}}
`))

func mustExecute(t *template.Template, data interface{}) string {
	var b bytes.Buffer
	if err := t.Execute(&b, data); err != nil {
		panic(err)
	}
	return b.String()
}

func writeSource(file, src string) {
	s := strings.Join([]string{
		"// Copyright 2024 The Go Authors. All rights reserved.",
		"// Use of this source code is governed by a BSD-style",
		"// license that can be found in the LICENSE file.",
		"",
		"// Code generated by generate-decoders. DO NOT EDIT.",
		"",
		"package " + filepath.Base(filepath.Dir(file)),
		"",
		src,
	}, "\n")
	b, err := format.Source([]byte(s))
	if err != nil {
		// Just print the error and output the unformatted file for examination.
		fmt.Fprintf(os.Stderr, "%v:%v\n", file, err)
		b = []byte(s)
	}

	if outfile != "" {
		if outfile == file {
			os.Stdout.Write(b)
		}
		return
	}

	absFile := filepath.Join(repoRoot, file)
	if run {
		prev, _ := os.ReadFile(absFile)
		if !bytes.Equal(b, prev) {
			fmt.Println("#", file)
			check(os.WriteFile(absFile, b, 0664))
		}
	} else {
		check(os.WriteFile(absFile+".tmp", b, 0664))
		defer os.Remove(absFile + ".tmp")

		cmd := exec.Command("diff", file, file+".tmp", "-N", "-u")
		cmd.Dir = repoRoot
		cmd.Stdout = os.Stdout
		cmd.Run()
	}
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
