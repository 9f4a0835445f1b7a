package generator

import (
	"bytes"
	"go/format"
	"io"
	"os"
	"text/template"

	"github.com/mangohow/specification/internal/errors"
	"github.com/mangohow/specification/internal/log"
	"github.com/mangohow/specification/internal/utils/stringutils"
	"github.com/mangohow/specification/schema"
)

const (
	FormatGo   = "go"
	FormatYAML = "yaml"
)

var descriptorTemplate = template.Must(template.New("descriptor").
	Funcs(template.FuncMap{"kind": kindIdent}).
	Parse(`// Code generated by specgen. DO NOT EDIT.

package {{ .Package }}

import "github.com/mangohow/specification/schema"

var {{ .Var }} = schema.MustNew(
{{- range .Entities }}
	schema.Entity{
		Name: {{ printf "%q" .Name }},
		Fields: []schema.Field{
{{- range .Fields }}
			{Name: {{ printf "%q" .Name }}, Kind: {{ kind .Kind }}{{ if .Target }}, Target: {{ printf "%q" .Target }}{{ end }}},
{{- end }}
		},
	},
{{- end }}
)
`))

// kindIdent is the exported identifier of a field kind: one-to-many -> schema.OneToMany
func kindIdent(kind schema.FieldKind) string {
	return "schema." + stringutils.ToPascalCase(kind.String(), "-")
}

// WriteGo writes the entities as a gofmt'ed Go file declaring varName in
// package pkg.
func WriteGo(w io.Writer, pkg, varName string, entities []schema.Entity) error {
	if _, err := schema.New(entities...); err != nil {
		return errors.Wrapf(err, "invalid model")
	}

	buffer := bytes.NewBuffer(nil)
	buffer.Grow(4 << 10)
	data := struct {
		Package  string
		Var      string
		Entities []schema.Entity
	}{pkg, varName, entities}
	if err := descriptorTemplate.Execute(buffer, data); err != nil {
		return errors.Wrapf(err, "execute template")
	}

	source, err := format.Source(buffer.Bytes())
	if err != nil {
		return errors.Wrapf(err, "format source")
	}
	_, err = w.Write(source)
	return err
}

func WriteYAML(w io.Writer, entities []schema.Entity) error {
	d, err := schema.New(entities...)
	if err != nil {
		return errors.Wrapf(err, "invalid model")
	}
	return d.WriteYAML(w)
}

// Options configures Run. Pattern is resolved from Dir, Output from the
// working directory.
type Options struct {
	Dir     string
	Pattern string
	Output  string
	Format  string
	TagName string
	Package string
	Var     string
}

// Run loads the model and writes its descriptor to the output file, or to
// stdout when no output is given.
func Run(opts Options) error {
	model, err := Load(opts.Dir, opts.Pattern, opts.TagName)
	if err != nil {
		return err
	}
	log.Debugf("loaded %d entities from package %s", len(model.Entities), model.Package)

	pkg := opts.Package
	if pkg == "" {
		pkg = model.Package
	}
	varName := opts.Var
	if varName == "" {
		varName = "Schema"
	}

	buffer := bytes.NewBuffer(nil)
	switch opts.Format {
	case FormatGo, "":
		err = WriteGo(buffer, pkg, varName, model.Entities)
	case FormatYAML:
		err = WriteYAML(buffer, model.Entities)
	default:
		err = errors.Errorf("unknown format %q, want %s or %s", opts.Format, FormatGo, FormatYAML)
	}
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err = os.Stdout.Write(buffer.Bytes())
		return err
	}

	if err := os.WriteFile(opts.Output, buffer.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "write %s", opts.Output)
	}
	log.Infof("generated %s", opts.Output)
	return nil
}
