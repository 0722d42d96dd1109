package gen

import (
	"bytes"
	"go/format"
	"text/template"

	"github.com/mangohow/mangokit/tools/stream"
	"github.com/mangohow/minerva/cmd/minerva/internal/errors"
)

type GenerateOptions struct {
	// Package 输出文件的包名
	Package string
	// ModelImport model包的导入路径, 输出包与model包相同时为空
	ModelImport string
}

type fieldData struct {
	Name   string
	Column string
}

type modelData struct {
	Name   string
	Entity string // 含包限定的类型名
	Table  string
	Fields []fieldData
}

type fileData struct {
	Package     string
	ModelImport string
	Models      []modelData
}

var fieldsTemplate = template.Must(template.New("fields").Parse(`// Code generated by minerva gen fields. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/mangohow/minerva/db/field"
{{- if .ModelImport}}

	model "{{.ModelImport}}"
{{- end}}
)
{{range .Models}}{{$m := .}}
// {{$m.Name}}Fields {{$m.Table}}表的字段描述符
var {{$m.Name}}Fields = struct {
{{- range $m.Fields}}
	{{.Name}} *field.Field[{{$m.Entity}}]
{{- end}}
}{
{{- range $m.Fields}}
	{{.Name}}: field.New("{{.Column}}", func(m *{{$m.Entity}}) any { return m.{{.Name}} }),
{{- end}}
}
{{end}}`))

// Generate 渲染字段描述符文件并格式化
func Generate(parsed *ParsedFile, opts GenerateOptions) ([]byte, error) {
	qualifier := ""
	if opts.ModelImport != "" {
		qualifier = "model."
	}

	data := fileData{
		Package:     opts.Package,
		ModelImport: opts.ModelImport,
		Models: stream.Map(parsed.Models, func(m *ModelSpec) modelData {
			return modelData{
				Name:   m.Name,
				Entity: qualifier + m.Name,
				Table:  m.TableName,
				Fields: stream.Map(m.Fields, func(f FieldSpec) fieldData {
					return fieldData{Name: f.Name, Column: f.Column}
				}),
			}
		}),
	}

	buf := bytes.Buffer{}
	if err := fieldsTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "render fields file failed")
	}

	source, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "format generated source failed")
	}

	return source, nil
}
