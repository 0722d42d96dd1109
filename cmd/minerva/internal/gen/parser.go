package gen

import (
	"go/ast"
	goparser "go/parser"
	"go/token"
	"reflect"
	"strings"
	"unicode"

	"github.com/mangohow/mangokit/tools/collection"
	"github.com/mangohow/minerva/cmd/minerva/internal/errors"
	"golang.org/x/tools/go/packages"
)

const (
	tableNameTypeName = "TableName"
	tableNameTagKey   = "tableName"
	fieldTagKey       = "db"
	pkTagValue        = "pk"
	autoIncrTagValue  = "autoIncrement"
)

type FieldSpec struct {
	Name          string // Go字段名
	Column        string
	Pk            bool
	AutoIncrement bool
}

type ModelSpec struct {
	Name      string
	TableName string
	Fields    []FieldSpec
}

type ParsedFile struct {
	// Package model文件的包名
	Package string
	Models  []*ModelSpec
}

// ParseModelFile 解析model文件, 提取内嵌TableName并带db tag的结构体
// typeNames不为空时只解析指定的结构体
func ParseModelFile(path string, typeNames []string) (*ParsedFile, error) {
	fst := token.NewFileSet()
	f, err := goparser.ParseFile(fst, path, nil, goparser.ParseComments)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s failed", path)
	}

	wanted := collection.NewSetFromSlice(typeNames)
	res := &ParsedFile{Package: f.Name.Name}
	for _, decl := range f.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				continue
			}
			if len(typeNames) > 0 && !wanted.Has(typeSpec.Name.Name) {
				continue
			}

			model, err := parseModelStruct(typeSpec.Name.Name, structType)
			if err != nil {
				return nil, err
			}
			if model != nil {
				res.Models = append(res.Models, model)
			}
		}
	}

	if len(res.Models) == 0 {
		return nil, errors.Errorf("no model struct found in %s", path)
	}

	return res, nil
}

// parseModelStruct 解析单个结构体, 未内嵌TableName的结构体不是model, 返回nil
func parseModelStruct(name string, structType *ast.StructType) (*ModelSpec, error) {
	model := &ModelSpec{Name: name}
	for _, f := range structType.Fields.List {
		tag := fieldTag(f)

		// 内嵌TableName携带表名
		if len(f.Names) == 0 {
			if typeName(f.Type) != tableNameTypeName {
				continue
			}
			tableName := tag.Get(tableNameTagKey)
			if tableName == "" {
				return nil, errors.Errorf("model %s: embedded %s requires a %s tag", name, tableNameTypeName, tableNameTagKey)
			}
			model.TableName = tableName
			continue
		}

		column, pk, autoIncr := parseFieldTag(tag)
		if column == "" || column == "-" {
			continue
		}
		for _, fieldName := range f.Names {
			if !unicode.IsUpper(rune(fieldName.Name[0])) {
				continue
			}
			model.Fields = append(model.Fields, FieldSpec{
				Name:          fieldName.Name,
				Column:        column,
				Pk:            pk,
				AutoIncrement: autoIncr,
			})
		}
	}

	if model.TableName == "" {
		return nil, nil
	}
	if len(model.Fields) == 0 {
		return nil, errors.Errorf("model %s: no field with %s tag", name, fieldTagKey)
	}

	return model, nil
}

func fieldTag(f *ast.Field) reflect.StructTag {
	if f.Tag == nil {
		return ""
	}

	return reflect.StructTag(strings.Trim(f.Tag.Value, "`"))
}

func parseFieldTag(tag reflect.StructTag) (column string, pk, autoIncr bool) {
	parts := strings.Split(tag.Get(fieldTagKey), ",")
	column = strings.TrimSpace(parts[0])
	for _, part := range parts[1:] {
		switch strings.TrimSpace(part) {
		case pkTagValue:
			pk = true
		case autoIncrTagValue:
			autoIncr = true
		}
	}

	return
}

func typeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return t.Sel.Name
	default:
		return ""
	}
}

// ResolveImportPath 解析目录对应的go包导入路径
func ResolveImportPath(dir string) (string, error) {
	cfg := &packages.Config{Mode: packages.NeedName, Dir: dir}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return "", errors.Wrapf(err, "load package in %s failed", dir)
	}
	if len(pkgs) == 0 || pkgs[0].PkgPath == "" {
		return "", errors.Errorf("cannot resolve import path of %s", dir)
	}

	return pkgs[0].PkgPath, nil
}
