package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	parsed := &ParsedFile{
		Package: "model",
		Models: []*ModelSpec{
			{
				Name:      "User",
				TableName: "t_user",
				Fields: []FieldSpec{
					{Name: "Id", Column: "id", Pk: true, AutoIncrement: true},
					{Name: "Username", Column: "username"},
				},
			},
		},
	}

	source, err := Generate(parsed, GenerateOptions{
		Package:     "field",
		ModelImport: "github.com/mangohow/example/model",
	})
	require.NoError(t, err)

	code := string(source)
	assert.True(t, strings.HasPrefix(code, "// Code generated by minerva gen fields. DO NOT EDIT."))
	assert.Contains(t, code, "package field")
	assert.Contains(t, code, `model "github.com/mangohow/example/model"`)
	assert.Contains(t, code, "var UserFields = struct {")
	assert.Contains(t, code, "Id       *field.Field[model.User]")
	assert.Contains(t, code, `Id:       field.New("id", func(m *model.User) any { return m.Id }),`)
	assert.Contains(t, code, `Username: field.New("username", func(m *model.User) any { return m.Username }),`)
}

func TestGenerateSamePackage(t *testing.T) {
	parsed := &ParsedFile{
		Package: "model",
		Models: []*ModelSpec{
			{
				Name:      "Dept",
				TableName: "t_dept",
				Fields:    []FieldSpec{{Name: "Id", Column: "id", Pk: true}},
			},
		},
	}

	source, err := Generate(parsed, GenerateOptions{Package: "model"})
	require.NoError(t, err)

	code := string(source)
	assert.Contains(t, code, "package model")
	assert.NotContains(t, code, `model "`)
	assert.Contains(t, code, "*field.Field[Dept]")
	assert.Contains(t, code, `field.New("id", func(m *Dept) any { return m.Id })`)
}

func TestGenerateRoundTrip(t *testing.T) {
	parsed, err := ParseModelFile(writeModelFile(t, modelSource), nil)
	require.NoError(t, err)

	source, err := Generate(parsed, GenerateOptions{
		Package:     "field",
		ModelImport: "github.com/mangohow/example/model",
	})
	require.NoError(t, err)

	code := string(source)
	assert.Contains(t, code, "var UserFields = struct {")
	assert.Contains(t, code, "var DeptFields = struct {")
	assert.NotContains(t, code, "Memo")
}
