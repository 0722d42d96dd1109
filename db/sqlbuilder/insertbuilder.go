package sqlbuilder

import (
	"strings"
)

type InsertBuilder struct {
	Fields    []string
	Batch     int // 批量插入时需要
	TableName string
}

func (b *InsertBuilder) Build() string {
	if b.Batch <= 0 {
		b.Batch = 1
	}
	builder := strings.Builder{}
	builder.Grow(64)
	builder.WriteString("INSERT INTO ")
	builder.WriteString(b.TableName)
	builder.WriteString(" (")
	builder.WriteString(strings.Join(b.Fields, ", "))
	builder.WriteString(") VALUES ")
	bb := strings.Builder{}
	bb.Grow(len(b.Fields)*3 + 2)
	bb.WriteString("(")
	for i := 0; i < len(b.Fields); i++ {
		if i == len(b.Fields)-1 {
			bb.WriteString("?")
		} else {
			bb.WriteString("?, ")
		}
	}
	bb.WriteString(")")
	values := bb.String()
	for i := 0; i < b.Batch; i++ {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(values)
	}

	return builder.String()
}
