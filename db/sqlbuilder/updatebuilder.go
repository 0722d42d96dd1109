package sqlbuilder

import "strings"

type UpdateBuilder struct {
	TableName string
	// Fields 要更新的字段, 生成field = ?形式的SET子句
	Fields []string
	// Set 已构建好的SET子句, 与Fields二选一
	Set string
	// Where 已构建好的条件子句, 不含WHERE关键字
	Where string
}

func (b *UpdateBuilder) Build() string {
	builder := strings.Builder{}
	builder.Grow(64)
	builder.WriteString("UPDATE ")
	builder.WriteString(b.TableName)
	builder.WriteString(" SET ")
	if b.Set != "" {
		builder.WriteString(b.Set)
	} else {
		for i, field := range b.Fields {
			if i > 0 {
				builder.WriteString(", ")
			}
			builder.WriteString(field + " = ?")
		}
	}
	if b.Where != "" {
		builder.WriteString(" WHERE ")
		builder.WriteString(b.Where)
	}

	return builder.String()
}
