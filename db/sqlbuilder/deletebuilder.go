package sqlbuilder

import "strings"

type DeleteBuilder struct {
	TableName string
	// Where 已构建好的条件子句, 不含WHERE关键字
	Where string
}

func (b *DeleteBuilder) Build() string {
	builder := strings.Builder{}
	builder.WriteString("DELETE FROM ")
	builder.WriteString(b.TableName)
	if b.Where == "" {
		return builder.String()
	}
	builder.WriteString(" WHERE ")
	builder.WriteString(b.Where)

	return builder.String()
}
