package sqlbuilder

import (
	"fmt"
	"strconv"
	"strings"
)

type SelectBuilder struct {
	TableName string
	Fields    []string
	// Where 已构建好的条件子句, 不含WHERE关键字
	Where   string
	OrderBy string
	// Limit 一个元素表示LIMIT n, 两个元素表示LIMIT offset, n
	Limit []int
}

func (b *SelectBuilder) Build() string {
	builder := strings.Builder{}
	builder.Grow(64)
	builder.WriteString("SELECT ")
	if len(b.Fields) == 0 {
		builder.WriteString("*")
	} else {
		builder.WriteString(strings.Join(b.Fields, ", "))
	}
	builder.WriteString(" FROM ")
	builder.WriteString(b.TableName)
	if b.Where != "" {
		builder.WriteString(" WHERE ")
		builder.WriteString(b.Where)
	}
	if b.OrderBy != "" {
		builder.WriteString(" ORDER BY ")
		builder.WriteString(b.OrderBy)
	}
	if len(b.Limit) == 1 {
		builder.WriteString(" LIMIT " + strconv.Itoa(b.Limit[0]))
	} else if len(b.Limit) == 2 {
		builder.WriteString(" LIMIT " + fmt.Sprintf("%d, %d", b.Limit[0], b.Limit[1]))
	}

	return builder.String()
}
