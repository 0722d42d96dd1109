package sqlbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectBuilder(t *testing.T) {
	cases := []struct {
		name    string
		builder SelectBuilder
		want    string
	}{
		{
			name:    "all fields",
			builder: SelectBuilder{TableName: "t_user"},
			want:    "SELECT * FROM t_user",
		},
		{
			name: "fields and where",
			builder: SelectBuilder{
				TableName: "t_user",
				Fields:    []string{"id", "username"},
				Where:     "id = ?",
			},
			want: "SELECT id, username FROM t_user WHERE id = ?",
		},
		{
			name: "order by and limit",
			builder: SelectBuilder{
				TableName: "t_user",
				OrderBy:   "id DESC",
				Limit:     []int{10},
			},
			want: "SELECT * FROM t_user ORDER BY id DESC LIMIT 10",
		},
		{
			name: "limit with offset",
			builder: SelectBuilder{
				TableName: "t_user",
				Where:     "dept_id = ?",
				Limit:     []int{20, 10},
			},
			want: "SELECT * FROM t_user WHERE dept_id = ? LIMIT 20, 10",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.builder.Build())
		})
	}
}

func TestInsertBuilder(t *testing.T) {
	builder := InsertBuilder{
		TableName: "t_user",
		Fields:    []string{"username", "password"},
	}
	assert.Equal(t, "INSERT INTO t_user (username, password) VALUES (?, ?)", builder.Build())
}

func TestInsertBuilderBatch(t *testing.T) {
	builder := InsertBuilder{
		TableName: "t_user",
		Fields:    []string{"username", "password", "dept_id"},
		Batch:     3,
	}
	assert.Equal(t,
		"INSERT INTO t_user (username, password, dept_id) VALUES (?, ?, ?), (?, ?, ?), (?, ?, ?)",
		builder.Build())
}

func TestUpdateBuilder(t *testing.T) {
	builder := UpdateBuilder{
		TableName: "t_user",
		Fields:    []string{"username", "password"},
		Where:     "id = ?",
	}
	assert.Equal(t, "UPDATE t_user SET username = ?, password = ? WHERE id = ?", builder.Build())
}

func TestUpdateBuilderPrebuiltSet(t *testing.T) {
	builder := UpdateBuilder{
		TableName: "t_user",
		Set:       "password = ?",
		Where:     "username = ?",
	}
	assert.Equal(t, "UPDATE t_user SET password = ? WHERE username = ?", builder.Build())
}

func TestDeleteBuilder(t *testing.T) {
	builder := DeleteBuilder{TableName: "t_user", Where: "id = ?"}
	assert.Equal(t, "DELETE FROM t_user WHERE id = ?", builder.Build())

	builder = DeleteBuilder{TableName: "t_user"}
	assert.Equal(t, "DELETE FROM t_user", builder.Build())
}
