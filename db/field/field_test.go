package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type user struct {
	Id     int64
	DeptId int64
}

var (
	userId     = New("id", func(u *user) any { return u.Id })
	userDeptId = New("dept_id", func(u *user) any { return u.DeptId })
)

func TestFieldColumn(t *testing.T) {
	assert.Equal(t, "id", userId.Column())
	assert.Equal(t, "dept_id", userDeptId.Column())
}

func TestFieldValueOf(t *testing.T) {
	u := &user{Id: 1, DeptId: 10}
	assert.Equal(t, int64(1), userId.ValueOf(u))
	assert.Equal(t, int64(10), userDeptId.ValueOf(u))
}

func TestFieldValues(t *testing.T) {
	users := []*user{
		{Id: 1, DeptId: 10},
		{Id: 2, DeptId: 20},
		{Id: 3, DeptId: 10},
	}

	// 重复值保留
	assert.Equal(t, []any{int64(10), int64(20), int64(10)}, Values(userDeptId, users))
	assert.Empty(t, Values(userId, nil))
}

func TestFieldAsMapKey(t *testing.T) {
	// 描述符为包级变量, 指针可作为map key
	conds := map[*Field[user]]any{
		userId:     int64(1),
		userDeptId: int64(10),
	}
	assert.Len(t, conds, 2)
	assert.Equal(t, int64(1), conds[userId])
}
