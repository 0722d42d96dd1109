package model

import (
	"time"

	"github.com/mangohow/minerva/db/nullable"
	"github.com/mangohow/minerva/db/types"
)

//go:generate minerva gen fields -f model.go -o ../db/field

type User struct {
	types.TableName `tableName:"t_user"`
	Id              int64                  `db:"id,pk,autoIncrement" json:"id"`
	Username        string                 `db:"username" json:"username"`
	Password        string                 `db:"password" json:"-"`
	DeptId          int64                  `db:"dept_id" json:"deptId"`
	Email           nullable.Value[string] `db:"email" json:"email"`
	CreatedAt       time.Time              `db:"created_at" json:"createdAt"`
}

type Dept struct {
	types.TableName `tableName:"t_dept"`
	Id              int64  `db:"id,pk,autoIncrement" json:"id"`
	Name            string `db:"name" json:"name"`
}

// UserVO 对外展示的用户信息, 不含密码
type UserVO struct {
	Id       int64                  `json:"id"`
	Username string                 `json:"username"`
	DeptId   int64                  `json:"deptId"`
	Email    nullable.Value[string] `json:"email"`
}
