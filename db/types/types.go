package types

// TableName 嵌入到model结构体中, 通过tableName tag指定表名
//
//	type User struct {
//	    types.TableName `tableName:"t_user"`
//	    Id              int64  `db:"id,pk,autoIncrement"`
//	}
type TableName struct{}
