package types

const (
	// TableNameTagKey 使用该Tag Key指定表名
	TableNameTagKey = "tableName"
	// TableFieldTagKey 使用该Tag Key指定表中字段名, 与sqlx保持一致
	TableFieldTagKey = "db"
	// TablePrimaryIdTagValue 使用该Tag Value指定主键
	TablePrimaryIdTagValue = "pk"

	// TableAutoIncrementTagValue 使用该Tag Value指定主键自增, 插入成功后自动回填Id
	TableAutoIncrementTagValue = "autoIncrement"
)
