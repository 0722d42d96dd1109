package wrapper

type QueryWrapper[T any] interface {
	// Eq 指定==查询条件
	Eq(field string, val any) QueryWrapper[T]

	// Ne 指定!=查询条件
	Ne(field string, val any) QueryWrapper[T]

	// Gt 指定>查询条件
	Gt(field string, val any) QueryWrapper[T]

	// Lt 指定<查询条件
	Lt(field string, val any) QueryWrapper[T]

	// Le 指定<=查询条件
	Le(field string, val any) QueryWrapper[T]

	// Ge 指定>=查询条件
	Ge(field string, val any) QueryWrapper[T]

	// Select 指定查询的字段
	Select(fields ...string) QueryWrapper[T]

	// In 指定范围查询条件
	// values为空时该wrapper的查询结果恒为空集, 执行端不应发起查询
	In(field string, values ...any) QueryWrapper[T]

	// NotIn 指定NOT IN查询条件, values为空时不生成条件
	NotIn(field string, values ...any) QueryWrapper[T]

	// Like 指定模糊查询条件, 自动添加% %
	Like(field string, value string) QueryWrapper[T]

	// NotLike 指定NOT LIKE查询条件, 自动添加% %
	NotLike(field string, value string) QueryWrapper[T]

	// OrderByAsc 指定升序排序字段
	OrderByAsc(fields ...string) QueryWrapper[T]

	// OrderByDesc 指定降序排序字段
	OrderByDesc(fields ...string) QueryWrapper[T]

	// Build 构建WHERE子句和对应参数, 占位符为?, 不包含WHERE关键字
	// 没有任何条件时返回空字符串
	Build() (string, []any)

	// SelectFields 返回Select指定的字段
	SelectFields() []string

	// OrderBy 构建ORDER BY子句, 不包含ORDER BY关键字, 没有排序字段时返回空字符串
	OrderBy() string

	// EmptyIn 是否存在值为空的IN条件, 此时查询结果恒为空集
	EmptyIn() bool
}

type UpdateWrapper[T any] interface {
	// Set 指定要更新的字段和值
	Set(field string, val any) UpdateWrapper[T]

	// BuildSet 构建SET子句和对应参数, 不包含SET关键字
	BuildSet() (string, []any)
}
