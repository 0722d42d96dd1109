package field

// Field 类型化的字段描述符, 同时携带列名和取值函数
// 描述符通过minerva gen fields为每个model生成, 以包级变量的形式存在,
// 因此指针可以直接作为map的key使用
type Field[T any] struct {
	column string
	get    func(*T) any
}

func New[T any](column string, get func(*T) any) *Field[T] {
	return &Field[T]{
		column: column,
		get:    get,
	}
}

// Column 返回该字段对应的列名
func (f *Field[T]) Column() string {
	return f.column
}

// ValueOf 读取entity中该字段的值
func (f *Field[T]) ValueOf(entity *T) any {
	return f.get(entity)
}

// Values 提取集合中每个元素该字段的值, 重复值保留
func Values[T any](f *Field[T], entities []*T) []any {
	values := make([]any, 0, len(entities))
	for _, entity := range entities {
		values = append(values, f.get(entity))
	}

	return values
}
