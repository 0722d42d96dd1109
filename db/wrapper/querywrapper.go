package wrapper

import (
	"strings"

	"github.com/mangohow/minerva/db/internal/types"
)

type queryWrapper[T any] struct {
	selectFields []string
	condition    []types.SqlCondition
	inCondition  []types.KvPair[[]any]
	orders       []types.KvPair[types.SqlKeyWord]
	emptyIn      bool
}

func NewQueryWrapper[T any]() QueryWrapper[T] {
	return &queryWrapper[T]{}
}

func (q *queryWrapper[T]) Eq(field string, val any) QueryWrapper[T] {
	return q.addCondition(field, types.Eq, val)
}

func (q *queryWrapper[T]) Ne(field string, val any) QueryWrapper[T] {
	return q.addCondition(field, types.Ne, val)
}

func (q *queryWrapper[T]) Gt(field string, val any) QueryWrapper[T] {
	return q.addCondition(field, types.Gt, val)
}

func (q *queryWrapper[T]) Lt(field string, val any) QueryWrapper[T] {
	return q.addCondition(field, types.Lt, val)
}

func (q *queryWrapper[T]) Le(field string, val any) QueryWrapper[T] {
	return q.addCondition(field, types.Le, val)
}

func (q *queryWrapper[T]) Ge(field string, val any) QueryWrapper[T] {
	return q.addCondition(field, types.Ge, val)
}

func (q *queryWrapper[T]) addCondition(field string, cond types.SqlKeyWord, val any) QueryWrapper[T] {
	q.condition = append(q.condition, types.SqlCondition{
		Field: field,
		Cond:  cond,
		Value: val,
	})

	return q
}

func (q *queryWrapper[T]) Select(fields ...string) QueryWrapper[T] {
	q.selectFields = append(q.selectFields, fields...)
	return q
}

func (q *queryWrapper[T]) In(field string, values ...any) QueryWrapper[T] {
	if len(values) == 0 {
		q.emptyIn = true
		return q
	}

	return q.addInCondition(field, types.In, values)
}

func (q *queryWrapper[T]) NotIn(field string, values ...any) QueryWrapper[T] {
	// NOT IN空集合恒为真, 不生成条件
	if len(values) == 0 {
		return q
	}

	return q.addInCondition(field, types.NotIn, values)
}

func (q *queryWrapper[T]) addInCondition(field string, keyWord types.SqlKeyWord, values []any) QueryWrapper[T] {
	b := strings.Builder{}
	b.Grow(len(field) + len(keyWord) + (len(values)-1)*3 + 5)
	b.WriteString(field)
	b.WriteString(" ")
	b.WriteString(string(keyWord))
	b.WriteString(" (?")
	for i := 1; i < len(values); i++ {
		b.WriteString(", ?")
	}
	b.WriteString(")")
	q.inCondition = append(q.inCondition, types.KvPair[[]any]{
		Key:   b.String(),
		Value: values,
	})

	return q
}

func (q *queryWrapper[T]) Like(field string, value string) QueryWrapper[T] {
	return q.addCondition(field, types.Like, "%"+value+"%")
}

func (q *queryWrapper[T]) NotLike(field string, value string) QueryWrapper[T] {
	return q.addCondition(field, types.NotLike, "%"+value+"%")
}

func (q *queryWrapper[T]) OrderByAsc(fields ...string) QueryWrapper[T] {
	for _, f := range fields {
		q.orders = append(q.orders, types.KvPair[types.SqlKeyWord]{Key: f, Value: types.Asc})
	}
	return q
}

func (q *queryWrapper[T]) OrderByDesc(fields ...string) QueryWrapper[T] {
	for _, f := range fields {
		q.orders = append(q.orders, types.KvPair[types.SqlKeyWord]{Key: f, Value: types.Desc})
	}
	return q
}

func (q *queryWrapper[T]) Build() (string, []any) {
	if len(q.condition) == 0 && len(q.inCondition) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(q.condition)+len(q.inCondition))
	args := make([]any, 0, len(q.condition)+len(q.inCondition))
	for _, cond := range q.condition {
		parts = append(parts, cond.Field+" "+string(cond.Cond)+" ?")
		args = append(args, cond.Value)
	}
	for _, in := range q.inCondition {
		parts = append(parts, in.Key)
		args = append(args, in.Value...)
	}

	return strings.Join(parts, " "+string(types.And)+" "), args
}

func (q *queryWrapper[T]) SelectFields() []string {
	return q.selectFields
}

func (q *queryWrapper[T]) OrderBy() string {
	if len(q.orders) == 0 {
		return ""
	}

	parts := make([]string, 0, len(q.orders))
	for _, order := range q.orders {
		parts = append(parts, order.Key+" "+string(order.Value))
	}

	return strings.Join(parts, ", ")
}

func (q *queryWrapper[T]) EmptyIn() bool {
	return q.emptyIn
}

type updateWrapper[T any] struct {
	sets []types.SqlCondition
}

func NewUpdateWrapper[T any]() UpdateWrapper[T] {
	return &updateWrapper[T]{}
}

func (u *updateWrapper[T]) Set(field string, val any) UpdateWrapper[T] {
	u.sets = append(u.sets, types.SqlCondition{
		Field: field,
		Cond:  types.Eq,
		Value: val,
	})

	return u
}

func (u *updateWrapper[T]) BuildSet() (string, []any) {
	if len(u.sets) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(u.sets))
	args := make([]any, 0, len(u.sets))
	for _, set := range u.sets {
		parts = append(parts, set.Field+" = ?")
		args = append(args, set.Value)
	}

	return strings.Join(parts, ", "), args
}
