package minerva

import (
	"context"

	"github.com/mangohow/minerva/db/field"
	"github.com/mangohow/minerva/db/wrapper"
)

// FindByFieldInTargetField 从源集合中提取指定属性并作为IN查询条件查询目标集合
//
// sourceList为源集合, sourceField从每个元素中提取比较值(重复值保留),
// targetField为目标表中参与IN条件的字段, svc为执行查询的Service
// 提取出的值集合为空时直接返回空集合, 不调用svc
// 结果顺序为svc返回的顺序, 不做二次排序
func FindByFieldInTargetField[T any, R any](
	ctx context.Context,
	sourceList []T,
	svc Service[R],
	sourceField func(T) any,
	targetField *field.Field[R],
) ([]*R, error) {
	fieldValues := make([]any, 0, len(sourceList))
	for _, source := range sourceList {
		fieldValues = append(fieldValues, sourceField(source))
	}

	if len(fieldValues) == 0 {
		return []*R{}, nil
	}

	qw := wrapper.NewQueryWrapper[R]().In(targetField.Column(), fieldValues...)
	return svc.List(ctx, qw)
}

// BuildQueryWrapperByField 根据指定字段和值构建==查询条件
// 纯构建, 不执行任何查询, 返回的wrapper可以继续追加条件后再执行
func BuildQueryWrapperByField[T any](f *field.Field[T], fieldValue any) wrapper.QueryWrapper[T] {
	return wrapper.NewQueryWrapper[T]().Eq(f.Column(), fieldValue)
}

// FindByFieldEqTargetField 根据指定字段和值查询对应的实体列表
// 如果没有符合条件的记录, 返回空集合
func FindByFieldEqTargetField[T any](
	ctx context.Context,
	f *field.Field[T],
	fieldValue any,
	svc Service[T],
) ([]*T, error) {
	return svc.List(ctx, BuildQueryWrapperByField(f, fieldValue))
}

// FindByFieldEqTargetFields 根据多个字段和对应的值进行查询
// fieldConditions中每个键值对生成一个==条件, 所有条件以AND连接
// fieldConditions为空时查询全部记录
func FindByFieldEqTargetFields[T any](
	ctx context.Context,
	fieldConditions map[*field.Field[T]]any,
	svc Service[T],
) ([]*T, error) {
	qw := wrapper.NewQueryWrapper[T]()
	for f, value := range fieldConditions {
		qw.Eq(f.Column(), value)
	}

	return svc.List(ctx, qw)
}
