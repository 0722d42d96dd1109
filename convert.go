package minerva

import (
	"fmt"
	"reflect"
)

// Convert 复制属性并返回新的目标对象
//
// source为nil时返回nil, 不视为错误
// 按字段名匹配, 类型可赋值或可转换时复制, 其余字段跳过并保持目标零值
// 目标类型R不是结构体或source不是结构体时返回错误
func Convert[R any](source any) (*R, error) {
	if source == nil {
		return nil, nil
	}

	sv := reflect.ValueOf(source)
	for sv.Kind() == reflect.Pointer {
		if sv.IsNil() {
			return nil, nil
		}
		sv = sv.Elem()
	}
	if sv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("convert: source must be a struct, got %T", source)
	}

	target := new(R)
	tv := reflect.ValueOf(target).Elem()
	if tv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("convert: target type %s is not a struct", tv.Type())
	}

	copyFields(sv, tv)
	return target, nil
}

// ConvertList 将一个类型的List转换为另一个类型的List
// 每个元素都会分配新的目标对象, 任一元素转换失败时整体失败, 不返回部分结果
func ConvertList[R any, T any](sourceList []*T) ([]*R, error) {
	res := make([]*R, 0, len(sourceList))
	for i, source := range sourceList {
		if source == nil {
			return nil, fmt.Errorf("convert: source element %d is nil", i)
		}
		target, err := Convert[R](source)
		if err != nil {
			return nil, err
		}
		res = append(res, target)
	}

	return res, nil
}

// CopyProperties 将source中同名且类型兼容的字段复制到target指向的结构体
// target必须是非nil的结构体指针, source不会被修改
func CopyProperties(source, target any) error {
	if source == nil {
		return fmt.Errorf("copy properties: source is nil")
	}
	if target == nil {
		return fmt.Errorf("copy properties: target is nil")
	}

	tv := reflect.ValueOf(target)
	if tv.Kind() != reflect.Pointer || tv.IsNil() {
		return fmt.Errorf("copy properties: target must be a non-nil pointer, got %T", target)
	}
	tv = tv.Elem()
	if tv.Kind() != reflect.Struct {
		return fmt.Errorf("copy properties: target must point to a struct, got %T", target)
	}

	sv := reflect.ValueOf(source)
	for sv.Kind() == reflect.Pointer {
		if sv.IsNil() {
			return fmt.Errorf("copy properties: source is nil")
		}
		sv = sv.Elem()
	}
	if sv.Kind() != reflect.Struct {
		return fmt.Errorf("copy properties: source must be a struct, got %T", source)
	}

	copyFields(sv, tv)
	return nil
}

// copyFields 逐个复制同名字段, 复制是尽力而为的, 不兼容的字段直接跳过
func copyFields(sv, tv reflect.Value) {
	tt := tv.Type()
	for i := 0; i < tt.NumField(); i++ {
		tf := tt.Field(i)
		if !tf.IsExported() || tf.Anonymous {
			continue
		}

		src := sv.FieldByName(tf.Name)
		if !src.IsValid() || !src.CanInterface() {
			continue
		}

		dst := tv.Field(i)
		if src.Type().AssignableTo(dst.Type()) {
			dst.Set(src)
			continue
		}
		// 数值类型之间允许转换, 但不允许整数到string的转换(得到的是码点而不是数字)
		if src.Type().ConvertibleTo(dst.Type()) && !convertsToRune(src, dst) {
			dst.Set(src.Convert(dst.Type()))
		}
	}
}

func convertsToRune(src, dst reflect.Value) bool {
	if dst.Kind() != reflect.String {
		return false
	}

	switch src.Kind() {
	case reflect.String:
		return false
	case reflect.Slice:
		elem := src.Type().Elem().Kind()
		return elem != reflect.Uint8 && elem != reflect.Int32
	default:
		return true
	}
}
