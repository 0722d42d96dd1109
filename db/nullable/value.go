package nullable

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Value 可空的数据库字段, 同时支持sql扫描和JSON序列化
type Value[T any] struct {
	V     T
	Valid bool
}

// ValueFrom 创建Valid=true的Value[T]
func ValueFrom[T any](s T) Value[T] {
	return Value[T]{
		V:     s,
		Valid: true,
	}
}

// ValueFromPtr 从*T创建Value[T], nil表示NULL
func ValueFromPtr[T any](s *T) Value[T] {
	if s == nil {
		return Value[T]{}
	}
	return ValueFrom(*s)
}

func (v *Value[T]) Scan(src any) error {
	if src == nil {
		var zero T
		v.V = zero
		v.Valid = false
		return nil
	}

	if val, ok := src.(T); ok {
		v.V = val
		v.Valid = true
		return nil
	}

	sv := reflect.ValueOf(src)
	rt := reflect.TypeOf(v.V)
	if sv.Type().ConvertibleTo(rt) {
		v.V = sv.Convert(rt).Interface().(T)
		v.Valid = true
		return nil
	}

	return fmt.Errorf("nullable: cannot scan %T into Value[%s]", src, rt)
}

func (v Value[T]) Value() (driver.Value, error) {
	if !v.Valid {
		return nil, nil
	}

	return any(v.V), nil
}

func (v *Value[T]) UnmarshalJSON(data []byte) error {
	// 处理null
	if string(data) == "null" {
		v.Valid = false
		return nil
	}

	var val T
	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}

	v.V = val
	v.Valid = true
	return nil
}

func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.V)
}

func (v *Value[T]) IsNull() bool {
	return !v.Valid
}

func (v *Value[T]) Ptr() *T {
	if v.Valid {
		return &v.V
	}

	return nil
}

func (v *Value[T]) GetOrElse(value T) T {
	if v.Valid {
		return v.V
	}

	return value
}

func (v *Value[T]) String() string {
	if !v.Valid {
		return "<nil>"
	}

	switch val := any(v.V).(type) {
	case int:
		return strconv.FormatInt(int64(val), 10)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case time.Time:
		return val.Format(time.DateTime)
	default:
		res, err := v.MarshalJSON()
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(res)
	}
}
