package types

type SqlCondition struct {
	Field string
	Cond  SqlKeyWord
	Value any
}

type KvPair[T any] struct {
	Key   string
	Value T
}
