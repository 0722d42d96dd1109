package minerva

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/mangohow/minerva/db/sqlbuilder"
	"github.com/mangohow/minerva/db/types"
	"github.com/mangohow/minerva/db/wrapper"
)

var tableNameType = reflect.TypeOf(types.TableName{})

// Service 数据访问协作方, 只要求按条件查询的能力
type Service[T any] interface {
	// List 根据查询条件查询多条记录, qw为nil时查询全部
	List(ctx context.Context, qw wrapper.QueryWrapper[T]) ([]*T, error)

	// Count 根据查询条件统计记录条数
	Count(ctx context.Context, qw wrapper.QueryWrapper[T]) (int64, error)
}

// BaseService 基于sqlx的通用数据访问实现
// 通过反射从model结构体tag中获取表名和字段信息
type BaseService[T any] struct {
	tableName string
	// columns和indexes一一对应, columns[i]对应结构体第indexes[i]个字段
	columns []string
	indexes []int
	primary primaryKeyInfo

	sess Session

	// 根据Id查找的sql进行缓存
	selectByIdSql string
	// 根据Id进行删除的sql进行缓存
	deleteByIdSql string
}

func NewBaseService[T any](db *sqlx.DB) *BaseService[T] {
	return NewBaseServiceWithSession[T](db)
}

func NewBaseServiceWithSession[T any](sess Session) *BaseService[T] {
	// 利用反射获取tableName和tableField
	info := getTableInfo[T]()
	if info.name == "" {
		panic("can't get table name")
	}
	if info.primary.name == "" || info.primary.index == -1 {
		panic("can't get table primary id")
	}

	s := &BaseService[T]{
		tableName: info.name,
		columns:   info.columns,
		indexes:   info.indexes,
		primary:   info.primary,
		sess:      sess,
	}

	// 该sql不会变化, 直接缓存起来
	s.selectByIdSql = (&sqlbuilder.SelectBuilder{
		TableName: s.tableName,
		Fields:    s.columns,
		Where:     s.primary.name + " = ?",
	}).Build()

	s.deleteByIdSql = (&sqlbuilder.DeleteBuilder{
		TableName: s.tableName,
		Where:     s.primary.name + " = ?",
	}).Build()

	return s
}

// WithSession 返回使用指定Session的副本, 用于在事务中执行
func (s *BaseService[T]) WithSession(sess Session) *BaseService[T] {
	clone := *s
	clone.sess = sess
	return &clone
}

func (s *BaseService[T]) TableName() string {
	return s.tableName
}

// SelectById 根据主键Id进行查询, 记录不存在时返回sql.ErrNoRows
func (s *BaseService[T]) SelectById(ctx context.Context, id any) (*T, error) {
	return Invoke[*T](&ExecOption{Ctx: ctx, SqlStmt: s.selectByIdSql, Args: []any{id}, Session: s.sess}, func() (*T, error) {
		res := new(T)
		if err := s.sess.Get(res, s.selectByIdSql, id); err != nil {
			return nil, err
		}

		return res, nil
	})
}

// SelectBatchIds 根据id集合批量查询, ids为空时直接返回空集合, 不发起查询
func (s *BaseService[T]) SelectBatchIds(ctx context.Context, ids ...any) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}

	return s.List(ctx, wrapper.NewQueryWrapper[T]().In(s.primary.name, ids...))
}

// SelectOne 根据条件查询一条记录, 记录不存在时返回nil
func (s *BaseService[T]) SelectOne(ctx context.Context, qw wrapper.QueryWrapper[T]) (*T, error) {
	if qw != nil && qw.EmptyIn() {
		return nil, nil
	}

	sqlStr, args := s.buildSelect(qw, []int{1})
	return Invoke[*T](&ExecOption{Ctx: ctx, SqlStmt: sqlStr, Args: args, Session: s.sess}, func() (*T, error) {
		res := new(T)
		if err := s.sess.Get(res, sqlStr, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, nil
			}
			return nil, err
		}

		return res, nil
	})
}

// List 根据查询条件查询多条记录
// 存在空IN条件时结果恒为空集, 直接返回且不发起查询
func (s *BaseService[T]) List(ctx context.Context, qw wrapper.QueryWrapper[T]) ([]*T, error) {
	if qw != nil && qw.EmptyIn() {
		return []*T{}, nil
	}

	sqlStr, args := s.buildSelect(qw, nil)
	return Invoke[[]*T](&ExecOption{Ctx: ctx, SqlStmt: sqlStr, Args: args, Session: s.sess}, func() ([]*T, error) {
		res := make([]*T, 0)
		if err := s.sess.Select(&res, sqlStr, args...); err != nil {
			return nil, err
		}

		return res, nil
	})
}

// Count 根据查询条件统计记录条数
func (s *BaseService[T]) Count(ctx context.Context, qw wrapper.QueryWrapper[T]) (int64, error) {
	if qw != nil && qw.EmptyIn() {
		return 0, nil
	}

	builder := &sqlbuilder.SelectBuilder{
		TableName: s.tableName,
		Fields:    []string{"COUNT(*)"},
	}
	var args []any
	if qw != nil {
		builder.Where, args = qw.Build()
	}
	sqlStr := builder.Build()

	return Invoke[int64](&ExecOption{Ctx: ctx, SqlStmt: sqlStr, Args: args, Session: s.sess}, func() (int64, error) {
		var count int64
		if err := s.sess.Get(&count, sqlStr, args...); err != nil {
			return 0, err
		}

		return count, nil
	})
}

// SelectPage 查询一页记录, 并在page中回填总条数和总页数
func (s *BaseService[T]) SelectPage(ctx context.Context, page Page, qw wrapper.QueryWrapper[T]) ([]*T, error) {
	if page == nil {
		return nil, errors.New("input parameter page is nil")
	}
	if page.PageSize() <= 0 || page.PageNum() <= 0 {
		return nil, errors.New("page num and page size must be positive")
	}
	if qw != nil && qw.EmptyIn() {
		page.SetTotalCount(0)
		page.SetTotalPages(0)
		return []*T{}, nil
	}

	if page.IsSelectCount() {
		count, err := s.Count(ctx, qw)
		if err != nil {
			return nil, err
		}
		page.SetTotalCount(int(count))
		totalPages := int(count) / page.PageSize()
		if int(count)%page.PageSize() != 0 {
			totalPages++
		}
		page.SetTotalPages(totalPages)
	}

	builder := &sqlbuilder.SelectBuilder{
		TableName: s.tableName,
		Fields:    s.columns,
		OrderBy:   page.Orders().SqlStmt(),
		Limit:     []int{(page.PageNum() - 1) * page.PageSize(), page.PageSize()},
	}
	var args []any
	if qw != nil {
		if fields := qw.SelectFields(); len(fields) > 0 {
			builder.Fields = fields
		}
		builder.Where, args = qw.Build()
		if builder.OrderBy == "" {
			builder.OrderBy = qw.OrderBy()
		}
	}
	sqlStr := builder.Build()

	return Invoke[[]*T](&ExecOption{Ctx: ctx, SqlStmt: sqlStr, Args: args, Session: s.sess, Extension: page}, func() ([]*T, error) {
		res := make([]*T, 0, page.PageSize())
		if err := s.sess.Select(&res, sqlStr, args...); err != nil {
			return nil, err
		}

		return res, nil
	})
}

// Insert 插入一条记录, 返回影响的行数
// 主键为自增时不插入主键字段, 并在插入成功后回填自增Id
func (s *BaseService[T]) Insert(ctx context.Context, entity *T) (int64, error) {
	columns := s.insertColumns()
	sqlStr := (&sqlbuilder.InsertBuilder{
		TableName: s.tableName,
		Fields:    columns,
	}).Build()
	args := s.fieldValues(entity, true)

	return Invoke[int64](&ExecOption{Ctx: ctx, SqlStmt: sqlStr, Args: args, Session: s.sess}, func() (int64, error) {
		res, err := s.sess.Exec(sqlStr, args...)
		if err != nil {
			return 0, err
		}

		if s.primary.autoIncrement {
			if id, err := res.LastInsertId(); err == nil {
				s.fillPrimaryKey(entity, id)
			}
		}

		affected, _ := res.RowsAffected()
		return affected, nil
	})
}

// InsertBatch 插入多条记录, 返回影响的行数
func (s *BaseService[T]) InsertBatch(ctx context.Context, entities []*T) (int64, error) {
	if len(entities) == 0 {
		return 0, nil
	}

	columns := s.insertColumns()
	sqlStr := (&sqlbuilder.InsertBuilder{
		TableName: s.tableName,
		Fields:    columns,
		Batch:     len(entities),
	}).Build()
	args := make([]any, 0, len(entities)*len(columns))
	for _, entity := range entities {
		args = append(args, s.fieldValues(entity, true)...)
	}

	return s.exec(ctx, sqlStr, args)
}

// UpdateById 根据主键更新除主键外的全部字段, 返回影响的行数
func (s *BaseService[T]) UpdateById(ctx context.Context, entity *T) (int64, error) {
	fields := make([]string, 0, len(s.columns)-1)
	for _, column := range s.columns {
		if column == s.primary.name {
			continue
		}
		fields = append(fields, column)
	}

	sqlStr := (&sqlbuilder.UpdateBuilder{
		TableName: s.tableName,
		Fields:    fields,
		Where:     s.primary.name + " = ?",
	}).Build()

	rv := reflect.ValueOf(entity).Elem()
	args := make([]any, 0, len(s.columns))
	for i, idx := range s.indexes {
		if s.columns[i] == s.primary.name {
			continue
		}
		args = append(args, rv.Field(idx).Interface())
	}
	args = append(args, rv.Field(s.primary.index).Interface())

	return s.exec(ctx, sqlStr, args)
}

// Update 根据条件更新指定字段, 返回影响的行数
// qw为nil时更新全表
func (s *BaseService[T]) Update(ctx context.Context, uw wrapper.UpdateWrapper[T], qw wrapper.QueryWrapper[T]) (int64, error) {
	if uw == nil {
		return 0, errors.New("update wrapper is nil")
	}
	setStmt, setArgs := uw.BuildSet()
	if setStmt == "" {
		return 0, errors.New("no update fields specified")
	}
	if qw != nil && qw.EmptyIn() {
		return 0, nil
	}

	builder := &sqlbuilder.UpdateBuilder{
		TableName: s.tableName,
		Set:       setStmt,
	}
	args := setArgs
	if qw != nil {
		var whereArgs []any
		builder.Where, whereArgs = qw.Build()
		args = append(args, whereArgs...)
	}

	return s.exec(ctx, builder.Build(), args)
}

// DeleteById 根据主键Id删除记录, 返回影响的条数
func (s *BaseService[T]) DeleteById(ctx context.Context, id any) (int64, error) {
	return s.exec(ctx, s.deleteByIdSql, []any{id})
}

// DeleteBatchIds 根据id集合批量删除, ids为空时不执行删除
func (s *BaseService[T]) DeleteBatchIds(ctx context.Context, ids ...any) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	return s.Delete(ctx, wrapper.NewQueryWrapper[T]().In(s.primary.name, ids...))
}

// Delete 根据条件删除, 返回影响的条数
// qw为nil时删除全表记录
func (s *BaseService[T]) Delete(ctx context.Context, qw wrapper.QueryWrapper[T]) (int64, error) {
	if qw != nil && qw.EmptyIn() {
		return 0, nil
	}

	builder := &sqlbuilder.DeleteBuilder{TableName: s.tableName}
	var args []any
	if qw != nil {
		builder.Where, args = qw.Build()
	}

	return s.exec(ctx, builder.Build(), args)
}

func (s *BaseService[T]) exec(ctx context.Context, sqlStr string, args []any) (int64, error) {
	return Invoke[int64](&ExecOption{Ctx: ctx, SqlStmt: sqlStr, Args: args, Session: s.sess}, func() (int64, error) {
		res, err := s.sess.Exec(sqlStr, args...)
		if err != nil {
			return 0, err
		}

		affected, _ := res.RowsAffected()
		return affected, nil
	})
}

func (s *BaseService[T]) buildSelect(qw wrapper.QueryWrapper[T], limit []int) (string, []any) {
	builder := &sqlbuilder.SelectBuilder{
		TableName: s.tableName,
		Fields:    s.columns,
		Limit:     limit,
	}
	var args []any
	if qw != nil {
		if fields := qw.SelectFields(); len(fields) > 0 {
			builder.Fields = fields
		}
		builder.Where, args = qw.Build()
		builder.OrderBy = qw.OrderBy()
	}

	return builder.Build(), args
}

func (s *BaseService[T]) insertColumns() []string {
	if !s.primary.autoIncrement {
		return s.columns
	}

	columns := make([]string, 0, len(s.columns)-1)
	for _, column := range s.columns {
		if column == s.primary.name {
			continue
		}
		columns = append(columns, column)
	}

	return columns
}

func (s *BaseService[T]) fieldValues(entity *T, excludeAutoPk bool) []any {
	rv := reflect.ValueOf(entity).Elem()
	args := make([]any, 0, len(s.indexes))
	for i, idx := range s.indexes {
		if excludeAutoPk && s.primary.autoIncrement && s.columns[i] == s.primary.name {
			continue
		}
		args = append(args, rv.Field(idx).Interface())
	}

	return args
}

func (s *BaseService[T]) fillPrimaryKey(entity *T, id int64) {
	fv := reflect.ValueOf(entity).Elem().Field(s.primary.index)
	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		fv.SetInt(id)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		fv.SetUint(uint64(id))
	}
}

type primaryKeyInfo struct {
	// 主键id字段名称
	name string
	// 主键id字段在结构体索引
	index int
	// 是否是自增主键
	autoIncrement bool
}

type tableInfo struct {
	name    string
	columns []string
	indexes []int
	primary primaryKeyInfo
}

// getTableInfo 获取表名和所有字段
func getTableInfo[T any]() tableInfo {
	var (
		t    T
		info = tableInfo{
			primary: primaryKeyInfo{index: -1},
		}
	)
	rt := reflect.TypeOf(t)
	if rt == nil || rt.Kind() != reflect.Struct {
		panic("type T must be a struct")
	}

	n := rt.NumField()
	for i := 0; i < n; i++ {
		field := rt.Field(i)

		if info.name == "" && field.Type == tableNameType {
			info.name = field.Tag.Get(types.TableNameTagKey)
			continue
		}

		tf := field.Tag.Get(types.TableFieldTagKey)
		if tf == "" || tf == "-" {
			continue
		}

		tags := strings.Split(tf, ",")
		column := tags[0]
		info.columns = append(info.columns, column)
		info.indexes = append(info.indexes, i)
		for _, tag := range tags[1:] {
			switch tag {
			case types.TablePrimaryIdTagValue:
				info.primary.name = column
				info.primary.index = i
			case types.TableAutoIncrementTagValue:
				info.primary.autoIncrement = true
			}
		}
	}

	return info
}
