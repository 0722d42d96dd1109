package minerva

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	_ "github.com/go-sql-driver/mysql"
)

var (
	dbRef *sqlx.DB
)

// Session 对*sqlx.DB和*sqlx.Tx的抽象, 便于在事务内外复用同一套执行逻辑
type Session interface {
	Get(dest any, query string, args ...any) error

	Select(dest any, query string, args ...any) error

	Exec(query string, args ...any) (sql.Result, error)
}

func StartTransaction() (*sqlx.Tx, error) {
	return dbRef.Beginx()
}

// TxSession 事务Session, 除执行能力外还可以提交或回滚
type TxSession interface {
	Session

	Commit() error
	Rollback() error
}

// Transactional 在事务中执行fn, fn返回错误或发生panic时回滚, 否则提交
func Transactional(fn func(sess Session) error) error {
	tx, err := dbRef.Beginx()
	if err != nil {
		return err
	}

	return runInTransaction(tx, fn)
}

func runInTransaction(tx TxSession, fn func(sess Session) error) (err error) {
	defer func() {
		var e error
		if r := recover(); r != nil || err != nil {
			e = tx.Rollback()
			if e == nil && r != nil {
				e = fmt.Errorf("recovered from %v", r)
			}
		} else {
			e = tx.Commit()
		}
		if e != nil {
			err = e
		}
	}()

	return fn(tx)
}

func OpenMysql(dataSourceName string) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", dataSourceName)
	if err != nil {
		return nil, err
	}

	dbRef = db

	return db, nil
}
