package minerva

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debug(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func TestInvokeWithoutInterceptors(t *testing.T) {
	res, err := Invoke[int](&ExecOption{SqlStmt: "SELECT 1"}, func() (int, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, res)
}

func TestInvokeCtxInterceptorOrder(t *testing.T) {
	var order []string
	first := func(option *ExecOption, next Handler) (any, error) {
		order = append(order, "first")
		return next(option)
	}
	second := func(option *ExecOption, next Handler) (any, error) {
		order = append(order, "second")
		return next(option)
	}

	ctx := WithInterceptors(nil, first, second)
	res, err := Invoke[string](&ExecOption{Ctx: ctx, SqlStmt: "SELECT 1"}, func() (string, error) {
		order = append(order, "exec")
		return "done", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "done", res)
	assert.Equal(t, []string{"first", "second", "exec"}, order)
}

func TestSqlDebugInterceptor(t *testing.T) {
	logger := &recordingLogger{}
	SetupSqlDebugInterceptor(logger)
	defer SetSqlDebugInterceptor(nil)

	_, err := Invoke[int](&ExecOption{
		SqlStmt: "SELECT username FROM t_user WHERE id = ? AND username = ?",
		Args:    []any{int64(7), "mango"},
	}, func() (int, error) {
		return 1, nil
	})

	require.NoError(t, err)
	require.Len(t, logger.lines, 2)
	assert.Contains(t, logger.lines[0], "SELECT username FROM t_user WHERE id = ? AND username = ?")
	assert.Contains(t, logger.lines[1], `string("mango")`)
	assert.Contains(t, logger.lines[1], "int64(7)")
}

func TestSlowQueryLoggingInterceptor(t *testing.T) {
	var slowSql string
	SetupSlowQueryLoggingInterceptor(-1, func(used int64, sql string) {
		slowSql = sql
	})
	defer SetSlowQueryLoggingInterceptor(nil)

	_, err := Invoke[int](&ExecOption{SqlStmt: "SELECT * FROM t_user"}, func() (int, error) {
		return 0, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t_user", slowSql)
}

func TestInvokeError(t *testing.T) {
	wantErr := fmt.Errorf("boom")
	res, err := Invoke[int](&ExecOption{SqlStmt: "SELECT 1"}, func() (int, error) {
		return 0, wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.Zero(t, res)
}
