package minerva

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ExecOption 一次SQL执行的上下文, 在拦截器链中传递
type ExecOption struct {
	Ctx       context.Context
	SqlStmt   string
	Args      []any
	Session   Session
	Extension any
}

type Handler func(option *ExecOption) (any, error)
type InterceptorHandler func(option *ExecOption, next Handler) (any, error)

var (
	executeInterceptors         []InterceptorHandler
	sqlDebugInterceptor         InterceptorHandler
	slowQueryLoggingInterceptor InterceptorHandler
)

type interceptorKey struct{}

// WithInterceptors 为单次调用附加额外的拦截器
func WithInterceptors(ctx context.Context, handlers ...InterceptorHandler) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, interceptorKey{}, handlers)
}

// Invoke 执行execHandler, 并应用当前注册的拦截器链
func Invoke[T any](option *ExecOption, execHandler func() (T, error)) (T, error) {
	if option.Ctx == nil {
		option.Ctx = context.Background()
	}
	// 构建拦截器链
	interceptorChain := buildInterceptorChain(option)
	if interceptorChain == nil {
		return execHandler()
	}

	finalHandler := func(option *ExecOption) (any, error) {
		return execHandler()
	}

	res, err := interceptorChain(option, finalHandler)
	if err != nil {
		return *new(T), err
	}
	if res == nil {
		return *new(T), nil
	}

	return res.(T), nil
}

// buildInterceptorChain 构建拦截器链
func buildInterceptorChain(option *ExecOption) InterceptorHandler {
	// 从上下文中获取额外的拦截器
	var extraInterceptors []InterceptorHandler
	value := option.Ctx.Value(interceptorKey{})
	if value != nil {
		if handler, ok := value.(InterceptorHandler); ok {
			extraInterceptors = append(extraInterceptors, handler)
		} else if handlers, ok := value.([]InterceptorHandler); ok {
			extraInterceptors = handlers
		}
	}

	interceptors := make([]InterceptorHandler, 0, len(executeInterceptors)+len(extraInterceptors)+3)

	// 1. 缓存拦截器优先执行
	if cacheInterceptor := getCacheInterceptor(option.Ctx); cacheInterceptor != nil {
		interceptors = append(interceptors, cacheInterceptor)
	}

	// 2. SQL调试拦截器
	if sqlDebugInterceptor != nil {
		interceptors = append(interceptors, sqlDebugInterceptor)
	}

	// 3. 自定义拦截器
	interceptors = append(interceptors, executeInterceptors...)
	interceptors = append(interceptors, extraInterceptors...)

	// 4. 慢查询日志拦截器最后执行
	if slowQueryLoggingInterceptor != nil {
		interceptors = append(interceptors, slowQueryLoggingInterceptor)
	}

	if len(interceptors) == 0 {
		return nil
	}

	return chainInterceptors(interceptors)
}

// chainInterceptors 将多个拦截器链接成一个
func chainInterceptors(interceptors []InterceptorHandler) InterceptorHandler {
	return func(option *ExecOption, finalHandler Handler) (any, error) {
		return interceptors[0](option, getChainHandler(interceptors, 0, finalHandler))
	}
}

// getChainHandler 获取下一个拦截器
func getChainHandler(interceptors []InterceptorHandler, curr int, finalHandler Handler) Handler {
	if curr == len(interceptors)-1 {
		return finalHandler
	}

	return func(option *ExecOption) (any, error) {
		return interceptors[curr+1](option, getChainHandler(interceptors, curr+1, finalHandler))
	}
}

type DebugLogger interface {
	Debug(format string, args ...any)
}

func SetupSqlDebugInterceptor(logger DebugLogger) {
	sqlDebugInterceptor = func(option *ExecOption, next Handler) (any, error) {
		logger.Debug("SQL        ==> %s", option.SqlStmt)
		builder := strings.Builder{}
		for i, arg := range option.Args {
			switch a := arg.(type) {
			case string:
				builder.WriteString(fmt.Sprintf("%T(%q)", arg, arg))
			case time.Time:
				builder.WriteString(fmt.Sprintf("DATETIME(%s)", a.Format(time.DateTime)))
			case *time.Time:
				if a != nil {
					builder.WriteString(fmt.Sprintf("DATETIME(%s)", a.Format(time.DateTime)))
				}
			default:
				builder.WriteString(fmt.Sprintf("%T(%v)", arg, arg))
			}
			if i != len(option.Args)-1 {
				builder.WriteString(", ")
			}
		}
		logger.Debug("PARAMETERS ==> " + builder.String())

		return next(option)
	}
}

func SetupSlowQueryLoggingInterceptor(limit int64, loggerFunc func(used int64, sql string)) {
	slowQueryLoggingInterceptor = func(option *ExecOption, next Handler) (any, error) {
		start := time.Now().UnixMilli()
		resp, err := next(option)
		if err != nil {
			return resp, err
		}

		used := time.Now().UnixMilli() - start
		if used > limit {
			loggerFunc(used, option.SqlStmt)
		}

		return resp, nil
	}
}

func SetSqlDebugInterceptor(interceptor InterceptorHandler) {
	sqlDebugInterceptor = interceptor
}

func SetSlowQueryLoggingInterceptor(interceptor InterceptorHandler) {
	slowQueryLoggingInterceptor = interceptor
}

func AddInterceptors(interceptors ...InterceptorHandler) {
	executeInterceptors = append(executeInterceptors, interceptors...)
}
