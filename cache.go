package minerva

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// CacheManager 查询缓存的存取接口
// 如果是local cache, 需要在Get和Set内部处理数据拷贝, 防止外部修改了缓存中的数据
type CacheManager[T any] interface {
	Get(key string) (*T, bool)
	Set(key string, value *T)
	Delete(key string)
}

type cacheKey struct{}

type CacheConfig[T any] struct {
	Manager          CacheManager[T]
	Key              string
	CacheNil         bool
	QueryTimeOut     time.Duration
	BeforeInvocation bool
	flightGroup      singleflight.Group
}

func getCacheInterceptor(ctx context.Context) InterceptorHandler {
	if ctx == nil {
		return nil
	}

	value := ctx.Value(cacheKey{})
	if value == nil {
		return nil
	}

	return value.(InterceptorHandler)
}

// CacheableCtx 返回一个使查询走缓存的context
// 缓存未命中时通过singleflight合并并发查询
func CacheableCtx[T any](cfg *CacheConfig[T]) context.Context {
	return context.WithValue(context.Background(), cacheKey{}, InterceptorHandler(func(option *ExecOption, next Handler) (any, error) {
		return cacheableHandler(cfg, option, next)
	}))
}

// CacheEvictCtx 返回一个在更新前/后清除缓存的context
func CacheEvictCtx[T any](cfg *CacheConfig[T]) context.Context {
	return context.WithValue(context.Background(), cacheKey{}, InterceptorHandler(func(option *ExecOption, next Handler) (any, error) {
		return cacheEvictHandler(cfg, option, next)
	}))
}

type result struct {
	data any
	err  error
}

func cacheableHandler[T any](cfg *CacheConfig[T], option *ExecOption, next Handler) (*T, error) {
	if cfg.Key == "" {
		return nil, fmt.Errorf("empty key provided")
	}

	// 1、查询缓存
	if val, exist := cfg.Manager.Get(cfg.Key); exist {
		return val, nil
	}

	v, err, _ := cfg.flightGroup.Do(cfg.Key, func() (any, error) {
		ctx := context.Background()
		if cfg.QueryTimeOut > 0 {
			c, cancel := context.WithTimeout(ctx, cfg.QueryTimeOut)
			ctx = c
			defer cancel()
		}
		resCh := make(chan result, 1)

		go func() {
			// 2、缓存不存在, 查询数据库
			val, err := next(option)
			if err != nil {
				resCh <- result{nil, err}
				return
			}

			var (
				objPtr *T
				obj    T
				ok     bool
			)

			if val == nil {
				if !cfg.CacheNil {
					resCh <- result{nil, nil}
					return
				}
			} else {
				objPtr, ok = val.(*T)
				if !ok {
					obj = val.(T)
					objPtr = &obj
				}
			}

			// 3、写入缓存
			cfg.Manager.Set(cfg.Key, objPtr)
			resCh <- result{objPtr, nil}
		}()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("query db timeout, key: %s", cfg.Key)
		case res := <-resCh:
			return res.data, res.err
		}
	})

	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}

	return v.(*T), nil
}

func cacheEvictHandler[T any](cfg *CacheConfig[T], option *ExecOption, next Handler) (any, error) {
	// 先删缓存
	if cfg.BeforeInvocation {
		cfg.Manager.Delete(cfg.Key)
	}

	// 再更新数据
	res, err := next(option)
	if err != nil {
		return nil, err
	}

	if !cfg.BeforeInvocation {
		cfg.Manager.Delete(cfg.Key)
	}

	return res, nil
}
