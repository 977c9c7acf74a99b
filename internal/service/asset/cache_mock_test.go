package asset

import (
	"context"
	"sync"
)

var _ cache = &cacheMock{}

type cacheMock struct {
	DeleteFunc func(ctx context.Context, keys ...string) error

	calls struct {
		Delete []struct {
			Ctx  context.Context
			Keys []string
		}
	}
	lockDelete sync.RWMutex
}

func (mock *cacheMock) Delete(ctx context.Context, keys ...string) error {
	if mock.DeleteFunc == nil {
		panic("cacheMock.DeleteFunc: method is nil but cache.Delete was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Keys []string
	}{
		Ctx:  ctx,
		Keys: keys,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, keys...)
}

func (mock *cacheMock) DeleteCalls() []struct {
	Ctx  context.Context
	Keys []string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
