package document

import (
	"context"
	"io"
	"sync"
)

var _ blobStore = &blobStoreMock{}

type blobStoreMock struct {
	PutFunc    func(ctx context.Context, key string, contentType string, body io.Reader, size int64) error
	GetFunc    func(ctx context.Context, key string) (io.ReadCloser, error)
	DeleteFunc func(ctx context.Context, key string) error

	calls struct {
		Put []struct {
			Ctx         context.Context
			Key         string
			ContentType string
			Body        io.Reader
			Size        int64
		}
		Get []struct {
			Ctx context.Context
			Key string
		}
		Delete []struct {
			Ctx context.Context
			Key string
		}
	}
	lockPut    sync.RWMutex
	lockGet    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *blobStoreMock) Put(ctx context.Context, key string, contentType string, body io.Reader, size int64) error {
	if mock.PutFunc == nil {
		panic("blobStoreMock.PutFunc: method is nil but blobStore.Put was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Key         string
		ContentType string
		Body        io.Reader
		Size        int64
	}{
		Ctx:         ctx,
		Key:         key,
		ContentType: contentType,
		Body:        body,
		Size:        size,
	}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	return mock.PutFunc(ctx, key, contentType, body, size)
}

func (mock *blobStoreMock) PutCalls() []struct {
	Ctx         context.Context
	Key         string
	ContentType string
	Body        io.Reader
	Size        int64
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *blobStoreMock) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if mock.GetFunc == nil {
		panic("blobStoreMock.GetFunc: method is nil but blobStore.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, key)
}

func (mock *blobStoreMock) GetCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *blobStoreMock) Delete(ctx context.Context, key string) error {
	if mock.DeleteFunc == nil {
		panic("blobStoreMock.DeleteFunc: method is nil but blobStore.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, key)
}

func (mock *blobStoreMock) DeleteCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
