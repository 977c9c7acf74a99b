package asset

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
)

var _ assetRepo = &assetRepoMock{}

type assetRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Asset, error)
	ListFunc        func(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Asset], error)
	SerialTakenFunc func(ctx context.Context, serial string, excludeID uuid.UUID) (bool, error)
	CreateFunc      func(ctx context.Context, a *domain.Asset) (*domain.Asset, error)
	UpdateFunc      func(ctx context.Context, a *domain.Asset) (*domain.Asset, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.ListFilter
		}
		SerialTaken []struct {
			Ctx       context.Context
			Serial    string
			ExcludeID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			A   *domain.Asset
		}
		Update []struct {
			Ctx context.Context
			A   *domain.Asset
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID     sync.RWMutex
	lockList        sync.RWMutex
	lockSerialTaken sync.RWMutex
	lockCreate      sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
}

func (mock *assetRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Asset, error) {
	if mock.GetByIDFunc == nil {
		panic("assetRepoMock.GetByIDFunc: method is nil but assetRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *assetRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *assetRepoMock) List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Asset], error) {
	if mock.ListFunc == nil {
		panic("assetRepoMock.ListFunc: method is nil but assetRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ListFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *assetRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ListFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *assetRepoMock) SerialTaken(ctx context.Context, serial string, excludeID uuid.UUID) (bool, error) {
	if mock.SerialTakenFunc == nil {
		panic("assetRepoMock.SerialTakenFunc: method is nil but assetRepo.SerialTaken was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Serial    string
		ExcludeID uuid.UUID
	}{
		Ctx:       ctx,
		Serial:    serial,
		ExcludeID: excludeID,
	}
	mock.lockSerialTaken.Lock()
	mock.calls.SerialTaken = append(mock.calls.SerialTaken, callInfo)
	mock.lockSerialTaken.Unlock()
	return mock.SerialTakenFunc(ctx, serial, excludeID)
}

func (mock *assetRepoMock) SerialTakenCalls() []struct {
	Ctx       context.Context
	Serial    string
	ExcludeID uuid.UUID
} {
	mock.lockSerialTaken.RLock()
	calls := mock.calls.SerialTaken
	mock.lockSerialTaken.RUnlock()
	return calls
}

func (mock *assetRepoMock) Create(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
	if mock.CreateFunc == nil {
		panic("assetRepoMock.CreateFunc: method is nil but assetRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Asset
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *assetRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Asset
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *assetRepoMock) Update(ctx context.Context, a *domain.Asset) (*domain.Asset, error) {
	if mock.UpdateFunc == nil {
		panic("assetRepoMock.UpdateFunc: method is nil but assetRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Asset
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, a)
}

func (mock *assetRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	A   *domain.Asset
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *assetRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("assetRepoMock.DeleteFunc: method is nil but assetRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *assetRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
