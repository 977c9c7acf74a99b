package customer

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
)

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	ListFunc       func(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Customer], error)
	EmailTakenFunc func(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	CreateFunc     func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	UpdateFunc     func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.ListFilter
		}
		EmailTaken []struct {
			Ctx       context.Context
			Email     string
			ExcludeID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Customer
		}
		Update []struct {
			Ctx context.Context
			C   *domain.Customer
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID    sync.RWMutex
	lockList       sync.RWMutex
	lockEmailTaken sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *customerRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	if mock.GetByIDFunc == nil {
		panic("customerRepoMock.GetByIDFunc: method is nil but customerRepo.GetByID was just called")
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

func (mock *customerRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *customerRepoMock) List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Customer], error) {
	if mock.ListFunc == nil {
		panic("customerRepoMock.ListFunc: method is nil but customerRepo.List was just called")
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

func (mock *customerRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ListFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *customerRepoMock) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	if mock.EmailTakenFunc == nil {
		panic("customerRepoMock.EmailTakenFunc: method is nil but customerRepo.EmailTaken was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Email     string
		ExcludeID uuid.UUID
	}{
		Ctx:       ctx,
		Email:     email,
		ExcludeID: excludeID,
	}
	mock.lockEmailTaken.Lock()
	mock.calls.EmailTaken = append(mock.calls.EmailTaken, callInfo)
	mock.lockEmailTaken.Unlock()
	return mock.EmailTakenFunc(ctx, email, excludeID)
}

func (mock *customerRepoMock) EmailTakenCalls() []struct {
	Ctx       context.Context
	Email     string
	ExcludeID uuid.UUID
} {
	mock.lockEmailTaken.RLock()
	calls := mock.calls.EmailTaken
	mock.lockEmailTaken.RUnlock()
	return calls
}

func (mock *customerRepoMock) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if mock.CreateFunc == nil {
		panic("customerRepoMock.CreateFunc: method is nil but customerRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Customer
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *customerRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Customer
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *customerRepoMock) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if mock.UpdateFunc == nil {
		panic("customerRepoMock.UpdateFunc: method is nil but customerRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Customer
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *customerRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   *domain.Customer
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *customerRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("customerRepoMock.DeleteFunc: method is nil but customerRepo.Delete was just called")
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

func (mock *customerRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
