package lead

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
)

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	EmailTakenFunc func(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	CreateFunc     func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)

	calls struct {
		EmailTaken []struct {
			Ctx       context.Context
			Email     string
			ExcludeID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			C   *domain.Customer
		}
	}
	lockEmailTaken sync.RWMutex
	lockCreate     sync.RWMutex
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
