package appointment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/buildline/crm-backend/internal/domain"
)

var _ appointmentRepo = &appointmentRepoMock{}

type appointmentRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListFunc    func(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Appointment], error)
	CreateFunc  func(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	UpdateFunc  func(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.ListFilter
		}
		Create []struct {
			Ctx context.Context
			A   *domain.Appointment
		}
		Update []struct {
			Ctx context.Context
			A   *domain.Appointment
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *appointmentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	if mock.GetByIDFunc == nil {
		panic("appointmentRepoMock.GetByIDFunc: method is nil but appointmentRepo.GetByID was just called")
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

func (mock *appointmentRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *appointmentRepoMock) List(ctx context.Context, f domain.ListFilter) (domain.Page[domain.Appointment], error) {
	if mock.ListFunc == nil {
		panic("appointmentRepoMock.ListFunc: method is nil but appointmentRepo.List was just called")
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

func (mock *appointmentRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ListFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *appointmentRepoMock) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if mock.CreateFunc == nil {
		panic("appointmentRepoMock.CreateFunc: method is nil but appointmentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Appointment
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *appointmentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Appointment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *appointmentRepoMock) Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if mock.UpdateFunc == nil {
		panic("appointmentRepoMock.UpdateFunc: method is nil but appointmentRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Appointment
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, a)
}

func (mock *appointmentRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	A   *domain.Appointment
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *appointmentRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("appointmentRepoMock.DeleteFunc: method is nil but appointmentRepo.Delete was just called")
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

func (mock *appointmentRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
