package report

import (
	"context"
	"sync"

	"github.com/buildline/crm-backend/internal/domain"
)

var _ employeeSource = &employeeSourceMock{}

type employeeSourceMock struct {
	ListInRangeFunc       func(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Employee, error)
	CountFunc             func(ctx context.Context) (int, error)
	CountByDepartmentFunc func(ctx context.Context) ([]domain.Bucket, error)

	calls struct {
		ListInRange []struct {
			Ctx   context.Context
			Rng   domain.DateRange
			Limit int
		}
		Count []struct {
			Ctx context.Context
		}
		CountByDepartment []struct {
			Ctx context.Context
		}
	}
	lockListInRange       sync.RWMutex
	lockCount             sync.RWMutex
	lockCountByDepartment sync.RWMutex
}

func (mock *employeeSourceMock) ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Employee, error) {
	if mock.ListInRangeFunc == nil {
		panic("employeeSourceMock.ListInRangeFunc: method is nil but employeeSource.ListInRange was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Rng   domain.DateRange
		Limit int
	}{
		Ctx:   ctx,
		Rng:   rng,
		Limit: limit,
	}
	mock.lockListInRange.Lock()
	mock.calls.ListInRange = append(mock.calls.ListInRange, callInfo)
	mock.lockListInRange.Unlock()
	return mock.ListInRangeFunc(ctx, rng, limit)
}

func (mock *employeeSourceMock) ListInRangeCalls() []struct {
	Ctx   context.Context
	Rng   domain.DateRange
	Limit int
} {
	mock.lockListInRange.RLock()
	calls := mock.calls.ListInRange
	mock.lockListInRange.RUnlock()
	return calls
}

func (mock *employeeSourceMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("employeeSourceMock.CountFunc: method is nil but employeeSource.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *employeeSourceMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *employeeSourceMock) CountByDepartment(ctx context.Context) ([]domain.Bucket, error) {
	if mock.CountByDepartmentFunc == nil {
		panic("employeeSourceMock.CountByDepartmentFunc: method is nil but employeeSource.CountByDepartment was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountByDepartment.Lock()
	mock.calls.CountByDepartment = append(mock.calls.CountByDepartment, callInfo)
	mock.lockCountByDepartment.Unlock()
	return mock.CountByDepartmentFunc(ctx)
}

func (mock *employeeSourceMock) CountByDepartmentCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountByDepartment.RLock()
	calls := mock.calls.CountByDepartment
	mock.lockCountByDepartment.RUnlock()
	return calls
}
