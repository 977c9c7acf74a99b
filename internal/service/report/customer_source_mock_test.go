package report

import (
	"context"
	"sync"
	"time"

	"github.com/buildline/crm-backend/internal/domain"
)

var _ customerSource = &customerSourceMock{}

type customerSourceMock struct {
	ListInRangeFunc   func(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Customer, error)
	CountFunc         func(ctx context.Context) (int, error)
	CountByStatusFunc func(ctx context.Context) ([]domain.Bucket, error)
	CountByMonthFunc  func(ctx context.Context, since time.Time) ([]domain.Bucket, error)

	calls struct {
		ListInRange []struct {
			Ctx   context.Context
			Rng   domain.DateRange
			Limit int
		}
		Count []struct {
			Ctx context.Context
		}
		CountByStatus []struct {
			Ctx context.Context
		}
		CountByMonth []struct {
			Ctx   context.Context
			Since time.Time
		}
	}
	lockListInRange   sync.RWMutex
	lockCount         sync.RWMutex
	lockCountByStatus sync.RWMutex
	lockCountByMonth  sync.RWMutex
}

func (mock *customerSourceMock) ListInRange(ctx context.Context, rng domain.DateRange, limit int) ([]domain.Customer, error) {
	if mock.ListInRangeFunc == nil {
		panic("customerSourceMock.ListInRangeFunc: method is nil but customerSource.ListInRange was just called")
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

func (mock *customerSourceMock) ListInRangeCalls() []struct {
	Ctx   context.Context
	Rng   domain.DateRange
	Limit int
} {
	mock.lockListInRange.RLock()
	calls := mock.calls.ListInRange
	mock.lockListInRange.RUnlock()
	return calls
}

func (mock *customerSourceMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("customerSourceMock.CountFunc: method is nil but customerSource.Count was just called")
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

func (mock *customerSourceMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *customerSourceMock) CountByStatus(ctx context.Context) ([]domain.Bucket, error) {
	if mock.CountByStatusFunc == nil {
		panic("customerSourceMock.CountByStatusFunc: method is nil but customerSource.CountByStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCountByStatus.Lock()
	mock.calls.CountByStatus = append(mock.calls.CountByStatus, callInfo)
	mock.lockCountByStatus.Unlock()
	return mock.CountByStatusFunc(ctx)
}

func (mock *customerSourceMock) CountByStatusCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountByStatus.RLock()
	calls := mock.calls.CountByStatus
	mock.lockCountByStatus.RUnlock()
	return calls
}

func (mock *customerSourceMock) CountByMonth(ctx context.Context, since time.Time) ([]domain.Bucket, error) {
	if mock.CountByMonthFunc == nil {
		panic("customerSourceMock.CountByMonthFunc: method is nil but customerSource.CountByMonth was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Since time.Time
	}{
		Ctx:   ctx,
		Since: since,
	}
	mock.lockCountByMonth.Lock()
	mock.calls.CountByMonth = append(mock.calls.CountByMonth, callInfo)
	mock.lockCountByMonth.Unlock()
	return mock.CountByMonthFunc(ctx, since)
}

func (mock *customerSourceMock) CountByMonthCalls() []struct {
	Ctx   context.Context
	Since time.Time
} {
	mock.lockCountByMonth.RLock()
	calls := mock.calls.CountByMonth
	mock.lockCountByMonth.RUnlock()
	return calls
}
